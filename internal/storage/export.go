package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"collisions/internal/collision"
	"collisions/internal/metrics"
)

// Columns returns the export column list: the serialized collision keys.
func Columns() []string { return collision.SerializedKeys() }

// ExportOptions tunes ExportCollisions.
type ExportOptions struct {
	BatchSize int    // rows per CopyFrom call; 5000 when zero
	Job       string // metrics job label
}

// ExportCollisions writes every collision in coll to repo, one row per
// record in Columns order. Values are rendered as text; nil stays NULL. Rows
// are produced and copied concurrently, and the first failure on either side
// stops both.
func ExportCollisions(ctx context.Context, repo Repository, coll *collision.Collection[*collision.Collision], opt ExportOptions) (int64, error) {
	if opt.BatchSize <= 0 {
		opt.BatchSize = 5000
	}
	cols := Columns()
	start := time.Now()

	var batches int64
	copyFn := func(ctx context.Context, columns []string, rows [][]any) (int64, error) {
		n, err := repo.CopyFrom(ctx, columns, rows)
		if err == nil {
			batches++
		}
		return n, err
	}

	rows := make(chan []any, opt.BatchSize)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(rows)
		for i, c := range coll.All() {
			row, err := c.Row()
			if err != nil {
				return fmt.Errorf("export record %d: %w", i, err)
			}
			for j, v := range row {
				row[j] = textValue(v)
			}
			select {
			case rows <- row:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var total int64
	g.Go(func() error {
		n, err := LoadBatches(gctx, cols, rows, opt.BatchSize, copyFn)
		total = n
		return err
	})

	err := g.Wait()
	metrics.RecordStep(opt.Job, "export", err, time.Since(start))
	metrics.RecordRow(opt.Job, "exported", total)
	metrics.RecordBatches(opt.Job, batches)
	if err != nil {
		return total, err
	}
	log.Printf("storage: exported rows=%d batches=%d elapsed=%s", total, batches, time.Since(start).Truncate(time.Millisecond))
	return total, nil
}

func textValue(v any) any {
	if v == nil {
		return nil
	}
	return collision.FormatValue(v)
}
