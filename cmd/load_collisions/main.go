// Command load_collisions loads the bundled STATS19 collision archives,
// optionally filters them, and reports, dumps or exports the result.
//
//	load_collisions -resources ./resources -region london -where accident_year=2020
//	load_collisions -workers 4 -db_driver sqlite -dsn collisions.db
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"collisions/internal/collision"
	"collisions/internal/config"
	"collisions/internal/datasource/file"
	"collisions/internal/loader"
	"collisions/internal/metrics"
	"collisions/internal/metrics/datadog"
	"collisions/internal/metrics/prompush"
	"collisions/internal/storage"
	_ "collisions/internal/storage/all"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatalf("config: %v", err)
	}
	setVerbose(cfg.Verbose)
	setupMetrics(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	err = run(ctx, cfg)
	if ferr := metrics.Flush(); ferr != nil {
		log.Printf("metrics: flush error: %v", ferr)
	}
	if err != nil {
		fatalf("%v", err)
	}
	if cfg.Verbose {
		log.Printf("completed in %s", time.Since(start).Truncate(time.Millisecond))
	}
}

// setVerbose routes the debug lines of collision and loader to the standard
// logger, or discards them.
func setVerbose(on bool) {
	loader.Verbose = on
	if on {
		collision.Debug.SetOutput(log.Writer())
		return
	}
	collision.Debug.SetOutput(io.Discard)
}

// setupMetrics installs the configured backend. A backend that fails to
// initialize leaves the nop backend in place.
func setupMetrics(cfg *config.Config) {
	switch cfg.MetricsBackend {
	case config.MetricsPushgateway:
		b, err := prompush.NewBackend(cfg.Job, cfg.PushgatewayURL)
		if err != nil {
			log.Printf("metrics: failed to init prom push backend: %v; using nop", err)
			return
		}
		log.Printf("metrics: backend=%s url=%s job=%s", cfg.MetricsBackend, cfg.PushgatewayURL, cfg.Job)
		metrics.SetBackend(b)
	case config.MetricsDatadog:
		b, err := datadog.NewBackend(datadog.Config{Addr: cfg.DogStatsDAddr, Namespace: "collisions."})
		if err != nil {
			log.Printf("metrics: failed to init datadog backend: %v; using nop", err)
			return
		}
		log.Printf("metrics: backend=%s addr=%s", cfg.MetricsBackend, cfg.DogStatsDAddr)
		metrics.SetBackend(b)
	default:
		if cfg.Verbose {
			log.Printf("metrics: disabled (backend=%q)", cfg.MetricsBackend)
		}
	}
}

// run loads, filters and emits the collection described by cfg.
func run(ctx context.Context, cfg *config.Config) error {
	l := loader.New(loader.WithWorkers(cfg.Workers), loader.WithJob(cfg.Job))

	var (
		all *loader.Collisions
		err error
	)
	if cfg.ArchivesFrom != "" {
		paths, lerr := file.ReadList(cfg.ArchivesFrom)
		if lerr != nil {
			return lerr
		}
		log.Printf("loader: list=%s archives=%d workers=%d", cfg.ArchivesFrom, len(paths), cfg.Workers)
		all, err = l.FromArchives(ctx, paths)
	} else {
		all, err = l.LoadAll(ctx, cfg.ResourceDir, cfg.Region)
	}
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	matched := all
	if len(cfg.Where) > 0 {
		start := time.Now()
		matched, err = all.Filter(cfg.Where)
		metrics.RecordStep(cfg.Job, "filter", err, time.Since(start))
		if err != nil {
			return fmt.Errorf("filter: %w", err)
		}
		log.Printf("filter: where=%s matched=%d", cfg.Where, matched.Len())
	}
	metrics.RecordRow(cfg.Job, "matched", int64(matched.Len()))
	fmt.Printf("loaded=%d matched=%d fingerprint=%016x\n",
		all.Len(), matched.Len(), collision.CollectionFingerprint(matched))

	if cfg.Out != "" {
		if err := writeOut(cfg.Out, matched); err != nil {
			return err
		}
	}
	if cfg.DBDriver != "" {
		if err := export(ctx, cfg, matched); err != nil {
			return err
		}
	}
	return nil
}

// export writes coll to the configured backend, creating the table first.
func export(ctx context.Context, cfg *config.Config, coll *loader.Collisions) error {
	cols := storage.Columns()
	repo, err := storage.New(ctx, storage.Config{Kind: cfg.DBDriver, DSN: cfg.DSN, Table: cfg.Table, Columns: cols})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer repo.Close()

	if err := storage.EnsureTable(ctx, cfg.DBDriver, repo, cfg.Table, cols); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	n, err := storage.ExportCollisions(ctx, repo, coll, storage.ExportOptions{BatchSize: cfg.BatchSize, Job: cfg.Job})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	log.Printf("export: driver=%s table=%s rows=%d", cfg.DBDriver, cfg.Table, n)
	return nil
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
