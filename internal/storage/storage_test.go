package storage

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"collisions/internal/collision"
)

type fakeRepo struct {
	mu      sync.Mutex
	execs   []string
	batches [][][]any
	failOn  int // 1-based batch number that fails; 0 never
	closed  bool
}

func (f *fakeRepo) CopyFrom(_ context.Context, _ []string, rows [][]any) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([][]any, len(rows))
	copy(cp, rows)
	f.batches = append(f.batches, cp)
	if f.failOn == len(f.batches) {
		return 0, errors.New("copy failed")
	}
	return int64(len(rows)), nil
}

func (f *fakeRepo) Exec(_ context.Context, sql string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.execs = append(f.execs, sql)
	return nil
}

func (f *fakeRepo) Close() { f.closed = true }

func TestRegisterNewKinds(t *testing.T) {
	repo := &fakeRepo{}
	var got Config
	Register("fake", func(_ context.Context, cfg Config) (Repository, error) {
		got = cfg
		return repo, nil
	})

	r, err := New(context.Background(), Config{Kind: "fake", DSN: "mem", Table: "collisions"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r != repo || got.DSN != "mem" {
		t.Fatalf("factory not used: %#v", got)
	}
	found := false
	for _, k := range Kinds() {
		found = found || k == "fake"
	}
	if !found {
		t.Fatalf("Kinds() = %v, missing fake", Kinds())
	}

	if _, err := New(context.Background(), Config{Kind: "nope", Table: "t"}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if _, err := New(context.Background(), Config{Kind: "fake"}); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestEnsureTable(t *testing.T) {
	d := Dialect{Quote: DoubleQuote, TextType: "TEXT", IfNotExists: true}
	RegisterDDL("fake-ddl", d.BuildCreateTable)

	repo := &fakeRepo{}
	if err := EnsureTable(context.Background(), "fake-ddl", repo, "collisions", []string{"id", "lat"}); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}
	want := "CREATE TABLE IF NOT EXISTS \"collisions\" (\n  \"id\" TEXT NULL,\n  \"lat\" TEXT NULL\n)"
	if len(repo.execs) != 1 || repo.execs[0] != want {
		t.Fatalf("execs = %q, want %q", repo.execs, want)
	}
	if err := EnsureTable(context.Background(), "unregistered", repo, "t", []string{"a"}); err == nil {
		t.Fatal("expected error for unregistered kind")
	}
}

func TestDialectGuard(t *testing.T) {
	t.Parallel()

	d := Dialect{
		Quote:    func(s string) string { return "[" + s + "]" },
		TextType: "NVARCHAR(MAX)",
		Guard:    func(table, stmt string) string { return "IF OBJECT_ID('" + table + "') IS NULL " + stmt },
	}
	got, err := d.BuildCreateTable("dbo.collisions", []string{"id"})
	if err != nil {
		t.Fatalf("BuildCreateTable: %v", err)
	}
	if !strings.HasPrefix(got, "IF OBJECT_ID('dbo.collisions') IS NULL CREATE TABLE [dbo].[collisions]") {
		t.Fatalf("DDL = %q", got)
	}
}

func TestLoadBatches(t *testing.T) {
	t.Parallel()

	in := make(chan []any, 8)
	for i := 0; i < 7; i++ {
		in <- []any{i}
	}
	close(in)

	var calls int32
	total, err := LoadBatches(context.Background(), []string{"c"}, in, 3, func(_ context.Context, _ []string, rows [][]any) (int64, error) {
		atomic.AddInt32(&calls, 1)
		return int64(len(rows)), nil
	})
	if err != nil || total != 7 {
		t.Fatalf("total=%d err=%v", total, err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestLoadBatches_Errors(t *testing.T) {
	t.Parallel()

	ok := func(context.Context, []string, [][]any) (int64, error) { return 0, nil }
	if _, err := LoadBatches(context.Background(), nil, nil, 0, ok); err == nil {
		t.Fatal("expected error for batchSize 0")
	}
	if _, err := LoadBatches(context.Background(), nil, nil, 1, nil); err == nil {
		t.Fatal("expected error for nil copyFn")
	}

	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan []any)
	done := make(chan error, 1)
	go func() {
		_, err := LoadBatches(ctx, nil, in, 10, ok)
		done <- err
	}()
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("LoadBatches did not return after cancel")
	}
}

func collisions(t *testing.T, n int, badTimeAt int) *collision.Collection[*collision.Collision] {
	t.Helper()
	out := collision.NewCollection[*collision.Collision]()
	for i := 0; i < n; i++ {
		m := map[string]any{}
		for _, name := range collision.FieldNames() {
			m[name] = int64(i)
		}
		m["date"] = "01/02/2021"
		m["time"] = "08:15"
		m["speed_limit"] = nil
		if i == badTimeAt {
			m["time"] = "8.15am"
		}
		c, err := collision.NewCollision(m)
		if err != nil {
			t.Fatalf("NewCollision: %v", err)
		}
		out.Append(c)
	}
	return out
}

func TestExportCollisions(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	n, err := ExportCollisions(context.Background(), repo, collisions(t, 5, -1), ExportOptions{BatchSize: 2})
	if err != nil || n != 5 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if len(repo.batches) != 3 {
		t.Fatalf("batches = %d, want 3", len(repo.batches))
	}

	cols := Columns()
	row := repo.batches[0][1]
	if len(row) != len(cols) {
		t.Fatalf("row width %d, columns %d", len(row), len(cols))
	}
	byName := map[string]any{}
	for i, c := range cols {
		byName[c] = row[i]
	}
	want := map[string]any{"id": "1", "year": "2021", "time": "08:15", "speed_limit": nil}
	for k, v := range want {
		if !reflect.DeepEqual(byName[k], v) {
			t.Fatalf("%s = %#v, want %#v", k, byName[k], v)
		}
	}
}

func TestExportCollisions_Failures(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	_, err := ExportCollisions(context.Background(), repo, collisions(t, 4, 2), ExportOptions{BatchSize: 10})
	if !errors.Is(err, collision.ErrTimestamp) {
		t.Fatalf("expected ErrTimestamp, got %v", err)
	}

	repo = &fakeRepo{failOn: 2}
	_, err = ExportCollisions(context.Background(), repo, collisions(t, 6, -1), ExportOptions{BatchSize: 2})
	if err == nil || !strings.Contains(err.Error(), "copy failed") {
		t.Fatalf("expected copy failure, got %v", err)
	}
}
