//go:build cgo && duckdb && (linux || darwin || windows) && (amd64 || arm64)

package duckdb

import (
	"context"
	"path/filepath"
	"testing"

	"collisions/internal/storage"
)

func TestRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "collisions.duckdb")
	repo, err := storage.New(ctx, storage.Config{Kind: Kind, DSN: dsn, Table: "collisions"})
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	defer repo.Close()

	if err := storage.EnsureTable(ctx, Kind, repo, "collisions", []string{"id", "lat"}); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}
	n, err := repo.CopyFrom(ctx, []string{"id", "lat"}, [][]any{{"2020A1", "51.5"}, {"2020A2", nil}})
	if err != nil || n != 2 {
		t.Fatalf("CopyFrom: n=%d err=%v", n, err)
	}

	var count int
	db := repo.(*wrappedRepo).db
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM "collisions" WHERE "lat" IS NULL`).Scan(&count); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 1 {
		t.Fatalf("null rows = %d, want 1", count)
	}
}

func TestCopyFrom_RowWidth(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r, closeFn, err := NewRepository(ctx, Config{Table: "t"})
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	defer closeFn()
	if err := r.Exec(ctx, `CREATE TABLE "t" ("a" TEXT NULL)`); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if _, err := r.CopyFrom(ctx, []string{"a"}, [][]any{{"x", "y"}}); err == nil {
		t.Fatal("expected row width error")
	}
}
