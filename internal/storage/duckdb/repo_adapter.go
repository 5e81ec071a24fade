//go:build cgo && duckdb && (linux || darwin || windows) && (amd64 || arm64)

package duckdb

import (
	"context"

	"collisions/internal/storage"
)

// Kind is the registered backend name.
const Kind = "duckdb"

var dialect = storage.Dialect{Quote: storage.DoubleQuote, TextType: "TEXT", IfNotExists: true}

// newRepository is swapped by tests.
var newRepository = NewRepository

type wrappedRepo struct {
	*Repository
	closeFn func()
}

func (w *wrappedRepo) Close() {
	if w.closeFn != nil {
		w.closeFn()
	}
}

var _ storage.Repository = (*wrappedRepo)(nil)

func init() {
	storage.Register(Kind, func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, Config{DSN: cfg.DSN, Table: cfg.Table})
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})
	storage.RegisterDDL(Kind, dialect.BuildCreateTable)
}
