// Package datasource defines where collision tables are read from.
package datasource

import (
	"context"
	"io"
)

// Source yields one readable table. Callers close what Open returns.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// Named is a Source that can describe itself in logs and errors.
type Named interface {
	Source
	Name() string
}
