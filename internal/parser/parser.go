// Package parser defines the decoder contract for tabular collision data.
package parser

import (
	"context"
	"io"

	"collisions/pkg/records"
)

// Parser decodes a whole table into rows keyed by column name.
type Parser interface {
	Parse(r io.Reader) ([]records.Record, error)
}

// Streamer decodes a table row by row. fn receives the 1-based source line
// of each data row; a non-nil error from fn stops the stream and is returned.
type Streamer interface {
	Stream(ctx context.Context, r io.Reader, fn func(line int, rec records.Record) error) error
}
