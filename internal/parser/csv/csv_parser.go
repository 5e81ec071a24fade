// Package csv decodes header-row CSV tables into records. Input may carry a
// UTF-8 or UTF-16 byte order mark; rows must match the header width.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"collisions/internal/parser"
	"collisions/pkg/records"
)

// ErrRowWidth is returned when a data row has a different number of cells
// than the header.
var ErrRowWidth = errors.New("row width does not match header")

// logEveryN controls the progress heartbeat of Stream.
const logEveryN = 50_000

// Options configures the parser. The zero value reads comma-separated text,
// keeps cells as strings and maps empty cells to nil.
type Options struct {
	// Comma is the field delimiter; ',' when zero.
	Comma rune

	// TrimSpace trims surrounding whitespace from every cell.
	TrimSpace bool

	// LazyQuotes relaxes quote handling in encoding/csv.
	LazyQuotes bool

	// HeaderMap renames source headers (matched after trimming) before the
	// default lowercase/underscore normalization.
	HeaderMap map[string]string

	// InferTypes turns integer cells into int64 and decimal cells into
	// float64. Cells with a leading zero such as "01" or "E01004762" stay
	// strings so codes keep their spelling.
	InferTypes bool
}

// Parser decodes CSV according to Options. It may be reused but is not safe
// for concurrent use of the same input.
type Parser struct{ opt Options }

var (
	_ parser.Parser   = (*Parser)(nil)
	_ parser.Streamer = (*Parser)(nil)
)

// NewParser returns a Parser configured by opt.
func NewParser(opt Options) *Parser { return &Parser{opt: opt} }

// Parse reads every row of r.
func (p *Parser) Parse(r io.Reader) ([]records.Record, error) {
	var out []records.Record
	err := p.Stream(context.Background(), r, func(_ int, rec records.Record) error {
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Stream reads r row by row and calls fn for each data row. The first
// malformed row, fn error or context cancellation ends the stream.
func (p *Parser) Stream(ctx context.Context, r io.Reader, fn func(line int, rec records.Record) error) error {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(dec)
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}
	cr.LazyQuotes = p.opt.LazyQuotes
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	hdr, err := cr.Read()
	if err == io.EOF {
		return fmt.Errorf("read csv header: empty input")
	}
	if err != nil {
		return fmt.Errorf("read csv header: %w", err)
	}
	headers := normalizeHeaders(hdr, p.opt)

	rows := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(row) != len(headers) {
			return fmt.Errorf("csv line %d: %w (expected %d, got %d)", line, ErrRowWidth, len(headers), len(row))
		}

		rec := make(records.Record, len(row))
		for i, val := range row {
			rec[headers[i]] = p.cell(val)
		}
		if err := fn(line, rec); err != nil {
			return err
		}
		rows++
		if rows%logEveryN == 0 {
			log.Printf("csv: line=%d rows=%d", line, rows)
		}
	}
}

func (p *Parser) cell(val string) any {
	if p.opt.TrimSpace {
		val = strings.TrimSpace(val)
	}
	if val == "" {
		return nil
	}
	if p.opt.InferTypes {
		return infer(val)
	}
	return val
}

// normalizeHeaders applies HeaderMap, then lowercases and replaces spaces
// with underscores. Blank headers become col_N.
func normalizeHeaders(h []string, opt Options) []string {
	res := make([]string, len(h))
	for i, col := range h {
		c := strings.TrimSpace(col)
		if m, ok := opt.HeaderMap[c]; ok {
			res[i] = m
			continue
		}
		if c == "" {
			res[i] = fmt.Sprintf("col_%d", i)
			continue
		}
		res[i] = strings.ReplaceAll(strings.ToLower(c), " ", "_")
	}
	return res
}

// InferValue applies the InferTypes rule to a single cell: plain decimal
// integers become int64, decimals float64, anything else stays a string.
func InferValue(s string) any { return infer(s) }

// infer returns s as int64 or float64 when it is a plain decimal number,
// otherwise s itself.
func infer(s string) any {
	switch numberKind(s) {
	case kindInt:
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	case kindFloat:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

type kind int

const (
	kindText kind = iota
	kindInt
	kindFloat
)

// numberKind accepts an optional sign, digits and at most one '.' followed
// by digits. Exponents, hex and "NaN" are text. A leading zero is only
// allowed on its own or directly before the decimal point.
func numberKind(s string) kind {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i - start
	if intDigits == 0 {
		return kindText
	}
	if intDigits > 1 && s[start] == '0' {
		return kindText
	}
	if i == len(s) {
		return kindInt
	}
	if s[i] != '.' {
		return kindText
	}
	i++
	frac := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i != len(s) || i == frac {
		return kindText
	}
	return kindFloat
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
