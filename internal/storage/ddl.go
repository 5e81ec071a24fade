package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// DDLBuilder renders a CREATE TABLE IF NOT EXISTS statement for table with
// one nullable text column per name, in the backend's dialect.
type DDLBuilder func(table string, columns []string) (string, error)

var (
	ddlMu  sync.RWMutex
	ddlFns = map[string]DDLBuilder{}
)

// RegisterDDL installs (or replaces) the DDL builder for kind.
func RegisterDDL(kind string, fn DDLBuilder) {
	ddlMu.Lock()
	defer ddlMu.Unlock()
	ddlFns[kind] = fn
}

// EnsureTable creates table on repo using the builder registered for kind.
func EnsureTable(ctx context.Context, kind string, repo Repository, table string, columns []string) error {
	ddlMu.RLock()
	fn, ok := ddlFns[kind]
	ddlMu.RUnlock()
	if !ok {
		return fmt.Errorf("storage: no DDL builder registered for kind %q", kind)
	}
	stmt, err := fn(table, columns)
	if err != nil {
		return fmt.Errorf("storage: build DDL: %w", err)
	}
	if err := repo.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("storage: apply DDL: %w", err)
	}
	return nil
}

// Dialect describes how a backend quotes identifiers and spells a text
// column. BuildCreateTable renders DDL from it.
type Dialect struct {
	Quote    func(ident string) string
	TextType string
	// IfNotExists is false for dialects without CREATE TABLE IF NOT EXISTS;
	// BuildCreateTable then wraps the statement in Guard.
	IfNotExists bool
	Guard       func(table, stmt string) string
}

// BuildCreateTable renders DDL for table in dialect d. Schema-qualified names
// ("main.collisions") are quoted segment by segment.
func (d Dialect) BuildCreateTable(table string, columns []string) (string, error) {
	table = strings.TrimSpace(table)
	if table == "" {
		return "", fmt.Errorf("table name must not be empty")
	}
	if len(columns) == 0 {
		return "", fmt.Errorf("table %s: at least one column is required", table)
	}
	cols := make([]string, len(columns))
	for i, c := range columns {
		c = strings.TrimSpace(c)
		if c == "" {
			return "", fmt.Errorf("table %s: column %d has an empty name", table, i)
		}
		cols[i] = d.Quote(c) + " " + d.TextType + " NULL"
	}

	head := "CREATE TABLE "
	if d.IfNotExists {
		head += "IF NOT EXISTS "
	}
	stmt := fmt.Sprintf("%s%s (\n  %s\n)", head, d.QuoteFQN(table), strings.Join(cols, ",\n  "))
	if !d.IfNotExists && d.Guard != nil {
		stmt = d.Guard(table, stmt)
	}
	return stmt, nil
}

// QuoteFQN quotes every dot-separated segment of name.
func (d Dialect) QuoteFQN(name string) string {
	parts := strings.Split(name, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, d.Quote(p))
		}
	}
	return strings.Join(out, ".")
}

// DoubleQuote quotes an identifier ANSI-style, doubling embedded quotes.
func DoubleQuote(id string) string { return `"` + strings.ReplaceAll(id, `"`, `""`) + `"` }
