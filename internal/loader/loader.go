// Package loader assembles collision collections from bundled .tgz
// releases: each archive is unpacked next to itself, every .csv under the
// extraction directory is decoded, and each row becomes one Collision.
package loader

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"collisions/internal/collision"
	"collisions/internal/datasource"
	"collisions/internal/datasource/archive"
	"collisions/internal/datasource/file"
	"collisions/internal/metrics"
	"collisions/internal/parser"
	"collisions/internal/parser/csv"
	"collisions/pkg/records"
)

// Verbose enables per-file debug lines.
var Verbose bool

func debugf(format string, args ...any) {
	if Verbose {
		log.Printf(format, args...)
	}
}

// Collisions is the collection type produced by the loader.
type Collisions = collision.Collection[*collision.Collision]

// Loader reads archives into collections. The zero value loads
// sequentially; use New for defaults.
type Loader struct {
	// Workers bounds how many independent archive groups are loaded at once.
	// Values below 2 load sequentially.
	Workers int

	// Job labels metrics.
	Job string

	tables parser.Streamer
}

// Option configures a Loader.
type Option func(*Loader)

// WithWorkers sets Loader.Workers.
func WithWorkers(n int) Option { return func(l *Loader) { l.Workers = n } }

// WithJob sets the metrics job label.
func WithJob(job string) Option { return func(l *Loader) { l.Job = job } }

// WithParserOptions replaces the CSV options used for extracted tables.
func WithParserOptions(opt csv.Options) Option {
	return WithStreamer(csv.NewParser(opt))
}

// WithStreamer sets the decoder for extracted tables.
func WithStreamer(s parser.Streamer) Option {
	return func(l *Loader) { l.tables = s }
}

// DefaultParserOptions trims cells and infers numeric types, which is how the
// bundled tables are meant to be read.
func DefaultParserOptions() csv.Options {
	return csv.Options{TrimSpace: true, InferTypes: true}
}

// New returns a sequential Loader with the default CSV options.
func New(opts ...Option) *Loader {
	l := &Loader{Workers: 1, Job: "collisions"}
	for _, o := range opts {
		o(l)
	}
	if l.tables == nil {
		l.tables = csv.NewParser(DefaultParserOptions())
	}
	return l
}

func (l *Loader) streamer() parser.Streamer {
	if l.tables == nil {
		return csv.NewParser(DefaultParserOptions())
	}
	return l.tables
}

// FromArchive extracts the archive at path into its parent directory and
// decodes every .csv found anywhere under that directory, in lexical path
// order then row order. Only .tgz is accepted; other extensions fail with
// collision.ErrUnsupportedFormat. Extracted files are left on disk.
func (l *Loader) FromArchive(ctx context.Context, path string) (*Collisions, error) {
	if !archive.Supported(path) {
		return nil, fmt.Errorf("load %s: %w", path, collision.ErrUnsupportedFormat)
	}

	start := time.Now()
	st, err := archive.Extract(ctx, path)
	metrics.RecordStep(l.Job, "extract", err, time.Since(start))
	if err != nil {
		return nil, err
	}

	start = time.Now()
	out, err := l.decodeDir(ctx, st.Dir)
	metrics.RecordStep(l.Job, "decode", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	metrics.RecordRow(l.Job, "decoded", int64(out.Len()))
	debugf("loader: archive=%s rows=%d", path, out.Len())
	return out, nil
}

func (l *Loader) decodeDir(ctx context.Context, dir string) (*Collisions, error) {
	paths, err := file.FindFiles(dir, ".csv")
	if err != nil {
		return nil, err
	}
	out := collision.NewCollection[*collision.Collision]()
	for _, p := range paths {
		if err := l.decodeFile(ctx, file.NewLocal(p), out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (l *Loader) decodeFile(ctx context.Context, src datasource.Named, out *Collisions) error {
	rc, err := src.Open(ctx)
	if err != nil {
		return err
	}
	defer rc.Close()

	before := out.Len()
	err = l.streamer().Stream(ctx, rc, func(line int, rec records.Record) error {
		c, err := collision.FromRaw(rec)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		out.Append(c)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", src.Name(), err)
	}
	debugf("loader: file=%s rows=%d", src.Name(), out.Len()-before)
	return nil
}

// FromDirectory loads every .tgz under root, or under root/region when
// region is set, and concatenates the results in discovery order.
func (l *Loader) FromDirectory(ctx context.Context, root, region string) (*Collisions, error) {
	dir := root
	if region != "" {
		dir = filepath.Join(root, region)
	}
	paths, err := file.FindFiles(dir, archive.Ext)
	if err != nil {
		return nil, fmt.Errorf("load directory: %w", err)
	}
	log.Printf("loader: dir=%s archives=%d workers=%d", dir, len(paths), l.Workers)
	return l.FromArchives(ctx, paths)
}

// FromArchives loads the given archives and concatenates the results in the
// order given.
func (l *Loader) FromArchives(ctx context.Context, paths []string) (*Collisions, error) {
	if l.Workers > 1 && len(paths) > 1 {
		return l.loadParallel(ctx, paths)
	}
	return l.loadSequential(ctx, paths)
}

func (l *Loader) loadSequential(ctx context.Context, paths []string) (*Collisions, error) {
	out := collision.NewCollection[*collision.Collision]()
	for _, p := range paths {
		c, err := l.FromArchive(ctx, p)
		if err != nil {
			return nil, err
		}
		out.Extend(c)
	}
	return out, nil
}

// LoadAll loads every archive under resourceDir (optionally restricted to one
// region subdirectory).
func (l *Loader) LoadAll(ctx context.Context, resourceDir, region string) (*Collisions, error) {
	start := time.Now()
	out, err := l.FromDirectory(ctx, resourceDir, region)
	metrics.RecordStep(l.Job, "load", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	log.Printf("loader: loaded=%d elapsed=%s", out.Len(), time.Since(start).Truncate(time.Millisecond))
	return out, nil
}

// LoadVehicles loads like LoadAll and projects every row onto the vehicle
// schema.
func (l *Loader) LoadVehicles(ctx context.Context, resourceDir, region string) (*collision.Collection[*collision.Vehicle], error) {
	all, err := l.LoadAll(ctx, resourceDir, region)
	if err != nil {
		return nil, err
	}
	out := collision.NewCollection[*collision.Vehicle]()
	for _, c := range all.All() {
		out.Append(c.Vehicle())
	}
	return out, nil
}

// LoadAll is New().LoadAll.
func LoadAll(ctx context.Context, resourceDir, region string) (*Collisions, error) {
	return New().LoadAll(ctx, resourceDir, region)
}
