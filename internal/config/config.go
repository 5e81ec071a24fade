// Package config collects the load_collisions settings from command-line
// flags, with environment variables seeding each flag's default.
//
//	cfg, err := config.Load() // os.Args and os.Getenv
//
// Tests call LoadFromArgs with a private FlagSet and a map-backed getenv.
package config

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"collisions/internal/parser/csv"
)

// DefaultResourceDir is the resource root used when neither -resources nor
// RESOURCES_DIR is set.
const DefaultResourceDir = "resources"

// Metrics backends accepted by -metrics_backend.
const (
	MetricsNone        = "none"
	MetricsPushgateway = "pushgateway"
	MetricsDatadog     = "datadog"
)

// Config holds every process setting. It is a plain value once loaded.
type Config struct {
	// Input selection.
	ResourceDir  string
	Region       string
	ArchivesFrom string // file listing archive paths; overrides discovery
	Workers      int

	// Where holds equality criteria applied after loading.
	Where Criteria

	// Output.
	Out string // JSON-lines path; "-" is stdout, "" disables

	// Export. An empty DBDriver disables export.
	DBDriver  string
	DSN       string
	Table     string
	BatchSize int

	// Metrics.
	MetricsBackend string
	PushgatewayURL string
	DogStatsDAddr  string
	Job            string

	Verbose bool
}

// Criteria is a repeatable key=value flag. Values are typed the way CSV
// cells are, so -where speed_limit=30 matches the loaded int64 30.
type Criteria map[string]any

// String renders the criteria sorted by key.
func (c Criteria) String() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, c[k])
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (c Criteria) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return fmt.Errorf("criterion %q: want key=value", s)
	}
	c[k] = csv.InferValue(strings.TrimSpace(v))
	return nil
}

// LoadFromArgs defines the flags on fs, seeds their defaults from getenv and
// parses args. Explicit flags win over the environment.
func LoadFromArgs(fs *flag.FlagSet, getenv func(string) string, args []string) (*Config, error) {
	cfg := &Config{Where: Criteria{}}

	envOrDefault := func(k, d string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return d
	}
	intEnvOrDefault := func(k string, d int) int {
		if v := getenv(k); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				return i
			}
		}
		return d
	}
	boolEnvOrDefault := func(k string, d bool) bool {
		switch strings.ToLower(getenv(k)) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
		return d
	}

	// WHERE holds ';'-separated pairs, e.g. "accident_year=2020;speed_limit=30".
	for _, pair := range strings.Split(getenv("WHERE"), ";") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		if err := cfg.Where.Set(pair); err != nil {
			return nil, fmt.Errorf("config: WHERE: %w", err)
		}
	}

	fs.StringVar(&cfg.ResourceDir, "resources", envOrDefault("RESOURCES_DIR", DefaultResourceDir), "Root directory holding regional .tgz archives")
	fs.StringVar(&cfg.Region, "region", getenv("REGION"), "Only load archives under <resources>/<region>")
	fs.StringVar(&cfg.ArchivesFrom, "archives_from", getenv("ARCHIVES_FROM"), "File listing archive paths to load instead of scanning -resources")
	fs.IntVar(&cfg.Workers, "workers", intEnvOrDefault("WORKERS", 1), "Archive groups loaded concurrently")
	fs.Var(cfg.Where, "where", "Equality filter key=value (repeatable)")

	fs.StringVar(&cfg.Out, "out", getenv("OUT"), "Write matched records as JSON lines to this path ('-' for stdout)")

	fs.StringVar(&cfg.DBDriver, "db_driver", getenv("DB_DRIVER"), "Export backend: sqlite, postgres, mssql, mysql or duckdb (empty disables export)")
	fs.StringVar(&cfg.DSN, "dsn", getenv("DB_DSN"), "Export backend DSN")
	fs.StringVar(&cfg.Table, "table", envOrDefault("DB_TABLE", "collisions"), "Export table, optionally schema-qualified")
	fs.IntVar(&cfg.BatchSize, "batch_size", intEnvOrDefault("BATCH_SIZE", 5000), "Rows per export batch")

	fs.StringVar(&cfg.MetricsBackend, "metrics_backend", envOrDefault("METRICS_BACKEND", MetricsNone), "Metrics backend: none, pushgateway or datadog")
	fs.StringVar(&cfg.PushgatewayURL, "pushgateway_url", envOrDefault("PUSHGATEWAY_URL", "http://localhost:9091"), "Prometheus Pushgateway URL")
	fs.StringVar(&cfg.DogStatsDAddr, "dogstatsd_addr", envOrDefault("DOGSTATSD_ADDR", "127.0.0.1:8125"), "DogStatsD address")
	fs.StringVar(&cfg.Job, "job", envOrDefault("JOB", "collisions"), "Job label for metrics")

	fs.BoolVar(&cfg.Verbose, "v", boolEnvOrDefault("VERBOSE", false), "Verbose logging")

	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load parses os.Args with flag.CommandLine and os.Getenv.
func Load() (*Config, error) {
	return LoadFromArgs(flag.CommandLine, os.Getenv, os.Args[1:])
}

// Validate checks value ranges and cross-field requirements.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be >= 1, got %d", c.Workers)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("config: batch_size must be >= 1, got %d", c.BatchSize)
	}
	switch c.MetricsBackend {
	case MetricsNone, MetricsPushgateway, MetricsDatadog:
	default:
		return fmt.Errorf("config: unknown metrics backend %q", c.MetricsBackend)
	}
	if c.DBDriver != "" && strings.TrimSpace(c.Table) == "" {
		return fmt.Errorf("config: -table is required with -db_driver")
	}
	if c.DBDriver != "" && c.DBDriver != "duckdb" && strings.TrimSpace(c.DSN) == "" {
		return fmt.Errorf("config: -dsn is required for db_driver %q", c.DBDriver)
	}
	return nil
}
