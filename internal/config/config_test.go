package config

import (
	"flag"
	"io"
	"reflect"
	"strings"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func noEnv(string) string { return "" }

func TestLoadFromArgs_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFromArgs(newFlagSet(), noEnv, nil)
	if err != nil {
		t.Fatalf("LoadFromArgs: %v", err)
	}
	if cfg.ResourceDir != DefaultResourceDir || cfg.Workers != 1 || cfg.BatchSize != 5000 {
		t.Fatalf("defaults not set: %+v", cfg)
	}
	if cfg.Table != "collisions" || cfg.MetricsBackend != MetricsNone || cfg.DBDriver != "" {
		t.Fatalf("defaults not set: %+v", cfg)
	}
	if len(cfg.Where) != 0 {
		t.Fatalf("Where = %v, want empty", cfg.Where)
	}
}

func TestLoadFromArgs_EnvThenFlags(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"RESOURCES_DIR": "/data/stats19",
		"REGION":        "london",
		"WORKERS":       "2",
		"DB_DRIVER":     "sqlite",
		"DB_DSN":        "out.db",
		"VERBOSE":       "yes",
		"WHERE":         "accident_year=2019; police_force=01",
	}
	getenv := func(k string) string { return env[k] }

	cfg, err := LoadFromArgs(newFlagSet(), getenv, []string{"-workers=6", "-where", "speed_limit=30", "-where", "accident_year=2020"})
	if err != nil {
		t.Fatalf("LoadFromArgs: %v", err)
	}
	if cfg.ResourceDir != "/data/stats19" || cfg.Region != "london" || !cfg.Verbose {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Workers != 6 {
		t.Fatalf("flag override not applied: %d", cfg.Workers)
	}
	want := Criteria{"accident_year": int64(2020), "police_force": "01", "speed_limit": int64(30)}
	if !reflect.DeepEqual(cfg.Where, want) {
		t.Fatalf("Where = %#v, want %#v", cfg.Where, want)
	}
	if got := cfg.Where.String(); got != "accident_year=2020,police_force=01,speed_limit=30" {
		t.Fatalf("String = %q", got)
	}
}

func TestLoadFromArgs_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{"bad where", nil, []string{"-where", "nokey"}, "want key=value"},
		{"bad env where", map[string]string{"WHERE": "=1"}, nil, "WHERE"},
		{"zero workers", nil, []string{"-workers=0"}, "workers"},
		{"zero batch", nil, []string{"-batch_size=0"}, "batch_size"},
		{"metrics", nil, []string{"-metrics_backend=statsd"}, "unknown metrics backend"},
		{"missing dsn", nil, []string{"-db_driver=postgres"}, "-dsn is required"},
		{"missing table", nil, []string{"-db_driver=sqlite", "-dsn=x.db", "-table="}, "-table is required"},
		{"unknown flag", nil, []string{"-nope"}, "nope"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			getenv := func(k string) string { return c.env[k] }
			_, err := LoadFromArgs(newFlagSet(), getenv, c.args)
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("err = %v, want substring %q", err, c.want)
			}
		})
	}
}

func TestValidate_DuckDBWithoutDSN(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFromArgs(newFlagSet(), noEnv, []string{"-db_driver=duckdb"})
	if err != nil {
		t.Fatalf("duckdb without DSN should be in-memory: %v", err)
	}
	if cfg.DBDriver != "duckdb" {
		t.Fatalf("DBDriver = %q", cfg.DBDriver)
	}
}
