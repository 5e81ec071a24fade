//go:build cgo && duckdb && (linux || darwin || windows) && (amd64 || arm64)

package all

import _ "collisions/internal/storage/duckdb"
