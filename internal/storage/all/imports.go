// Package all registers the built-in export backends with the storage
// factory. Import it for side effects only:
//
//	import _ "collisions/internal/storage/all"
//
// DuckDB needs CGO and joins the set only in builds tagged duckdb.
package all

import (
	_ "collisions/internal/storage/mssql"
	_ "collisions/internal/storage/mysql"
	_ "collisions/internal/storage/postgres"
	_ "collisions/internal/storage/sqlite"
)
