// Package migrations holds the schema of the quotestream database.
package migrations

import "embed"

// FS contains every <id>_<name>.up.sql and .down.sql file of this directory.
//
//go:embed *.sql
var FS embed.FS
