// Package migrations embeds the SQL schema applied by `server migrate` and integration tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
