// Package migrations embeds the SQL schema migrations for the booking log.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
