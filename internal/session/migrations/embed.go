// Package migrations holds the schema scripts for the file session store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
