// Package migrations carries the embedded goose migration scripts.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
