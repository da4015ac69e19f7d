// Package migrations contiene los scripts SQL embebidos aplicados por goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
