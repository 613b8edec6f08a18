// Package migrations embeds the goose SQL migration files so that
// cmd/migrate and the test helper can apply them without a filesystem path.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
