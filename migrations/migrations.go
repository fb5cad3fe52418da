// Package migrations embeds the goose SQL migrations so cmd/migrate and
// the test helper apply the same schema without filesystem pathfinding.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
