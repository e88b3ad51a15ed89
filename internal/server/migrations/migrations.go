// Package migrations embeds the PostgreSQL schema migrations applied by goose
// when the credential store runs on PostgreSQL.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
