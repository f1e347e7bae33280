package store

import "embed"

// Migrations holds the schema, applied on every NewStore.
//
//go:embed migrations/*.sql
var Migrations embed.FS
