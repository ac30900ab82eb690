// Package schemas embeds the MySQL table definitions.
package schemas

import "embed"

// Migrations holds the ordered table definition files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
