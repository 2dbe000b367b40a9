// Package migrations holds the versioned schema of the global tables. Tenant
// tables are not migrated; they are provisioned per admin at runtime.
package migrations

import "embed"

//go:embed postgres/*.sql mysql/*.sql sqlite3/*.sql
var FS embed.FS
