// Package migrations embeds the goose SQL migrations so binaries and tests
// do not depend on the working directory.
package migrations

import "embed"

// FS holds every *.sql migration in version order.
//
//go:embed *.sql
var FS embed.FS

// VersionLegacySchema is the last version without the unique index on
// recipes.external_id. Databases at this version may hold duplicate imports.
const VersionLegacySchema int64 = 1
