package migrations

import "embed"

// FS embeds SQL migration files stored in this directory. The
// golang-migrate library will read these files via the iofs driver when
// applying migrations.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the ledger repository is written
// against. It must equal the number of the newest NNNNNN_*.up.sql file
// here; 000001_ledger creates the campaigns and ledger_state tables.
// Bump it together with any new migration.
const Version = 1
