// Package store owns the database connection and every statement run
// against the items table.
//
// The store provides:
//   - Bootstrap: idempotent table creation and one-shot seeding
//   - Fixed queries: a membership filter with exactly FixedArity placeholders
//   - Batch queries: a JSON array bound as one parameter and joined against
//     the engine's expansion of it
//   - Expansion: the same JSON arrays selected straight back, for round trips
//
// # Dialects
//
// The connection string scheme picks the dialect:
//   - sqlite:, file:, bare paths and :memory: use go-sqlite3 and json_each
//   - postgres:// and postgresql:// use pgx and jsonb_to_recordset
//   - mysql:// uses go-sql-driver/mysql and JSON_TABLE
//
// # Connection
//
// Exactly one connection is kept open. Statements are issued one at a time
// so both query strategies observe the same table state.
//
// SQLite databases additionally get:
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
package store
