package store

// Dialect holds the engine-specific SQL for every statement the store runs.
//
// ExpandDrafts and ExpandIDs select a bound JSON array back as rows in array
// order. InsertDrafts and SelectBatch are built on the same expansions, so the
// column definitions used for seeding and for round trips never drift apart.
type Dialect struct {
	Name string

	// Pragmas run once per connection, right after it is opened.
	Pragmas []string

	TableExists  string // one bind: table name; returns a count
	CreateTable  string
	CountRows    string
	InsertDrafts string // one bind: JSON array of draft records
	SelectFixed  string // FixedArity binds
	SelectBatch  string // one bind: JSON array of ids
	ExpandIDs    string // one bind: JSON array of ids
	ExpandDrafts string // one bind: JSON array of draft records
}

// FixedArity is the number of placeholders in SelectFixed.
// The fixed statement does not change shape with the id list.
const FixedArity = 4

// TableName is the table bootstrapped and queried by the store.
const TableName = "items"

const insertPrefix = "INSERT INTO items (name, price)\n"

const countRows = `SELECT COUNT(id) FROM items`

// SQLite uses the JSON1 table-valued functions bundled with go-sqlite3.
var SQLite = func() *Dialect {
	d := &Dialect{
		Name: "sqlite",
		Pragmas: []string{
			"PRAGMA journal_mode = WAL",
			"PRAGMA synchronous = NORMAL",
			"PRAGMA busy_timeout = 5000",
			"PRAGMA foreign_keys = ON",
		},
		TableExists: `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`,
		CreateTable: `CREATE TABLE items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(64) COLLATE BINARY,
			price DECIMAL(8, 2)
		)`,
		CountRows:   countRows,
		SelectFixed: `SELECT id, name, price FROM items WHERE id IN (?, ?, ?, ?)`,
		SelectBatch: `SELECT
			items.id,
			items.name,
			items.price
		FROM
			items,
			json_each(?) AS ids
		WHERE
			items.id = ids.value`,
		ExpandIDs: `SELECT ids.value FROM json_each(?) AS ids ORDER BY ids.key`,
		ExpandDrafts: `SELECT
			json_extract(data.value, '$.name'),
			json_extract(data.value, '$.price')
		FROM
			json_each(?) AS data
		ORDER BY data.key`,
	}
	d.InsertDrafts = insertPrefix + d.ExpandDrafts
	return d
}()

// Postgres expands batches with jsonb_to_recordset and jsonb_array_elements.
// ROWS FROM is required to combine a column definition list with ORDINALITY.
var Postgres = func() *Dialect {
	d := &Dialect{
		Name: "postgres",
		TableExists: `SELECT COUNT(*) FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = $1`,
		CreateTable: `CREATE TABLE items (
			id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			name VARCHAR(64) COLLATE "C",
			price NUMERIC(8, 2)
		)`,
		CountRows:   countRows,
		SelectFixed: `SELECT id, name, price FROM items WHERE id IN ($1, $2, $3, $4)`,
		SelectBatch: `SELECT
			items.id,
			items.name,
			items.price
		FROM
			items,
			jsonb_array_elements($1::jsonb) AS ids(value)
		WHERE
			items.id = (ids.value)::bigint`,
		ExpandIDs: `SELECT (ids.value)::bigint
		FROM jsonb_array_elements($1::jsonb) WITH ORDINALITY AS ids(value, ord)
		ORDER BY ids.ord`,
		ExpandDrafts: `SELECT
			data.name,
			data.price
		FROM
			ROWS FROM (jsonb_to_recordset($1::jsonb) AS (name VARCHAR(64), price NUMERIC(8, 2)))
			WITH ORDINALITY AS data(name, price, ord)
		ORDER BY data.ord`,
	}
	d.InsertDrafts = insertPrefix + d.ExpandDrafts
	return d
}()

// MySQL expands batches with JSON_TABLE (8.0 and later).
var MySQL = func() *Dialect {
	d := &Dialect{
		Name: "mysql",
		TableExists: `SELECT COUNT(*) FROM information_schema.tables
			WHERE table_schema = DATABASE() AND table_name = ?`,
		CreateTable: `CREATE TABLE items (
			id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(64) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin,
			price DECIMAL(8, 2)
		)`,
		CountRows:   countRows,
		SelectFixed: `SELECT id, name, price FROM items WHERE id IN (?, ?, ?, ?)`,
		SelectBatch: `SELECT
			items.id,
			items.name,
			items.price
		FROM
			items,
			JSON_TABLE(?, '$[*]' COLUMNS (id BIGINT PATH '$' ERROR ON ERROR)) AS ids
		WHERE
			items.id = ids.id`,
		ExpandIDs: `SELECT ids.id
		FROM JSON_TABLE(?, '$[*]' COLUMNS (
			ord FOR ORDINALITY,
			id BIGINT PATH '$' ERROR ON ERROR
		)) AS ids
		ORDER BY ids.ord`,
		ExpandDrafts: `SELECT
			data.name,
			data.price
		FROM
			JSON_TABLE(?, '$[*]' COLUMNS (
				ord FOR ORDINALITY,
				name VARCHAR(64) PATH '$.name',
				price DECIMAL(8, 2) PATH '$.price'
			)) AS data
		ORDER BY data.ord`,
	}
	d.InsertDrafts = insertPrefix + d.ExpandDrafts
	return d
}()

// Dialects lists every supported dialect.
var Dialects = []*Dialect{SQLite, Postgres, MySQL}
