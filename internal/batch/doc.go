// Package batch encodes parameter lists as a single JSON value.
//
// A batch is bound to one statement placeholder and expanded back into
// rows by the database engine (json_each, jsonb_to_recordset, JSON_TABLE).
// This keeps the statement text identical for any list length.
//
// Two shapes are supported:
//   - identifier lists: a JSON array of integers, e.g. [10,20,381,35]
//   - draft records: a JSON array of {"name": ..., "price": ...} objects,
//     where price is a JSON number or null
package batch
