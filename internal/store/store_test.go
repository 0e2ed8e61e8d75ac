package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	// Verify file was created
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
	if s.Dialect() != SQLite {
		t.Errorf("Dialect() = %q, expected sqlite", s.Dialect().Name)
	}
}

func TestOpen_SQLiteScheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(context.Background(), "sqlite://"+path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created at the path after the scheme")
	}
}

func TestOpen_InMemory(t *testing.T) {
	s, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	// The single pooled connection keeps the in-memory database alive
	if _, err := s.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap() failed: %v", err)
	}
	n, err := s.CountRows(context.Background())
	if err != nil {
		t.Fatalf("CountRows() failed: %v", err)
	}
	if n != 100 {
		t.Errorf("CountRows() = %d, expected 100", n)
	}
}

func TestOpen_InvalidPath(t *testing.T) {
	// Try to open in non-existent directory
	path := "/nonexistent/dir/test.db"

	_, err := Open(context.Background(), path)
	if err == nil {
		t.Error("expected error for invalid path, got nil")
	}
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), "")
	if err == nil {
		t.Error("expected error for empty connection string, got nil")
	}
}

func TestOpen_SingleConnection(t *testing.T) {
	s := createTestStore(t)

	if got := s.DB().Stats().MaxOpenConnections; got != 1 {
		t.Errorf("MaxOpenConnections = %d, expected 1", got)
	}
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{db: nil}
	err := s.Close()
	if err != nil {
		t.Errorf("Close() on nil db should not error: %v", err)
	}
}

func TestClose_MultipleCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if err := s.Close(); err != nil {
		t.Errorf("first Close() failed: %v", err)
	}

	// Second close should not panic
	_ = s.Close()
}

// Pragma tests

func TestPragma_JournalMode(t *testing.T) {
	s := createTestStore(t)

	if err := s.verifyPragma("journal_mode", "wal"); err != nil {
		t.Error(err)
	}
}

func TestPragma_Synchronous(t *testing.T) {
	s := createTestStore(t)

	// NORMAL = 1
	if err := s.verifyPragma("synchronous", "1"); err != nil {
		t.Error(err)
	}
}

func TestPragma_BusyTimeout(t *testing.T) {
	s := createTestStore(t)

	if err := s.verifyPragma("busy_timeout", "5000"); err != nil {
		t.Error(err)
	}
}

func TestPragma_ForeignKeys(t *testing.T) {
	s := createTestStore(t)

	// ON = 1
	if err := s.verifyPragma("foreign_keys", "1"); err != nil {
		t.Error(err)
	}
}

// Schema tests

func TestSchema_ItemsTable(t *testing.T) {
	s := createTestStore(t)

	if err := s.CreateTable(context.Background()); err != nil {
		t.Fatalf("CreateTable() failed: %v", err)
	}

	columns := getTableColumns(t, s.db, "items")

	if len(columns) != 3 {
		t.Fatalf("items table has %d columns, expected 3", len(columns))
	}
	for _, name := range []string{"id", "name", "price"} {
		if _, ok := columns[name]; !ok {
			t.Errorf("items table missing column %q", name)
		}
	}
	// Only INTEGER PRIMARY KEY aliases the rowid
	if columns["id"] != "INTEGER" {
		t.Errorf("items.id has type %q, expected INTEGER", columns["id"])
	}
}

func TestSchema_CreateTableTwiceFails(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if err := s.CreateTable(ctx); err != nil {
		t.Fatalf("CreateTable() failed: %v", err)
	}
	if err := s.CreateTable(ctx); err == nil {
		t.Error("expected second CreateTable() to fail")
	}
}

func getTableColumns(t *testing.T, db *sql.DB, table string) map[string]string {
	t.Helper()

	rows, err := db.Query("PRAGMA table_info(" + table + ")")
	if err != nil {
		t.Fatalf("failed to get table info for %q: %v", table, err)
	}
	defer rows.Close()

	columns := make(map[string]string)
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue interface{}
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			t.Fatalf("failed to scan column info: %v", err)
		}
		columns[name] = ctype
	}
	return columns
}
