package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/itemcheck/internal/item"
	"github.com/roach88/itemcheck/internal/store"
)

// DatabasePath returns a path for a fresh SQLite database in t.TempDir().
// The file does not exist yet.
func DatabasePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "items.db")
}

// SeededDatabase returns the path of a bootstrapped SQLite database.
func SeededDatabase(t *testing.T) string {
	t.Helper()
	path := DatabasePath(t)
	withStore(t, path, func(s *store.Store) {
		if _, err := s.Bootstrap(context.Background()); err != nil {
			t.Fatalf("Bootstrap() failed: %v", err)
		}
	})
	return path
}

// CorruptDatabase returns the path of a database whose items table holds
// rows seed rows, which must be neither 0 nor item.SeedCount.
func CorruptDatabase(t *testing.T, rows int) string {
	t.Helper()
	if rows <= 0 || rows >= item.SeedCount {
		t.Fatalf("CorruptDatabase: %d rows is not a corrupt count", rows)
	}

	path := DatabasePath(t)
	withStore(t, path, func(s *store.Store) {
		ctx := context.Background()
		if err := s.CreateTable(ctx); err != nil {
			t.Fatalf("CreateTable() failed: %v", err)
		}
		if _, err := s.InsertDrafts(ctx, item.SeedDrafts()[:rows]); err != nil {
			t.Fatalf("InsertDrafts() failed: %v", err)
		}
	})
	return path
}

func withStore(t *testing.T, path string, fn func(*store.Store)) {
	t.Helper()
	s, err := store.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()
	fn(s)
}
