package store

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore creates a new file-backed SQLite store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createSeededStore creates a test store and bootstraps it.
func createSeededStore(t *testing.T) *Store {
	t.Helper()
	s := createTestStore(t)
	if _, err := s.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap() failed: %v", err)
	}
	return s
}
