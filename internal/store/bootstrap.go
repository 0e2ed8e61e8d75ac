package store

import (
	"context"
	"fmt"

	"github.com/roach88/itemcheck/internal/batch"
	"github.com/roach88/itemcheck/internal/item"
)

// CorruptTableError is returned by Bootstrap when the items table holds a
// row count that is neither empty nor fully seeded. No repair is attempted.
type CorruptTableError struct {
	Count int64
}

func (e *CorruptTableError) Error() string {
	return fmt.Sprintf("`items` table is corrupt (%d rows, expected 0 or %d). please drop it manually.", e.Count, item.SeedCount)
}

// BootstrapResult describes what Bootstrap changed.
type BootstrapResult struct {
	Created bool  `json:"created"` // table did not exist and was created
	Seeded  bool  `json:"seeded"`  // seed fixture was inserted
	Count   int64 `json:"count"`   // row count after bootstrap
}

// Bootstrap ensures the items table exists and holds the seed fixture.
//
//   - table missing: created
//   - 0 rows: the seed fixture is inserted in one statement
//   - item.SeedCount rows: already set up, nothing is written
//   - any other count: *CorruptTableError
//
// Safe to call repeatedly once seeding has succeeded.
func (s *Store) Bootstrap(ctx context.Context) (BootstrapResult, error) {
	var result BootstrapResult

	exists, err := s.TableExists(ctx)
	if err != nil {
		return result, fmt.Errorf("bootstrap: %w", err)
	}
	s.log.Debug("items table lookup", "exists", exists, "dialect", s.dialect.Name)

	if !exists {
		if err := s.CreateTable(ctx); err != nil {
			return result, fmt.Errorf("bootstrap: %w", err)
		}
		result.Created = true
		s.log.Info("created items table")
	}

	count, err := s.CountRows(ctx)
	if err != nil {
		return result, fmt.Errorf("bootstrap: %w", err)
	}
	s.log.Debug("items row count", "count", count)

	switch count {
	case 0:
		inserted, err := s.InsertDrafts(ctx, item.SeedDrafts())
		if err != nil {
			return result, fmt.Errorf("bootstrap: seed: %w", err)
		}
		result.Seeded = true
		result.Count = inserted
		s.log.Info("seeded items table", "rows", inserted)
	case item.SeedCount:
		result.Count = count
		s.log.Info("test data has already been set up")
	default:
		return result, &CorruptTableError{Count: count}
	}

	return result, nil
}

// TableExists reports whether the items table is present.
func (s *Store) TableExists(ctx context.Context) (bool, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, s.dialect.TableExists, TableName).Scan(&n); err != nil {
		return false, fmt.Errorf("check table exists: %w", err)
	}
	return n > 0, nil
}

// CreateTable creates the items table. It fails if the table already exists.
func (s *Store) CreateTable(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.CreateTable); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

// CountRows returns the number of rows in the items table.
func (s *Store) CountRows(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, s.dialect.CountRows).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return n, nil
}

// InsertDrafts inserts drafts in a single statement by binding them as one
// JSON array and expanding it server-side. Ids are assigned in array order.
// Returns the number of rows inserted.
func (s *Store) InsertDrafts(ctx context.Context, drafts []item.Draft) (int64, error) {
	data, err := batch.EncodeDrafts(drafts)
	if err != nil {
		return 0, fmt.Errorf("insert drafts: %w", err)
	}

	res, err := s.db.ExecContext(ctx, s.dialect.InsertDrafts, data)
	if err != nil {
		return 0, fmt.Errorf("insert drafts: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("insert drafts: rows affected: %w", err)
	}
	return n, nil
}
