package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/roach88/itemcheck/internal/batch"
	"github.com/roach88/itemcheck/internal/item"
)

// ErrFixedArity is returned when the fixed query gets an id list whose
// length differs from FixedArity.
var ErrFixedArity = errors.New("fixed query requires exactly 4 ids")

// ItemsByFixedIDs selects items with a membership filter over exactly
// FixedArity bound parameters. Row order is whatever the engine returns.
func (s *Store) ItemsByFixedIDs(ctx context.Context, ids []int64) ([]item.Item, error) {
	if len(ids) != FixedArity {
		return nil, fmt.Errorf("%w: got %d", ErrFixedArity, len(ids))
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.SelectFixed, args...)
	if err != nil {
		return nil, fmt.Errorf("query fixed ids: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ItemsByBatchIDs selects items by joining against the server-side expansion
// of ids encoded as one JSON array. Any list length is accepted; duplicate
// ids produce duplicate rows. Row order is whatever the engine returns.
func (s *Store) ItemsByBatchIDs(ctx context.Context, ids []int64) ([]item.Item, error) {
	data, err := batch.EncodeIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("query batch ids: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.SelectBatch, data)
	if err != nil {
		return nil, fmt.Errorf("query batch ids: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ExpandIDs binds ids as a JSON array and reads them back through the
// engine's expansion, in array order.
func (s *Store) ExpandIDs(ctx context.Context, ids []int64) ([]int64, error) {
	data, err := batch.EncodeIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("expand ids: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.ExpandIDs, data)
	if err != nil {
		return nil, fmt.Errorf("expand ids: %w", err)
	}
	defer rows.Close()

	out := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan expanded id: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expanded ids: %w", err)
	}
	return out, nil
}

// ExpandDrafts binds drafts as a JSON array and reads them back through the
// same column definitions the seed insert uses, in array order.
func (s *Store) ExpandDrafts(ctx context.Context, drafts []item.Draft) ([]item.Draft, error) {
	data, err := batch.EncodeDrafts(drafts)
	if err != nil {
		return nil, fmt.Errorf("expand drafts: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, s.dialect.ExpandDrafts, data)
	if err != nil {
		return nil, fmt.Errorf("expand drafts: %w", err)
	}
	defer rows.Close()

	out := []item.Draft{}
	for rows.Next() {
		var (
			name  sql.NullString
			price decimal.NullDecimal
		)
		if err := rows.Scan(&name, &price); err != nil {
			return nil, fmt.Errorf("scan expanded draft: %w", err)
		}
		out = append(out, item.Draft{Name: name.String, Price: price})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expanded drafts: %w", err)
	}
	return out, nil
}

// scanItems drains rows shaped (id, name, price).
// Returns an empty slice (not nil) when there are no rows.
func scanItems(rows *sql.Rows) ([]item.Item, error) {
	items := []item.Item{}
	for rows.Next() {
		var (
			it   item.Item
			name sql.NullString
		)
		if err := rows.Scan(&it.ID, &name, &it.Price); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Name = name.String
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
