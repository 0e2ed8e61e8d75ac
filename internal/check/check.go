// Package check compares the result sets of two query strategies.
package check

import (
	"fmt"
	"sort"

	"github.com/roach88/itemcheck/internal/item"
)

// Order selects how result sets are aligned before comparison.
type Order int

const (
	// OrderByID sorts copies of both sides by id, then name. Engines make no
	// ordering promise across different statement shapes.
	OrderByID Order = iota
	// OrderStrict compares rows exactly as the engine returned them.
	OrderStrict
)

func (o Order) String() string {
	switch o {
	case OrderByID:
		return "by-id"
	case OrderStrict:
		return "strict"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// MismatchError reports the first position where two result sets differ.
type MismatchError struct {
	Order Order
	Index int         // first differing position; equals the shorter length on a length mismatch
	Left  []item.Item // as compared, after ordering
	Right []item.Item
}

func (e *MismatchError) Error() string {
	if len(e.Left) != len(e.Right) {
		return fmt.Sprintf("result sets differ in length (%s order): %d rows vs %d rows", e.Order, len(e.Left), len(e.Right))
	}
	return fmt.Sprintf("result sets differ at row %d (%s order): %s vs %s",
		e.Index, e.Order, describe(e.Left[e.Index]), describe(e.Right[e.Index]))
}

// Compare returns nil when left and right hold the same rows under order,
// and a *MismatchError otherwise. The inputs are not modified.
func Compare(left, right []item.Item, order Order) error {
	l, r := left, right
	if order == OrderByID {
		l, r = sorted(left), sorted(right)
	}

	n := min(len(l), len(r))
	for i := 0; i < n; i++ {
		if !l[i].Equal(r[i]) {
			return &MismatchError{Order: order, Index: i, Left: l, Right: r}
		}
	}
	if len(l) != len(r) {
		return &MismatchError{Order: order, Index: n, Left: l, Right: r}
	}
	return nil
}

func sorted(items []item.Item) []item.Item {
	out := make([]item.Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func describe(it item.Item) string {
	return fmt.Sprintf("(%d, %q, %s)", it.ID, it.Name, item.FormatPrice(it.Price))
}
