package item

import (
	"github.com/shopspring/decimal"
)

// Item is a row of the items table.
type Item struct {
	ID    int64               `json:"id"`
	Name  string              `json:"name"`
	Price decimal.NullDecimal `json:"price"`
}

// Draft is an item that has not been assigned an id yet.
// Seed batches are made of drafts; ids are assigned by the database.
type Draft struct {
	Name  string              `json:"name"`
	Price decimal.NullDecimal `json:"price"`
}

// Equal reports whether two items hold the same values.
// Prices compare numerically, so 11.25 and 11.250 are equal.
func (it Item) Equal(other Item) bool {
	return it.ID == other.ID && it.Name == other.Name && PriceEqual(it.Price, other.Price)
}

// Equal reports whether two drafts hold the same values.
func (d Draft) Equal(other Draft) bool {
	return d.Name == other.Name && PriceEqual(d.Price, other.Price)
}

// PriceEqual compares two nullable prices. Two nulls are equal.
func PriceEqual(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	if !a.Valid {
		return true
	}
	return a.Decimal.Equal(b.Decimal)
}

// FormatPrice renders a price with two fractional digits, or "NULL".
func FormatPrice(p decimal.NullDecimal) string {
	if !p.Valid {
		return "NULL"
	}
	return p.Decimal.StringFixed(2)
}
