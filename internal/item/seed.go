package item

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SeedCount is the number of rows in a fully seeded items table.
const SeedCount = 100

// SeedPrice is the price carried by every other seeded row.
var SeedPrice = decimal.New(1125, -2)

// SeedName returns the name of the seed row at 0-based index i.
// Names are 1-based and zero padded: index 0 is "item0001".
func SeedName(i int) string {
	return fmt.Sprintf("item%04d", i+1)
}

// SeedDrafts returns the seed fixture: SeedCount drafts in insertion order.
// Even indexes get SeedPrice, odd indexes have no price.
func SeedDrafts() []Draft {
	drafts := make([]Draft, SeedCount)
	for i := range drafts {
		drafts[i] = Draft{Name: SeedName(i)}
		if i%2 == 0 {
			drafts[i].Price = decimal.NewNullDecimal(SeedPrice)
		}
	}
	return drafts
}

// SeedItem returns the row the database is expected to hold for id once
// the seed fixture has been inserted into an empty table.
// ok is false when id lies outside 1..SeedCount.
func SeedItem(id int64) (it Item, ok bool) {
	if id < 1 || id > SeedCount {
		return Item{}, false
	}
	d := SeedDrafts()[id-1]
	return Item{ID: id, Name: d.Name, Price: d.Price}, true
}
