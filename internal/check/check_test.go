package check

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/itemcheck/internal/item"
)

func seeded(ids ...int64) []item.Item {
	out := make([]item.Item, 0, len(ids))
	for _, id := range ids {
		it, ok := item.SeedItem(id)
		if ok {
			out = append(out, it)
		}
	}
	return out
}

func TestCompare_Equal(t *testing.T) {
	assert.NoError(t, Compare(seeded(10, 20, 35), seeded(10, 20, 35), OrderByID))
	assert.NoError(t, Compare(seeded(10, 20, 35), seeded(10, 20, 35), OrderStrict))
}

func TestCompare_EmptySides(t *testing.T) {
	assert.NoError(t, Compare(nil, []item.Item{}, OrderByID))
	assert.NoError(t, Compare([]item.Item{}, nil, OrderStrict))
}

func TestCompare_OrderPolicy(t *testing.T) {
	left := seeded(10, 20, 35)
	right := seeded(35, 10, 20)

	assert.NoError(t, Compare(left, right, OrderByID))

	err := Compare(left, right, OrderStrict)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 0, mismatch.Index)
	assert.Equal(t, OrderStrict, mismatch.Order)
	assert.Contains(t, err.Error(), "row 0")
}

func TestCompare_DoesNotReorderInputs(t *testing.T) {
	right := seeded(35, 10, 20)
	require.NoError(t, Compare(seeded(10, 20, 35), right, OrderByID))
	assert.Equal(t, int64(35), right[0].ID)
}

func TestCompare_LengthMismatch(t *testing.T) {
	err := Compare(seeded(10, 20, 35), seeded(10, 20), OrderByID)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Index)
	assert.Contains(t, err.Error(), "3 rows vs 2 rows")
}

func TestCompare_ValueMismatch(t *testing.T) {
	left := seeded(10, 20, 35)
	right := seeded(10, 20, 35)
	right[1].Price = decimal.NewNullDecimal(decimal.RequireFromString("1.00"))

	err := Compare(left, right, OrderByID)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 1, mismatch.Index)
	assert.Contains(t, err.Error(), `(20, "item0020", NULL) vs (20, "item0020", 1.00)`)
}

func TestCompare_NameMismatch(t *testing.T) {
	left := seeded(1)
	right := seeded(1)
	right[0].Name = "ITEM0001"

	assert.Error(t, Compare(left, right, OrderByID))
}

func TestOrder_String(t *testing.T) {
	assert.Equal(t, "by-id", OrderByID.String())
	assert.Equal(t, "strict", OrderStrict.String())
	assert.Equal(t, "Order(7)", Order(7).String())
}
