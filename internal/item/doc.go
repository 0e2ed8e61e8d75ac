// Package item defines the rows stored in the items table and the
// deterministic seed fixture used to populate it.
//
// Prices are fixed-point decimals with two fractional digits. A missing
// price is represented by an invalid decimal.NullDecimal, never by zero.
package item
