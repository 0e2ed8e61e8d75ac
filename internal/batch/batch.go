package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/roach88/itemcheck/internal/item"
)

// ErrNotInteger is returned when an identifier batch holds a value that is
// not a 64-bit integer.
var ErrNotInteger = errors.New("batch element is not an integer")

// record is the wire shape of a draft. Price is a number literal so the
// engine reads it as a decimal rather than a string.
type record struct {
	Name  string       `json:"name"`
	Price *json.Number `json:"price"`
}

// EncodeIDs serializes identifiers as a JSON array. A nil slice encodes as [].
func EncodeIDs(ids []int64) (string, error) {
	if ids == nil {
		ids = []int64{}
	}
	return encode(ids)
}

// DecodeIDs parses a JSON array of integers.
func DecodeIDs(data string) ([]int64, error) {
	var raw []any
	if err := decode(data, &raw); err != nil {
		return nil, fmt.Errorf("decode ids: %w", err)
	}

	ids := make([]int64, 0, len(raw))
	for i, elem := range raw {
		n, ok := elem.(json.Number)
		if !ok {
			return nil, fmt.Errorf("decode ids: element %d (%v): %w", i, elem, ErrNotInteger)
		}
		v, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decode ids: element %d (%s): %w", i, n, ErrNotInteger)
		}
		ids = append(ids, v)
	}
	return ids, nil
}

// EncodeDrafts serializes drafts as a JSON array of records.
// Every record carries a price key; missing prices are encoded as null.
func EncodeDrafts(drafts []item.Draft) (string, error) {
	records := make([]record, len(drafts))
	for i, d := range drafts {
		records[i].Name = d.Name
		if d.Price.Valid {
			n := json.Number(d.Price.Decimal.String())
			records[i].Price = &n
		}
	}
	return encode(records)
}

// DecodeDrafts parses a JSON array of draft records.
func DecodeDrafts(data string) ([]item.Draft, error) {
	var records []record
	if err := decode(data, &records); err != nil {
		return nil, fmt.Errorf("decode drafts: %w", err)
	}

	drafts := make([]item.Draft, len(records))
	for i, r := range records {
		drafts[i].Name = r.Name
		if r.Price == nil {
			continue
		}
		d, err := decimal.NewFromString(r.Price.String())
		if err != nil {
			return nil, fmt.Errorf("decode drafts: record %d price: %w", i, err)
		}
		drafts[i].Price = decimal.NewNullDecimal(d)
	}
	return drafts, nil
}

func encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode batch: %w", err)
	}
	// Encoder adds a trailing newline
	return strings.TrimSpace(buf.String()), nil
}

func decode(data string, v any) error {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after batch")
	}
	return nil
}
