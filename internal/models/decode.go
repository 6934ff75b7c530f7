package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

var jsonNull = []byte("null")

// scalarText returns a JSON string, number or boolean as text.
// Absent and null values give an empty string; objects and arrays are an error.
func scalarText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return "", nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("expected a string or number, got %s", raw)
	default:
		return string(raw), nil
	}
}

// lenientAmount parses a JSON number or numeric string.
// Anything else, including booleans and empty strings, is reported as not valid.
func lenientAmount(raw json.RawMessage) decimal.NullDecimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return decimal.NullDecimal{}
	}

	var amount decimal.NullDecimal
	if err := amount.UnmarshalJSON(raw); err != nil {
		return decimal.NullDecimal{}
	}
	return amount
}
