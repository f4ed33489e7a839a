package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValidateItem checks a candidate payload before it may enter the store.
// Rules run in order and the first failure wins; the returned reason is the
// exact message surfaced to API clients. Pure function, no side effects.
func ValidateItem(c *ItemCandidate) (bool, string) {
	if c == nil {
		return false, "No data provided"
	}
	if c.Name == nil {
		return false, "Missing required field: name"
	}
	if c.Stock == nil {
		return false, "Missing required field: stock"
	}
	if stock, ok := parseStock(*c.Stock); !ok || stock < 0 {
		return false, "Stock must be a non-negative integer"
	}
	if strings.TrimSpace(*c.Name) == "" {
		return false, "Name must be a non-empty string"
	}
	return true, "Valid"
}

// parseStock accepts only a bare integer token. Quoted numbers, fractions,
// exponents, booleans and null all fail.
func parseStock(raw json.RawMessage) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	return v, err == nil
}
