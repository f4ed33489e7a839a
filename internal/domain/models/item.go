package models

import (
	"encoding/json"
	"time"
)

// Item is one inventory record. The store assigns IDs; an ID is never reused,
// even after the item it belonged to is deleted.
type Item struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Stock     int        `json:"stock"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ItemCandidate is the loosely-typed shape of an inbound item payload, before
// validation. Pointer fields distinguish an absent field from a zero value.
// Stock stays a raw JSON token so the validator can tell a bare integer from
// a quoted number, fraction, boolean or null instead of the decoder coercing
// or rejecting the whole body. Unknown extra fields in the request body are
// silently dropped on decode.
type ItemCandidate struct {
	Name  *string          `json:"name"`
	Stock *json.RawMessage `json:"stock"`
}

// StockValue returns the stock as an int. Only meaningful after ValidateItem
// has accepted the candidate.
func (c *ItemCandidate) StockValue() int {
	v, _ := parseStock(*c.Stock)
	return int(v)
}
