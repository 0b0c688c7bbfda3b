package models

import (
	"encoding/json"
	"fmt"
)

// Flag is a boolean survey answer stored as 0/1 in the database. It decodes
// from JSON booleans, the numbers 0/1, or null (treated as unset/false), and
// always encodes back as 0 or 1.
type Flag bool

// Bool returns the flag as a plain bool.
func (f Flag) Bool() bool {
	return bool(f)
}

// MarshalJSON encodes the flag as 0 or 1.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON accepts true/false, 0/1 and null.
func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*f = false
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil && (n == 0 || n == 1) {
		*f = n == 1
		return nil
	}

	return fmt.Errorf("invalid flag value %s", data)
}
