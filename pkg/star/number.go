package star

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a leniently parsed numeric field. Feeds send numbers either as
// JSON numbers or as numeric strings. A null, missing or blank value is not
// Valid and has an empty Raw. Anything else that does not parse into a
// finite number is not Valid and keeps its original text in Raw.
type Number struct {
	Value float64
	Valid bool
	Raw   string
}

// NewNumber returns a valid Number.
func NewNumber(f float64) Number {
	return Number{Value: f, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error,
// unparsable input is recorded in Raw.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	s := string(data)
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			n.Raw = s
			return nil
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		n.Raw = s
		return nil
	}
	n.Value = f
	n.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler, invalid numbers become null.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, n.Value, 'f', -1, 64), nil
}

// Unparsable is true when a value was present but was not a number.
func (n Number) Unparsable() bool {
	return !n.Valid && n.Raw != ""
}

// Int returns the integral value of the number. The second value is false
// when the number is invalid or has a fractional part.
func (n Number) Int() (int, bool) {
	if !n.Valid || n.Value != math.Trunc(n.Value) {
		return 0, false
	}
	return int(n.Value), true
}

// OrZero returns the value, or 0 for invalid numbers.
func (n Number) OrZero() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

// SQL returns the value for a nullable numeric column.
func (n Number) SQL() any {
	if !n.Valid {
		return nil
	}
	return n.Value
}
