package models

import (
	"bytes"
	"math"
	"strconv"
)

// Amount is a monetary field that tolerates malformed input. Form layers feed
// it user-typed values, so decoding never fails: JSON numbers and numeric
// strings parse normally, everything else (null, text, objects, NaN, Inf)
// becomes 0. Aggregation relies on this totality.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = 0

	s := string(bytes.TrimSpace(data))
	if s == "" || s == "null" {
		return nil
	}

	// Numeric strings ("1200.50") are accepted the same as numbers.
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	*a = Amount(v)
	return nil
}

// Float64 returns the amount as a float64 with non-finite values coerced to 0.
func (a Amount) Float64() float64 {
	v := float64(a)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
