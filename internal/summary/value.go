package summary

import (
	"encoding/json"
	"strconv"
)

// Value is a statistic that may be absent from a summary export.
// The zero value is null.
type Value struct {
	n     float64
	valid bool
}

// Null is the absent statistic.
var Null = Value{}

// Of returns a present value holding n.
func Of(n float64) Value {
	return Value{n: n, valid: true}
}

// Get returns the number and whether it is present.
func (v Value) Get() (float64, bool) {
	return v.n, v.valid
}

// IsNull reports whether the statistic is absent.
func (v Value) IsNull() bool {
	return !v.valid
}

// Or returns v if present, otherwise fallback.
func (v Value) Or(fallback Value) Value {
	if v.valid {
		return v
	}
	return fallback
}

func (v Value) String() string {
	if !v.valid {
		return "null"
	}
	return strconv.FormatFloat(v.n, 'f', -1, 64)
}

// MarshalJSON encodes an absent value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.n)
}
