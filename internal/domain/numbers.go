package domain

import (
	"math"
	"strconv"
)

// jsonFloat marshals NaN and infinities as null, which encoding/json otherwise rejects.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
}

type named struct {
	name  string
	value float64
}

func nonFinite(fields ...named) []string {
	var out []string
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			out = append(out, f.name)
		}
	}
	return out
}
