package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Count is a numeric metric as reported by the upstream API. The API is
// loose about types: the same field may arrive as a JSON number, a numeric
// string, null, or be missing entirely. Anything non-numeric decodes as
// unknown, which is distinct from a measured zero.
type Count struct {
	Value float64
	Known bool
}

// KnownCount returns a Count holding a measured value.
func KnownCount(v float64) Count {
	return Count{Value: v, Known: true}
}

// CountFromPtr returns a Count from a nullable value, nil meaning unknown.
func CountFromPtr(p *float64) Count {
	if p == nil {
		return Count{}
	}
	return Count{Value: *p, Known: true}
}

// UnmarshalJSON accepts numbers and numeric strings; null, missing and
// non-numeric values decode as unknown. It never returns an error, so one
// bad field cannot abort decoding of a whole envelope.
func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*c = Count{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*c = Count{}
			return nil
		}
		c.set(strconv.ParseFloat(strings.TrimSpace(s), 64))
		return nil
	}

	var v float64
	err := json.Unmarshal(data, &v)
	c.set(v, err)
	return nil
}

func (c *Count) set(v float64, err error) {
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*c = Count{}
		return
	}
	*c = Count{Value: v, Known: true}
}

// MarshalJSON encodes unknown as null so consumers can tell it apart from
// a real zero.
func (c Count) MarshalJSON() ([]byte, error) {
	if !c.Known {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// OrZero returns the value with unknown counting as 0. Summing callers use
// this; the unknown marker stays on the record itself.
func (c Count) OrZero() float64 {
	if !c.Known {
		return 0
	}
	return c.Value
}

// Ptr returns the value as a pointer, nil when unknown.
func (c Count) Ptr() *float64 {
	if !c.Known {
		return nil
	}
	v := c.Value
	return &v
}
