package pagination

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/oapi-codegen/nullable"
)

const (
	keyPage       = "page"
	keyPageSize   = "pageSize"
	keyTotalCount = "totalCount"
)

// RawParams is loosely shaped pagination input. Any field may be unspecified,
// null or out of range. Extra carries every other key (filters, sort keys) untouched.
type RawParams struct {
	Page       nullable.Nullable[float64] `json:"page,omitempty"`
	PageSize   nullable.Nullable[float64] `json:"pageSize,omitempty"`
	TotalCount nullable.Nullable[float64] `json:"totalCount,omitempty"`
	Extra      map[string]any             `json:"-"`
}

// NewRawParams builds RawParams with all three numeric fields set
func NewRawParams(page, pageSize, totalCount float64) RawParams {
	return RawParams{
		Page:       nullable.NewNullableWithValue(page),
		PageSize:   nullable.NewNullableWithValue(pageSize),
		TotalCount: nullable.NewNullableWithValue(totalCount),
	}
}

// UnmarshalJSON splits a flat JSON object into the known numeric fields and Extra.
// A known field holding something other than a number is treated as missing.
func (r *RawParams) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	*r = RawParams{}
	for k, v := range fields {
		switch k {
		case keyPage:
			r.Page = decodeNumber(v)
		case keyPageSize:
			r.PageSize = decodeNumber(v)
		case keyTotalCount:
			r.TotalCount = decodeNumber(v)
		default:
			var value any
			dec := json.NewDecoder(bytes.NewReader(v))
			dec.UseNumber()
			if err := dec.Decode(&value); err != nil {
				return err
			}
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[k] = value
		}
	}

	return nil
}

func decodeNumber(b json.RawMessage) nullable.Nullable[float64] {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nullable.NewNullNullable[float64]()
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	return nullable.NewNullableWithValue(f)
}

// finite reports the value of n when it is set to a finite number
func finite(n nullable.Nullable[float64]) (float64, bool) {
	if !n.IsSpecified() || n.IsNull() {
		return 0, false
	}

	v := n.MustGet()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
