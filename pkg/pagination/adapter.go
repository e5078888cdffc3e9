package pagination

import (
	"encoding/json"
	"math"

	"github.com/mohae/deepcopy"
)

const (
	VarLimit  = "limit"
	VarOffset = "offset"

	fieldEntities   = "entities"
	fieldPagination = "pagination"
	fieldTotalCount = "total_count"
	fieldLimit      = "limit"
	fieldOffset     = "offset"
)

// QueryVariables is the flat variable bag handed to the query layer.
// It always holds limit and offset plus any passthrough keys.
type QueryVariables map[string]any

func (qv QueryVariables) Limit() int {
	n, _ := toInteger(qv[VarLimit])
	return n
}

func (qv QueryVariables) Offset() int {
	n, _ := toInteger(qv[VarOffset])
	return n
}

// ToQueryVariables normalizes raw, converts it to limit/offset and copies every
// Extra key alongside. Extra values are deep copied so the caller may keep mutating raw.
// The computed limit and offset replace same-named Extra keys.
func (p *Paginator) ToQueryVariables(raw RawParams) QueryVariables {
	pp := p.Normalize(raw)
	op := pp.OffsetParams()

	vars := make(QueryVariables, len(raw.Extra)+2)
	for k, v := range raw.Extra {
		vars[k] = deepcopy.Copy(v)
	}
	vars[VarLimit] = op.Limit
	vars[VarOffset] = op.Offset

	return vars
}

// Envelope is a transport response keyed by entity name, each value shaped as
// {entities: [...], pagination: {total_count, limit, offset}}
type Envelope map[string]any

type ResultPagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Result is the uniform list shape handed to renderers
type Result[T any] struct {
	Data       []T               `json:"data"`
	Pagination *ResultPagination `json:"pagination,omitempty"`
}

func emptyResult[T any]() Result[T] {
	return Result[T]{Data: []T{}}
}

// ExtractResult reads env[key] into a Result. A missing key or a block that is
// not shaped like a paginated list gives an empty result rather than an error.
func ExtractResult[T any](env Envelope, key string) Result[T] {
	block, ok := env[key].(map[string]any)
	if !ok {
		return emptyResult[T]()
	}

	data, ok := convertEntities[T](block[fieldEntities])
	if !ok {
		return emptyResult[T]()
	}

	raw, present := block[fieldPagination]
	if !present || raw == nil {
		return Result[T]{Data: data}
	}

	pagination, ok := raw.(map[string]any)
	if !ok {
		return emptyResult[T]()
	}

	total, okTotal := optionalInteger(pagination[fieldTotalCount])
	limit, okLimit := optionalInteger(pagination[fieldLimit])
	offset, okOffset := optionalInteger(pagination[fieldOffset])
	if !okTotal || !okLimit || !okOffset {
		return emptyResult[T]()
	}

	return Result[T]{
		Data: data,
		Pagination: &ResultPagination{
			Total:  total,
			Limit:  limit,
			Offset: offset,
		},
	}
}

func convertEntities[T any](v any) ([]T, bool) {
	switch entities := v.(type) {
	case nil:
		return []T{}, true
	case []T:
		out := make([]T, len(entities))
		copy(out, entities)
		return out, true
	case []any:
		out := make([]T, 0, len(entities))
		for _, e := range entities {
			item, ok := convertEntity[T](e)
			if !ok {
				return nil, false
			}
			out = append(out, item)
		}
		return out, true
	case []map[string]any:
		out := make([]T, 0, len(entities))
		for _, e := range entities {
			item, ok := convertEntity[T](e)
			if !ok {
				return nil, false
			}
			out = append(out, item)
		}
		return out, true
	}

	return nil, false
}

func convertEntity[T any](v any) (T, bool) {
	if item, ok := v.(T); ok {
		return item, true
	}

	var item T
	b, err := json.Marshal(v)
	if err != nil {
		return item, false
	}
	if err := json.Unmarshal(b, &item); err != nil {
		return item, false
	}
	return item, true
}

// optionalInteger reads an integer field where absence means zero
func optionalInteger(v any) (int, bool) {
	if v == nil {
		return 0, true
	}
	return toInteger(v)
}

func toInteger(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return saturateInt64(n), true
	case uint:
		return saturateUint64(uint64(n)), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return saturateUint64(uint64(n)), true
	case uint64:
		return saturateUint64(n), true
	case float32:
		return floatToInteger(float64(n))
	case float64:
		return floatToInteger(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return saturateInt64(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInteger(f)
	}

	return 0, false
}

func floatToInteger(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return toInt(math.Floor(f)), true
}

func saturateInt64(n int64) int {
	switch {
	case n > math.MaxInt:
		return math.MaxInt
	case n < math.MinInt:
		return math.MinInt
	}
	return int(n)
}

func saturateUint64(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
