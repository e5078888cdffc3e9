package server

import (
	"net/http"

	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/oapi-codegen/nullable"
	"github.com/oapi-codegen/runtime"
)

const (
	queryPage     = "page"
	queryPageSize = "pageSize"
)

// ParsePaginationParams reads page and pageSize from the request query.
// Values that do not parse are left unspecified so normalization falls back
// to defaults. Every other query parameter is passed through as a string.
func ParsePaginationParams(r *http.Request) pagination.RawParams {
	qp := r.URL.Query()

	var raw pagination.RawParams
	raw.Page = bindNumber(r, queryPage)
	raw.PageSize = bindNumber(r, queryPageSize)

	for k, v := range qp {
		if k == queryPage || k == queryPageSize || len(v) == 0 {
			continue
		}
		if raw.Extra == nil {
			raw.Extra = make(map[string]any)
		}
		raw.Extra[k] = v[0]
	}

	return raw
}

func bindNumber(r *http.Request, name string) nullable.Nullable[float64] {
	var v *float64
	err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v)
	if err != nil || v == nil {
		return nil
	}
	return nullable.NewNullableWithValue(*v)
}
