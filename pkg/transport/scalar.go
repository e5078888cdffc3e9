package transport

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// Long is a 64-bit integer scalar. graphql.Int only holds 32 bits, which is
// not enough for offsets of pages far past the end of the catalog.
var Long = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Long",
	Description: "A signed 64-bit integer",
	Serialize:   coerceLong,
	ParseValue:  coerceLong,
	ParseLiteral: func(v ast.Value) any {
		iv, ok := v.(*ast.IntValue)
		if !ok {
			return nil
		}
		n, err := strconv.ParseInt(iv.Value, 10, 64)
		if err != nil {
			return nil
		}
		return int(n)
	},
})

// coerceLong returns v as an int, or nil when it is not an integral value in range
func coerceLong(v any) any {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return nil
		}
		return int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return nil
		}
		return int(i)
	case *int:
		if n == nil {
			return nil
		}
		return *n
	}

	return nil
}
