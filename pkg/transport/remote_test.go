package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pagerhttp "github.com/kasuboski/pager/pkg/http"
	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/kasuboski/pager/pkg/storage"
	"github.com/kasuboski/pager/pkg/storage/mocks"
	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// graphqlHandler answers the way the pager server does
func graphqlHandler(t *testing.T, tr *Transport) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		env, err := tr.Execute(r.Context(), req.Query, pagination.QueryVariables(req.Variables))
		w.Header().Set("content-type", "application/json")
		if err != nil {
			msg := err.Error()
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"error": msg, "response": nil})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"response": env})
	}
}

func TestClient_Items(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("round trips through the server shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := mocks.NewMockCatalog(ctrl)
		catalog.EXPECT().
			ListItems(gomock.Any(), storage.ListRequest{Limit: 10, Offset: 10, Category: "films"}).
			Return([]storage.Item{{ID: 11, Name: "eleven", Category: "films", CreatedAt: created}}, 21, nil)

		tr, err := New(catalog)
		require.NoError(t, err)

		srv := httptest.NewServer(graphqlHandler(t, tr))
		defer srv.Close()

		client := NewClient(srv.URL, pagerhttp.NewRetryClient())
		vars := pagination.Default().ToQueryVariables(pagination.RawParams{
			Page:     nullable.NewNullableWithValue(2.0),
			PageSize: nullable.NewNullableWithValue(10.0),
			Extra:    map[string]any{"category": "films"},
		})

		result, err := Items(ctx, client, vars)
		require.NoError(t, err)

		require.Len(t, result.Data, 1)
		assert.Equal(t, int64(11), result.Data[0].ID)
		assert.Equal(t, "eleven", result.Data[0].Name)
		assert.True(t, created.Equal(result.Data[0].CreatedAt))
		assert.Equal(t, &pagination.ResultPagination{Total: 21, Limit: 10, Offset: 10}, result.Pagination)
	})

	t.Run("server errors become query errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := mocks.NewMockCatalog(ctrl)

		tr, err := New(catalog)
		require.NoError(t, err)

		srv := httptest.NewServer(graphqlHandler(t, tr))
		defer srv.Close()

		client := NewClient(srv.URL, pagerhttp.NewRetryClient())
		_, err = client.Execute(ctx, "{ nope }", pagination.QueryVariables{})
		assert.ErrorIs(t, err, ErrQuery)
	})

	t.Run("retries exhausted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, pagerhttp.NewRetryClient(
			pagerhttp.WithMaxAttempts(2),
			pagerhttp.WithBaseBackoff(time.Millisecond),
		))
		_, err := client.Execute(ctx, ItemsQuery, pagination.QueryVariables{"limit": 1, "offset": 0})
		assert.ErrorIs(t, err, pagerhttp.ErrRetriesExhausted)
	})

	t.Run("non json response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid request body", http.StatusBadRequest)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, pagerhttp.NewRetryClient())
		_, err := client.Execute(ctx, ItemsQuery, pagination.QueryVariables{})
		assert.Error(t, err)
	})
}
