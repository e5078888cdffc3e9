package transport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/kasuboski/pager/pkg/storage"
	"github.com/kasuboski/pager/pkg/storage/mocks"
	"github.com/kasuboski/pager/pkg/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTransport_Execute(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("envelope keeps the wire shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := mocks.NewMockCatalog(ctrl)
		catalog.EXPECT().
			ListItems(gomock.Any(), storage.ListRequest{Limit: 2, Offset: 4, Category: "books"}).
			Return([]storage.Item{{ID: 5, Name: "five", Category: "books", CreatedAt: created}}, 5, nil)

		tr, err := New(catalog)
		require.NoError(t, err)

		env, err := tr.Execute(ctx, ItemsQuery, pagination.QueryVariables{"limit": 2, "offset": 4, "category": "books"})
		require.NoError(t, err)

		block, ok := env[ItemsKey].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, map[string]any{"total_count": 5, "limit": 2, "offset": 4}, block["pagination"])
		assert.Len(t, block["entities"], 1)
	})

	t.Run("unknown variables are ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := mocks.NewMockCatalog(ctrl)
		catalog.EXPECT().
			ListItems(gomock.Any(), storage.ListRequest{Limit: 20, Offset: 0}).
			Return([]storage.Item{}, 0, nil)

		tr, err := New(catalog)
		require.NoError(t, err)

		_, err = tr.Execute(ctx, ItemsQuery, pagination.QueryVariables{"limit": 20, "offset": 0, "orderBy": "name"})
		assert.NoError(t, err)
	})

	t.Run("catalog errors become query errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := mocks.NewMockCatalog(ctrl)
		catalog.EXPECT().ListItems(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("disk on fire"))

		tr, err := New(catalog)
		require.NoError(t, err)

		_, err = tr.Execute(ctx, ItemsQuery, pagination.QueryVariables{"limit": 20, "offset": 0})
		assert.ErrorIs(t, err, ErrQuery)
		assert.ErrorContains(t, err, "disk on fire")
	})

	t.Run("missing required variables", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tr, err := New(mocks.NewMockCatalog(ctrl))
		require.NoError(t, err)

		_, err = tr.Execute(ctx, ItemsQuery, pagination.QueryVariables{})
		assert.ErrorIs(t, err, ErrQuery)
	})
}

func TestTransport_Items(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.CreateItems(ctx,
		storage.Item{Name: "a", Category: "x"},
		storage.Item{Name: "b", Category: "x"},
		storage.Item{Name: "c", Category: "y"},
	))

	tr, err := New(store)
	require.NoError(t, err)

	raw := pagination.NewRawParams(2, 1, 0)
	raw.Extra = map[string]any{"category": "x"}
	vars := pagination.Default().ToQueryVariables(raw)

	result, err := tr.Items(ctx, vars)
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	assert.Equal(t, int64(2), result.Data[0].ID)
	assert.Equal(t, "b", result.Data[0].Name)
	assert.Equal(t, &pagination.ResultPagination{Total: 2, Limit: 1, Offset: 1}, result.Pagination)
}

func TestTransport_Items_PastTheEnd(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.CreateItems(ctx, storage.Item{Name: "a", Category: "x"}))

	tr, err := New(store)
	require.NoError(t, err)

	vars := pagination.Default().ToQueryVariables(pagination.NewRawParams(30000000, 100, 0))

	result, err := tr.Items(ctx, vars)
	require.NoError(t, err)

	assert.Empty(t, result.Data)
	assert.Equal(t, &pagination.ResultPagination{Total: 1, Limit: 100, Offset: 2999999900}, result.Pagination)
}
