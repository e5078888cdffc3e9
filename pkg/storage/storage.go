package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found in storage")

// Catalog is a paginated item listing backed by some store
type Catalog interface {
	ListItems(ctx context.Context, req ListRequest) ([]Item, int, error)
	GetItem(ctx context.Context, id int64) (Item, error)
	CreateItems(ctx context.Context, items ...Item) error
}

type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListRequest addresses one slice of the catalog.
// A Limit below 1 returns every matching item.
type ListRequest struct {
	Limit    int
	Offset   int
	Category string
}
