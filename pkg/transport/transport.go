// Package transport is a GraphQL query layer over a storage.Catalog.
// It takes pagination.QueryVariables in and hands a pagination.Envelope back,
// keeping the snake_case total_count wire field.
package transport

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/pagination"
	"github.com/kasuboski/pager/pkg/storage"
	"go.uber.org/zap"
)

// ItemsKey is the envelope key ItemsQuery results are stored under
const ItemsKey = "items"

const ItemsQuery = `query Items($limit: Long!, $offset: Long!, $category: String) {
  items(limit: $limit, offset: $offset, category: $category) {
    entities { id name category createdAt }
    pagination { total_count limit offset }
  }
}`

var ErrQuery = errors.New("query failed")

type Transport struct {
	schema  graphql.Schema
	catalog storage.Catalog
}

type pageInfo struct {
	TotalCount int `json:"total_count"`
	Limit      int `json:"limit"`
	Offset     int `json:"offset"`
}

type itemPage struct {
	Entities   []storage.Item `json:"entities"`
	Pagination pageInfo       `json:"pagination"`
}

// New builds the schema for catalog
func New(catalog storage.Catalog) (*Transport, error) {
	t := &Transport{catalog: catalog}

	itemType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Item",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(Long)},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"category":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"createdAt": &graphql.Field{Type: graphql.DateTime},
		},
	})

	pageInfoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PageInfo",
		Fields: graphql.Fields{
			"total_count": &graphql.Field{Type: graphql.NewNonNull(Long)},
			"limit":       &graphql.Field{Type: graphql.NewNonNull(Long)},
			"offset":      &graphql.Field{Type: graphql.NewNonNull(Long)},
		},
	})

	itemPageType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ItemPage",
		Fields: graphql.Fields{
			"entities":   &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(itemType)))},
			"pagination": &graphql.Field{Type: graphql.NewNonNull(pageInfoType)},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			ItemsKey: &graphql.Field{
				Type:        graphql.NewNonNull(itemPageType),
				Description: "One page of catalog items addressed by limit and offset",
				Args: graphql.FieldConfigArgument{
					"limit":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(Long)},
					"offset":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(Long)},
					"category": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: t.resolveItems,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}
	t.schema = schema

	return t, nil
}

func (t *Transport) resolveItems(p graphql.ResolveParams) (any, error) {
	limit, _ := p.Args["limit"].(int)
	offset, _ := p.Args["offset"].(int)
	category, _ := p.Args["category"].(string)

	items, total, err := t.catalog.ListItems(p.Context, storage.ListRequest{
		Limit:    limit,
		Offset:   offset,
		Category: category,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []storage.Item{}
	}

	return itemPage{
		Entities: items,
		Pagination: pageInfo{
			TotalCount: total,
			Limit:      limit,
			Offset:     offset,
		},
	}, nil
}

// Execute runs query with vars and returns the data section as an Envelope
func (t *Transport) Execute(ctx context.Context, query string, vars pagination.QueryVariables) (pagination.Envelope, error) {
	log := logger.FromCtx(ctx)

	result := graphql.Do(graphql.Params{
		Schema:         t.schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        ctx,
	})

	if result.HasErrors() {
		msgs := make([]string, len(result.Errors))
		for i, e := range result.Errors {
			msgs[i] = e.Message
		}
		log.Debug("graphql query failed", zap.Strings("errors", msgs))
		return nil, fmt.Errorf("%w: %s", ErrQuery, strings.Join(msgs, "; "))
	}

	data, ok := result.Data.(map[string]any)
	if !ok {
		return pagination.Envelope{}, nil
	}

	log.Debug("graphql query executed", zap.Int("limit", vars.Limit()), zap.Int("offset", vars.Offset()))
	return pagination.Envelope(data), nil
}

// Executor runs a query with variables and returns the response data
type Executor interface {
	Execute(ctx context.Context, query string, vars pagination.QueryVariables) (pagination.Envelope, error)
}

// Items runs ItemsQuery and extracts the uniform result
func (t *Transport) Items(ctx context.Context, vars pagination.QueryVariables) (pagination.Result[storage.Item], error) {
	return Items(ctx, t, vars)
}

// Items runs ItemsQuery on e, local or remote, and extracts the uniform result
func Items(ctx context.Context, e Executor, vars pagination.QueryVariables) (pagination.Result[storage.Item], error) {
	env, err := e.Execute(ctx, ItemsQuery, vars)
	if err != nil {
		return pagination.Result[storage.Item]{}, err
	}

	return pagination.ExtractResult[storage.Item](env, ItemsKey), nil
}
