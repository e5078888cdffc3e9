package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/pager/pkg/logger"
	"github.com/kasuboski/pager/pkg/storage"
	"github.com/kasuboski/pager/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/pager/pkg/storage/sqlite/schema/gen/table"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type SQLite struct {
	db *sql.DB
}

// New opens the sqlite database at filePath and migrates it to the latest schema
func New(ctx context.Context, filePath string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	// a single connection keeps :memory: databases consistent across queries
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// ListItems returns one page of items ordered by id and the total matching count
func (s *SQLite) ListItems(ctx context.Context, req storage.ListRequest) ([]storage.Item, int, error) {
	log := logger.FromCtx(ctx)

	var where sqlite.BoolExpression = sqlite.Bool(true)
	if req.Category != "" {
		where = table.Items.Category.EQ(sqlite.String(req.Category))
	}

	total, err := s.countItems(ctx, where)
	if err != nil {
		return nil, 0, err
	}

	stmt := table.Items.
		SELECT(table.Items.AllColumns).
		FROM(table.Items).
		WHERE(where).
		ORDER_BY(table.Items.ID.ASC())

	if req.Limit > 0 {
		stmt = stmt.LIMIT(int64(req.Limit)).OFFSET(int64(max(req.Offset, 0)))
	}

	rows := make([]model.Items, 0)
	err = stmt.QueryContext(ctx, s.db, &rows)
	if err != nil {
		log.Error("failed to list items", zap.Error(err), zap.Int("limit", req.Limit), zap.Int("offset", req.Offset))
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]storage.Item, len(rows))
	for i, r := range rows {
		items[i] = fromModel(r)
	}

	return items, total, nil
}

func (s *SQLite) countItems(ctx context.Context, where sqlite.BoolExpression) (int, error) {
	stmt := table.Items.
		SELECT(sqlite.COUNT(table.Items.ID).AS("count")).
		FROM(table.Items).
		WHERE(where)

	var result struct {
		Count int64
	}
	err := stmt.QueryContext(ctx, s.db, &result)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}

	return int(result.Count), nil
}

// GetItem returns the item with the given id
func (s *SQLite) GetItem(ctx context.Context, id int64) (storage.Item, error) {
	stmt := table.Items.
		SELECT(table.Items.AllColumns).
		FROM(table.Items).
		WHERE(table.Items.ID.EQ(sqlite.Int64(id)))

	var row model.Items
	err := stmt.QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return storage.Item{}, storage.ErrNotFound
		}
		return storage.Item{}, fmt.Errorf("failed to get item: %w", err)
	}

	return fromModel(row), nil
}

// CreateItems inserts items in a single statement. IDs and creation times are assigned by the database.
func (s *SQLite) CreateItems(ctx context.Context, items ...storage.Item) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]model.Items, len(items))
	for i, it := range items {
		rows[i] = model.Items{
			Name:     it.Name,
			Category: it.Category,
		}
	}

	stmt := table.Items.
		INSERT(table.Items.Name, table.Items.Category).
		MODELS(rows)

	_, err := stmt.ExecContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("failed to create items: %w", err)
	}

	return nil
}

func fromModel(m model.Items) storage.Item {
	return storage.Item{
		ID:        int64(m.ID),
		Name:      m.Name,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
	}
}
