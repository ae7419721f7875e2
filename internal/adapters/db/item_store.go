// internal/adapters/db/item_store.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"

	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/core/ports"
)

const tableBakeryItems = "bakery_items"

var itemColumns = []string{"id", "name", "description", "price", "contact"}

// itemStore implements ports.ItemStore
type itemStore struct {
	db     *Database
	logger *slog.Logger
}

var _ ports.ItemStore = (*itemStore)(nil)

// NewItemStore creates a new bakery item store
func NewItemStore(db *Database, logger *slog.Logger) ports.ItemStore {
	return &itemStore{
		db:     db,
		logger: logger.With(slog.String("repository", "bakery_items")),
	}
}

// Upsert inserts a new item or replaces an existing one by id
func (s *itemStore) Upsert(ctx context.Context, item *domain.BakeryItem) error {
	if item == nil {
		return fmt.Errorf("failed to upsert bakery item: item is nil")
	}

	if item.ID == 0 {
		if err := s.insert(ctx, item); err != nil {
			return fmt.Errorf("failed to upsert bakery item: %w", err)
		}
		return nil
	}

	if err := s.replace(ctx, item); err != nil {
		return fmt.Errorf("failed to upsert bakery item %d: %w", item.ID, err)
	}
	return nil
}

func (s *itemStore) insert(ctx context.Context, item *domain.BakeryItem) error {
	query, args, err := s.db.Builder().
		Insert(tableBakeryItems).
		Columns("name", "description", "price", "contact").
		Values(item.Name, item.Description, item.Price, item.Contact).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	var id int64
	if err := s.db.DB().QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return err
	}
	item.ID = id

	s.logger.DebugContext(ctx, "bakery item inserted", slog.Int64("id", id))
	return nil
}

func (s *itemStore) replace(ctx context.Context, item *domain.BakeryItem) error {
	query, args, err := s.db.Builder().
		Insert(tableBakeryItems).
		Columns(itemColumns...).
		Values(item.ID, item.Name, item.Description, item.Price, item.Contact).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"name = excluded.name, " +
			"description = excluded.description, " +
			"price = excluded.price, " +
			"contact = excluded.contact").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert query: %w", err)
	}

	if s.db.Driver() != DriverPostgres {
		if _, err := s.db.DB().ExecContext(ctx, query, args...); err != nil {
			return err
		}
		s.logger.DebugContext(ctx, "bakery item replaced", slog.Int64("id", item.ID))
		return nil
	}

	// An explicit id bypasses the serial sequence, so move it past the id
	// to keep later inserts from colliding.
	err = s.db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`SELECT setval('bakery_items_id_seq', GREATEST($1::bigint, (SELECT last_value FROM bakery_items_id_seq)))`,
			item.ID)
		return err
	})
	if err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "bakery item replaced", slog.Int64("id", item.ID))
	return nil
}

// Delete removes the item with id. Deleting a missing id succeeds.
func (s *itemStore) Delete(ctx context.Context, id int64) error {
	query, args, err := s.db.Builder().
		Delete(tableBakeryItems).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := s.db.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete bakery item %d: %w", id, err)
	}

	if n, err := result.RowsAffected(); err == nil {
		s.logger.DebugContext(ctx, "bakery item deleted",
			slog.Int64("id", id),
			slog.Int64("rows_affected", n))
	}

	return nil
}

// ListAll returns every item in insertion order
func (s *itemStore) ListAll(ctx context.Context) ([]domain.BakeryItem, error) {
	query, args, err := s.db.Builder().
		Select(itemColumns...).
		From(tableBakeryItems).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := s.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bakery items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.BakeryItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bakery item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bakery items: %w", err)
	}

	return items, nil
}

// Get returns the item with id or domain.ErrItemNotFound
func (s *itemStore) Get(ctx context.Context, id int64) (*domain.BakeryItem, error) {
	query, args, err := s.db.Builder().
		Select(itemColumns...).
		From(tableBakeryItems).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query: %w", err)
	}

	item, err := scanItem(s.db.DB().QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf("failed to get bakery item %d: %w", id, err)
	}

	return item, nil
}

// Count returns the number of stored items
func (s *itemStore) Count(ctx context.Context) (int64, error) {
	query, args, err := s.db.Builder().
		Select("COUNT(*)").
		From(tableBakeryItems).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := s.db.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bakery items: %w", err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.BakeryItem, error) {
	var item domain.BakeryItem
	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Contact,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
