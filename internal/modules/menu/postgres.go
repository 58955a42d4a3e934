package menu

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/philiapseudo/jikoni-backoffice/internal/storage"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL menu repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListItems(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, price, stock, created_at, updated_at
		FROM menus
		ORDER BY category ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query menu: %w", storage.Classify(err))
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Price, &it.Stock, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", storage.Classify(err))
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu: %w", storage.Classify(err))
	}
	return items, nil
}

func (r *postgresRepo) GetItem(ctx context.Context, id int64) (*Item, error) {
	it := &Item{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, price, stock, created_at, updated_at
		FROM menus WHERE id = $1`, id).
		Scan(&it.ID, &it.Name, &it.Category, &it.Price, &it.Stock, &it.CreatedAt, &it.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("menu item %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", storage.Classify(err))
	}
	return it, nil
}

func (r *postgresRepo) UpdateStock(ctx context.Context, id int64, stock int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE menus SET stock = $1, updated_at = $2 WHERE id = $3`,
		stock, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update stock: %w", storage.Classify(err))
	}
	return nil
}

func (r *postgresRepo) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE menus SET price = $1, updated_at = $2 WHERE id = $3`,
		price, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update price: %w", storage.Classify(err))
	}
	return nil
}
