package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/philiapseudo/jikoni-backoffice/internal/storage"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates the read-only order storage backing
// the aggregators.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) PaidOrderTotals(ctx context.Context, start, end time.Time) ([]OrderTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT total_amount
		FROM orders
		WHERE created_at >= $1 AND created_at < $2 AND status = 'PAID'`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("query paid order totals: %w", storage.Classify(err))
	}
	defer rows.Close()

	totals := []OrderTotal{}
	for rows.Next() {
		var t OrderTotal
		if err := rows.Scan(&t.Amount); err != nil {
			return nil, fmt.Errorf("scan order total: %w", storage.Classify(err))
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order totals: %w", storage.Classify(err))
	}
	return totals, nil
}

func (r *postgresRepo) PaidLineItems(ctx context.Context, start, end time.Time) ([]LineItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.menu_id, oi.quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= $1 AND o.created_at < $2 AND o.status = 'PAID'`,
		start, end)
	if err != nil {
		return nil, fmt.Errorf("query paid line items: %w", storage.Classify(err))
	}
	defer rows.Close()

	items := []LineItem{}
	for rows.Next() {
		var li LineItem
		if err := rows.Scan(&li.MenuID, &li.Quantity); err != nil {
			return nil, fmt.Errorf("scan line item: %w", storage.Classify(err))
		}
		items = append(items, li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate line items: %w", storage.Classify(err))
	}
	return items, nil
}

func (r *postgresRepo) MenuNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := map[int64]string{}
	if len(ids) == 0 {
		return names, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM menus WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query menu names: %w", storage.Classify(err))
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan menu name: %w", storage.Classify(err))
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu names: %w", storage.Classify(err))
	}
	return names, nil
}
