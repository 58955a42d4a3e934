package menu

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines data access for menu items.
type Repository interface {
	// ListItems returns the whole menu ordered by category for the
	// dashboard grid. Empty slice when the menu is empty.
	ListItems(ctx context.Context) ([]Item, error)

	// GetItem retrieves a single menu item.
	GetItem(ctx context.Context, id int64) (*Item, error)

	// UpdateStock sets an item's stock count. Single-record atomic
	// update.
	UpdateStock(ctx context.Context, id int64, stock int) error

	// UpdatePrice sets an item's price. Single-record atomic update.
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error
}
