package menu

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// restockQuantity is the stock count an out-of-stock item jumps back
// to when toggled available.
const restockQuantity = 100

// Service defines the menu management business logic.
type Service interface {
	// ListItems returns the full menu ordered by category.
	ListItems(ctx context.Context) ([]Item, error)

	// ToggleStock flips an item's availability: in-stock items go to
	// zero, out-of-stock items are restocked to restockQuantity.
	// Returns the item as stored after the update.
	ToggleStock(ctx context.Context, id int64) (*Item, error)

	// UpdatePrice sets a new non-negative price.
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) (*Item, error)
}

type service struct {
	repo Repository
}

// NewService creates a new menu service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListItems(ctx context.Context) ([]Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *service) ToggleStock(ctx context.Context, id int64) (*Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	newStock := restockQuantity
	if item.InStock() {
		newStock = 0
	}
	if err := s.repo.UpdateStock(ctx, id, newStock); err != nil {
		return nil, err
	}

	item.Stock = newStock
	return item, nil
}

func (s *service) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) (*Item, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative")
	}
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePrice(ctx, id, price); err != nil {
		return nil, err
	}
	item.Price = price
	return item, nil
}
