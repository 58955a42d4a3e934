package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a dish on the restaurant's menu.
type Item struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// InStock reports whether the item can currently be ordered.
func (i Item) InStock() bool { return i.Stock > 0 }

// UpdatePriceRequest is the payload for a price change.
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}
