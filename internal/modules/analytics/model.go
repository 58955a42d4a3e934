package analytics

import "github.com/shopspring/decimal"

// DailyRevenue is the paid revenue for the current business day.
// The amount is a raw decimal; currency formatting belongs to the
// client rendering it.
type DailyRevenue struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// TopItem is one entry in the top-sellers ranking.
type TopItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderTotal is the total of a single paid order inside the
// reporting window.
type OrderTotal struct {
	Amount decimal.Decimal
}

// LineItem is a sold line item whose parent order is paid and inside
// the reporting window.
type LineItem struct {
	MenuID   int64
	Quantity int
}
