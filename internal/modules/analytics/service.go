package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTopItemsLimit is how many top sellers the dashboard shows.
const DefaultTopItemsLimit = 5

// Service computes the dashboard's same-day analytics.
//
// Both operations are total from the caller's point of view: the
// returned payload is always well-formed, degraded to its zero shape
// (zero revenue, empty ranking) when the accompanying error is
// non-nil. Callers render the payload and map the error kind to a
// setup or generic banner.
type Service interface {
	// DailyRevenue sums the totals of today's paid orders.
	DailyRevenue(ctx context.Context) (DailyRevenue, error)

	// TopSellingItems ranks today's sold menu items by quantity,
	// descending, keeping the first limit entries. Equal quantities
	// tie-break by ascending menu id so the ranking is deterministic.
	// limit <= 0 means DefaultTopItemsLimit.
	TopSellingItems(ctx context.Context, limit int) ([]TopItem, error)
}

type service struct {
	repo             Repository
	utcOffsetMinutes int
	now              func() time.Time
}

// NewService creates the analytics service. The UTC offset comes from
// configuration so the business day follows the restaurant's clock,
// not the server's.
func NewService(repo Repository, utcOffsetMinutes int) Service {
	return &service{repo: repo, utcOffsetMinutes: utcOffsetMinutes, now: time.Now}
}

func (s *service) DailyRevenue(ctx context.Context) (DailyRevenue, error) {
	zero := DailyRevenue{Amount: decimal.Zero, Currency: "KES"}

	start, end := DayWindow(s.now(), s.utcOffsetMinutes)
	totals, err := s.repo.PaidOrderTotals(ctx, start, end)
	if err != nil {
		return zero, err
	}

	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Amount)
	}
	return DailyRevenue{Amount: sum, Currency: "KES"}, nil
}

func (s *service) TopSellingItems(ctx context.Context, limit int) ([]TopItem, error) {
	if limit <= 0 {
		limit = DefaultTopItemsLimit
	}

	start, end := DayWindow(s.now(), s.utcOffsetMinutes)
	lineItems, err := s.repo.PaidLineItems(ctx, start, end)
	if err != nil {
		return []TopItem{}, err
	}

	sums := make(map[int64]int, len(lineItems))
	for _, li := range lineItems {
		sums[li.MenuID] += li.Quantity
	}

	ids := make([]int64, 0, len(sums))
	for id := range sums {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if sums[ids[i]] != sums[ids[j]] {
			return sums[ids[i]] > sums[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > limit {
		ids = ids[:limit]
	}
	if len(ids) == 0 {
		return []TopItem{}, nil
	}

	names, err := s.repo.MenuNames(ctx, ids)
	if err != nil {
		return []TopItem{}, err
	}

	top := make([]TopItem, 0, len(ids))
	for _, id := range ids {
		qty := sums[id]
		// Guards against zero-quantity rows slipping through.
		if qty <= 0 {
			continue
		}
		name, ok := names[id]
		if !ok {
			// The menu item was deleted after it sold; keep the
			// entry under a synthesized label.
			name = fmt.Sprintf("Item #%d", id)
		}
		top = append(top, TopItem{Name: name, Quantity: qty})
	}
	return top, nil
}
