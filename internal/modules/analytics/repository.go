package analytics

import (
	"context"
	"time"
)

// Repository is the read-only view of order storage the aggregators
// run over. Order creation belongs to the ordering flow, not the
// dashboard; nothing here mutates.
//
// All methods return empty collections (never nil maps) when nothing
// matches, and wrap failures as storage.ErrSchemaMissing or
// storage.ErrAggregationFailed so callers can tell "not provisioned"
// apart from a transient fault.
type Repository interface {
	// PaidOrderTotals returns the totals of PAID orders created in
	// [start, end).
	PaidOrderTotals(ctx context.Context, start, end time.Time) ([]OrderTotal, error)

	// PaidLineItems returns the line items of PAID orders created in
	// [start, end).
	PaidLineItems(ctx context.Context, start, end time.Time) ([]LineItem, error)

	// MenuNames resolves menu ids to display names. Ids with no
	// current menu record are simply absent from the result.
	MenuNames(ctx context.Context, ids []int64) (map[int64]string, error)
}
