package storage

import (
	"errors"

	"github.com/lib/pq"
)

// The dashboard distinguishes exactly two storage failure kinds: the
// schema has never been provisioned (show a setup banner), or
// something else went wrong (show a generic error). Everything the
// repositories return wraps one of these.
var (
	// ErrSchemaMissing means the underlying tables do not exist yet.
	ErrSchemaMissing = errors.New("storage: schema not provisioned")

	// ErrAggregationFailed covers every other read failure:
	// connectivity, malformed rows, timeouts.
	ErrAggregationFailed = errors.New("storage: aggregation failed")
)

// undefinedTable is the PostgreSQL error code for a query against a
// table that does not exist.
const undefinedTable = "42P01"

// Classify maps a driver error onto the dashboard's two-kind
// taxonomy. A nil error stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
		return ErrSchemaMissing
	}
	return ErrAggregationFailed
}
