package feedback

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for feedback records.
type Repository interface {
	// ListFeedback returns all feedback, newest first. Empty slice
	// when there is none.
	ListFeedback(ctx context.Context) ([]Feedback, error)

	// Resolve marks a complaint RESOLVED. A single-record atomic
	// update; no cross-record transaction is involved.
	Resolve(ctx context.Context, id uuid.UUID) error
}
