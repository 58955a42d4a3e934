package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Buckets is the partitioned feedback the dashboard renders.
type Buckets struct {
	Live    []Feedback `json:"live"`
	History []Feedback `json:"history"`
}

// Service defines the feedback triage business logic.
type Service interface {
	// ListBuckets fetches all feedback and partitions it into the
	// live queue and history. The payload is always well-formed;
	// on a storage failure both buckets degrade to empty and the
	// tagged error rides alongside.
	ListBuckets(ctx context.Context) (Buckets, error)

	// ResolveFeedback marks a complaint RESOLVED, moving it from the
	// live queue to history on the next read.
	ResolveFeedback(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new feedback service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ListBuckets(ctx context.Context) (Buckets, error) {
	items, err := s.repo.ListFeedback(ctx)
	if err != nil {
		return Buckets{Live: []Feedback{}, History: []Feedback{}}, err
	}
	live, history := Partition(items, s.now())
	return Buckets{Live: live, History: history}, nil
}

func (s *service) ResolveFeedback(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	return s.repo.Resolve(ctx, parsed)
}
