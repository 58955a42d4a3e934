package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/philiapseudo/jikoni-backoffice/internal/storage"
)

type fakeFeedbackRepo struct {
	items    []Feedback
	err      error
	resolved []uuid.UUID
}

func (f *fakeFeedbackRepo) ListFeedback(context.Context) ([]Feedback, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeFeedbackRepo) Resolve(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.resolved = append(f.resolved, id)
	return nil
}

func TestListBucketsPartitions(t *testing.T) {
	repo := &fakeFeedbackRepo{items: []Feedback{
		{ID: uuid.New(), Rating: 1, Message: "cold chips", Type: TypeComplaint, Status: statusPtr(StatusPending), CreatedAt: now},
		{ID: uuid.New(), Rating: 5, Message: "asante", Type: TypeCompliment, CreatedAt: now.Add(-30 * time.Hour)},
	}}
	svc := &service{repo: repo, now: func() time.Time { return now }}

	buckets, err := svc.ListBuckets(context.Background())
	if err != nil {
		t.Fatalf("ListBuckets: %v", err)
	}
	if len(buckets.Live) != 1 || len(buckets.History) != 1 {
		t.Errorf("live=%d history=%d, want 1/1", len(buckets.Live), len(buckets.History))
	}
}

func TestListBucketsDegradesToEmptyOnFailure(t *testing.T) {
	svc := &service{repo: &fakeFeedbackRepo{err: storage.ErrAggregationFailed}, now: time.Now}

	buckets, err := svc.ListBuckets(context.Background())
	if !errors.Is(err, storage.ErrAggregationFailed) {
		t.Fatalf("err = %v, want ErrAggregationFailed", err)
	}
	if buckets.Live == nil || buckets.History == nil {
		t.Fatal("degraded buckets must be empty slices, not nil")
	}
	if len(buckets.Live) != 0 || len(buckets.History) != 0 {
		t.Errorf("degraded buckets not empty: %+v", buckets)
	}
}

func TestResolveFeedbackRejectsBadID(t *testing.T) {
	svc := NewService(&fakeFeedbackRepo{})
	if err := svc.ResolveFeedback(context.Background(), "not-a-uuid"); err == nil {
		t.Fatal("expected error for malformed id")
	}
}

func TestResolveFeedbackDelegates(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := NewService(repo)
	id := uuid.New()

	if err := svc.ResolveFeedback(context.Background(), id.String()); err != nil {
		t.Fatalf("ResolveFeedback: %v", err)
	}
	if len(repo.resolved) != 1 || repo.resolved[0] != id {
		t.Errorf("resolved = %v, want [%s]", repo.resolved, id)
	}
}
