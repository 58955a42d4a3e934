package feedback

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FeedbackType classifies a feedback record.
type FeedbackType string

const (
	TypeComplaint  FeedbackType = "COMPLAINT"
	TypeCompliment FeedbackType = "COMPLIMENT"
)

// FeedbackStatus tracks complaint resolution.
type FeedbackStatus string

const (
	StatusPending  FeedbackStatus = "PENDING"
	StatusResolved FeedbackStatus = "RESOLVED"
)

// Feedback is a customer feedback record. Entries written by the
// dashboard carry message/type/status; legacy chatbot entries carry
// only a star rating and an optional comment, and get normalized
// before display.
type Feedback struct {
	ID        uuid.UUID       `json:"id"`
	Rating    int             `json:"rating"`
	Message   string          `json:"message,omitempty"`
	Comment   string          `json:"comment,omitempty"`
	Type      FeedbackType    `json:"type,omitempty"`
	Status    *FeedbackStatus `json:"status,omitempty"` // nil means untracked
	CreatedAt time.Time       `json:"created_at"`
}

// Normalize fills in the fields a rating-only entry lacks so every
// record downstream has a message and a type. Entries that already
// have a message pass through unchanged.
func (f Feedback) Normalize() Feedback {
	if f.Message != "" {
		return f
	}
	if f.Comment != "" {
		f.Message = f.Comment
	} else {
		plural := "s"
		if f.Rating == 1 {
			plural = ""
		}
		f.Message = fmt.Sprintf("Customer rated %d star%s", f.Rating, plural)
	}
	if f.Rating <= 3 {
		f.Type = TypeComplaint
	} else {
		f.Type = TypeCompliment
	}
	f.Status = nil
	return f
}
