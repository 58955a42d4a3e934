package feedback

import "time"

// Partition splits feedback into the live triage queue and the
// history tab. Records are normalized first.
//
// Live: pending complaints, plus compliments from the last 24 hours.
// History: resolved complaints, plus compliments older than 24 hours.
// A record matching neither predicate (untracked complaint, compliment
// without a timestamp) lands in neither bucket; that is accepted, not
// an error. No record can match both.
func Partition(items []Feedback, now time.Time) (live, history []Feedback) {
	live = []Feedback{}
	history = []Feedback{}
	cutoff := now.Add(-24 * time.Hour)

	for _, raw := range items {
		f := raw.Normalize()
		switch {
		case f.Type == TypeComplaint && f.Status != nil && *f.Status == StatusPending:
			live = append(live, f)
		case f.Type == TypeComplaint && f.Status != nil && *f.Status == StatusResolved:
			history = append(history, f)
		case f.Type == TypeCompliment && !f.CreatedAt.IsZero() && !f.CreatedAt.Before(cutoff):
			live = append(live, f)
		case f.Type == TypeCompliment && !f.CreatedAt.IsZero():
			history = append(history, f)
		}
	}
	return live, history
}
