package analytics

import "time"

// DayWindow resolves the [start, end) bounds of the business day that
// contains now, under a fixed UTC offset in minutes (Nairobi is +180).
//
// The arithmetic is pure offset shifting: shift now into local time,
// truncate to the local calendar date, then shift midnight back into
// an absolute instant. No timezone database is consulted, so the
// result is identical on hosts without tzdata. The offset is constant
// per deployment; daylight-saving transitions are not modelled.
func DayWindow(now time.Time, utcOffsetMinutes int) (start, end time.Time) {
	offset := time.Duration(utcOffsetMinutes) * time.Minute
	local := now.UTC().Add(offset)
	y, m, d := local.Date()
	localMidnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start = localMidnight.Add(-offset)
	end = start.Add(24 * time.Hour)
	return start, end
}
