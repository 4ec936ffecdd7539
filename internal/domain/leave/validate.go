package leave

import (
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/pkg/clock"
)

// ValidateDateRange applies the leave window rule and returns the inclusive
// number of calendar days. All three arguments are compared as calendar days
// so callers may pass any time on the relevant date.
func ValidateDateRange(today, start, end time.Time) (int, error) {
	today = clock.StartOfDay(today)
	start = clock.StartOfDay(start)
	end = clock.StartOfDay(end)

	if !start.After(today) {
		return 0, ErrStartDateNotFuture
	}
	if end.Before(start) {
		return 0, ErrEndBeforeStart
	}
	return clock.DaysBetween(start, end) + 1, nil
}
