package report

import (
	"context"
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/attendance"
)

// ReportRepository holds aggregate queries that have no home in a single entity store.
type ReportRepository interface {
	// DailyStatusCounts counts every employee's records dated on day, grouped by status.
	DailyStatusCounts(ctx context.Context, day time.Time) (map[attendance.Status]int64, error)
}
