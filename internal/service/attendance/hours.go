package attendance

import (
	"time"

	"github.com/hrms-workforce/hrms-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

var (
	millisPerHour = decimal.NewFromInt(int64(time.Hour / time.Millisecond))
	workdayHours  = decimal.NewFromInt(attendance.StandardWorkdayHours)
)

// elapsedHours returns the hours between from and to, rounded to 2 decimals.
func elapsedHours(from, to time.Time) decimal.Decimal {
	return decimal.NewFromInt(to.Sub(from).Milliseconds()).Div(millisPerHour).Round(2)
}

// evaluateOvertime applies the overtime rule to a check-out at checkOut with
// the given rounded working hours. A check-out at or after 18:00 is always
// flagged; a long day that ends earlier is flagged only when requested.
func evaluateOvertime(checkOut time.Time, workingHours decimal.Decimal, requested bool) (bool, decimal.Decimal) {
	afterCutoff := checkOut.Hour() >= attendance.OvertimeCutoffHour
	candidate := afterCutoff || workingHours.GreaterThan(workdayHours)
	if !candidate || !(requested || afterCutoff) {
		return false, decimal.Zero
	}

	extra := workingHours.Sub(workdayHours).Round(2)
	if extra.IsNegative() {
		extra = decimal.Zero
	}
	return true, extra
}
