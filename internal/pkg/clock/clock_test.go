package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartAndEndOfDay(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	ts := time.Date(2026, 3, 14, 17, 45, 12, 500, loc)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), StartOfDay(ts))
	assert.Equal(t, time.Date(2026, 3, 14, 23, 59, 59, 999999999, loc), EndOfDay(ts))
}

func TestDaysBetween(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	a := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)

	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 4, DaysBetween(a, a.AddDate(0, 0, 4)))
	assert.Equal(t, -1, DaysBetween(a, a.AddDate(0, 0, -1)))
	assert.Equal(t, 31, DaysBetween(a, time.Date(2026, 4, 14, 23, 0, 0, 0, loc)))
}

func TestMock(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	m := NewMock(start)

	m.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), m.Now())

	m.Set(start)
	assert.Equal(t, start, m.Now())
	assert.Equal(t, time.UTC, m.Location())
}
