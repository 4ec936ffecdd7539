package database

import "time"

// StampCreated fills zero audit timestamps for a new row. Callers normally
// pass values from their clock; the wall clock is the fallback.
func StampCreated(createdAt, updatedAt time.Time) (time.Time, time.Time) {
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	return createdAt, updatedAt
}

// StampUpdated returns updatedAt, or the wall clock when it is zero.
func StampUpdated(updatedAt time.Time) time.Time {
	if updatedAt.IsZero() {
		return time.Now()
	}
	return updatedAt
}
