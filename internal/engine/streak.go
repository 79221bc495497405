package engine

import (
	"math"
	"time"

	"trashquest/internal/storage"
)

// DateLayout is the ISO calendar date used for streaks and the daily
// report counter.
const DateLayout = "2006-01-02"

// UpdateStreak advances the consecutive-day activity streak for an
// XP-earning action performed on today (an ISO date). Same-day calls
// are no-ops, a one-day difference extends the streak, and any other
// difference resets it to 1. A negative difference (clock skew) also
// resets. Returns true when the user record changed.
func UpdateStreak(u *storage.User, today string) bool {
	if u.LastActiveDate == "" {
		u.Streak = 1
		u.LastActiveDate = today
		return true
	}

	switch daysBetween(u.LastActiveDate, today) {
	case 0:
		return false
	case 1:
		u.Streak++
	default:
		u.Streak = 1
	}
	u.LastActiveDate = today
	return true
}

// daysBetween returns the calendar-day difference to - from. Both dates
// parse to UTC midnight, so whole days divide evenly. Unparseable
// dates count as a maximal gap.
func daysBetween(from, to string) int {
	a, errA := time.ParseInLocation(DateLayout, from, time.UTC)
	b, errB := time.ParseInLocation(DateLayout, to, time.UTC)
	if errA != nil || errB != nil {
		return math.MaxInt
	}
	return int(b.Sub(a).Hours() / 24)
}
