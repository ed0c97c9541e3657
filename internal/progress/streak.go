package progress

import "time"

// NextStreak returns the daily streak after activity at now, given the
// current streak and the previous activity time.
//
// Days are UTC calendar days: activity at 23:59 and 00:01 UTC the next day
// counts as consecutive. Same-day activity keeps the streak, the next day
// extends it, and any larger gap or a lastActivity in the future resets it
// to 1. A nil lastActivity also yields 1.
func NextStreak(current int, lastActivity *time.Time, now time.Time) int {
	if current < 1 {
		current = 1
	}
	if lastActivity == nil {
		return 1
	}

	switch calendarDaysBetween(*lastActivity, now) {
	case 0:
		return current
	case 1:
		return current + 1
	default:
		return 1
	}
}

// calendarDaysBetween returns the number of UTC calendar days from a to b.
func calendarDaysBetween(a, b time.Time) int {
	da := utcMidnight(a)
	db := utcMidnight(b)
	return int(db.Sub(da).Hours() / 24)
}

func utcMidnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
