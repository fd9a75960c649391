package gamify

import "time"

// StreakUpdate is the result of applying one activity day to a streak.
type StreakUpdate struct {
	Current      int
	Longest      int
	LastActivity time.Time

	// Anomaly is set when the activity date precedes the recorded last
	// activity (clock moved backward or events arrived out of order).
	// The streak and last activity are left untouched in that case.
	Anomaly bool
}

// UpdateStreak applies one qualifying activity on today to the streak
// counters. lastActivity is the zero time when no activity has ever been
// recorded. Repeated calls with the same today are idempotent.
func UpdateStreak(today time.Time, lastActivity time.Time, current, longest int) StreakUpdate {
	today = truncateToDay(today)

	if lastActivity.IsZero() {
		return finishStreak(1, longest, today)
	}

	last := truncateToDay(lastActivity)
	diff := daysBetween(last, today)

	switch {
	case diff < 0:
		u := finishStreak(current, longest, last)
		u.Anomaly = true
		return u
	case diff == 0:
		return finishStreak(current, longest, today)
	case diff == 1:
		return finishStreak(current+1, longest, today)
	default:
		return finishStreak(1, longest, today)
	}
}

func finishStreak(current, longest int, last time.Time) StreakUpdate {
	if current > longest {
		longest = current
	}
	return StreakUpdate{Current: current, Longest: longest, LastActivity: last}
}

// daysBetween returns the whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
