package gamify

// Badge identifiers awarded at streak and level milestones. Stored on the
// stats row as a JSON array of these IDs.
const (
	BadgeWeekStreak  = "streak_7"
	BadgeMonthStreak = "streak_30"
	BadgeLevel5      = "level_5"
	BadgeLevel10     = "level_10"
)

// StreakBadges returns the badge IDs earned at the given streak length.
func StreakBadges(streak int) []string {
	var out []string
	if streak >= 7 {
		out = append(out, BadgeWeekStreak)
	}
	if streak >= 30 {
		out = append(out, BadgeMonthStreak)
	}
	return out
}

// LevelBadges returns the badge IDs earned at the given level.
func LevelBadges(level int) []string {
	var out []string
	if level >= 5 {
		out = append(out, BadgeLevel5)
	}
	if level >= 10 {
		out = append(out, BadgeLevel10)
	}
	return out
}

// MergeBadges adds earned badge IDs to an existing set, preserving order
// and dropping duplicates.
func MergeBadges(existing, earned []string) []string {
	seen := make(map[string]bool, len(existing))
	out := make([]string, 0, len(existing)+len(earned))
	for _, b := range existing {
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	for _, b := range earned {
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	return out
}
