package gamify

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestUpdateStreak_FirstActivity(t *testing.T) {
	u := UpdateStreak(day("2025-03-10"), time.Time{}, 0, 0)
	if u.Current != 1 {
		t.Errorf("Current = %d, want 1", u.Current)
	}
	if u.Longest != 1 {
		t.Errorf("Longest = %d, want 1", u.Longest)
	}
	if !u.LastActivity.Equal(day("2025-03-10")) {
		t.Errorf("LastActivity = %v, want 2025-03-10", u.LastActivity)
	}
}

func TestUpdateStreak_Transitions(t *testing.T) {
	tests := []struct {
		name        string
		today       string
		last        string
		current     int
		longest     int
		wantCurrent int
		wantLongest int
	}{
		{"same day no change", "2025-03-10", "2025-03-10", 4, 6, 4, 6},
		{"next day continues", "2025-03-11", "2025-03-10", 4, 6, 5, 6},
		{"continuation extends longest", "2025-03-11", "2025-03-10", 6, 6, 7, 7},
		{"gap resets", "2025-03-14", "2025-03-10", 4, 6, 1, 6},
		{"two day gap resets", "2025-03-12", "2025-03-10", 9, 9, 1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := UpdateStreak(day(tt.today), day(tt.last), tt.current, tt.longest)
			if u.Current != tt.wantCurrent {
				t.Errorf("Current = %d, want %d", u.Current, tt.wantCurrent)
			}
			if u.Longest != tt.wantLongest {
				t.Errorf("Longest = %d, want %d", u.Longest, tt.wantLongest)
			}
			if u.Anomaly {
				t.Error("Anomaly = true, want false")
			}
			if !u.LastActivity.Equal(day(tt.today)) {
				t.Errorf("LastActivity = %v, want %s", u.LastActivity, tt.today)
			}
		})
	}
}

func TestUpdateStreak_SameDayIdempotent(t *testing.T) {
	today := day("2025-03-11")
	first := UpdateStreak(today, day("2025-03-10"), 4, 6)
	second := UpdateStreak(today, first.LastActivity, first.Current, first.Longest)
	if second.Current != first.Current {
		t.Errorf("second Current = %d, want %d", second.Current, first.Current)
	}
	if second.Longest != first.Longest {
		t.Errorf("second Longest = %d, want %d", second.Longest, first.Longest)
	}
}

func TestUpdateStreak_BackwardClock(t *testing.T) {
	// Activity dated before the recorded last activity is ignored and
	// flagged; the recorded last activity must not move backward.
	u := UpdateStreak(day("2025-03-09"), day("2025-03-10"), 4, 6)
	if !u.Anomaly {
		t.Fatal("expected Anomaly for backward clock")
	}
	if u.Current != 4 || u.Longest != 6 {
		t.Errorf("streak changed on anomaly: current %d longest %d", u.Current, u.Longest)
	}
	if !u.LastActivity.Equal(day("2025-03-10")) {
		t.Errorf("LastActivity = %v, want unchanged 2025-03-10", u.LastActivity)
	}
}

func TestUpdateStreak_LongestMonotonic(t *testing.T) {
	last := time.Time{}
	current, longest := 0, 0
	prevLongest := 0
	days := []string{
		"2025-03-01", "2025-03-02", "2025-03-03", // build a streak
		"2025-03-07", // break it
		"2025-03-08", "2025-03-08", // continue + same-day repeat
	}
	for _, d := range days {
		u := UpdateStreak(day(d), last, current, longest)
		if u.Longest < prevLongest {
			t.Fatalf("Longest decreased from %d to %d on %s", prevLongest, u.Longest, d)
		}
		prevLongest = u.Longest
		last, current, longest = u.LastActivity, u.Current, u.Longest
	}
	if longest != 3 {
		t.Errorf("final Longest = %d, want 3", longest)
	}
}
