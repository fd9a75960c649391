package gamify

import (
	"reflect"
	"testing"
)

func TestStreakBadges(t *testing.T) {
	tests := []struct {
		streak int
		want   []string
	}{
		{3, nil},
		{7, []string{BadgeWeekStreak}},
		{30, []string{BadgeWeekStreak, BadgeMonthStreak}},
	}
	for _, tt := range tests {
		if got := StreakBadges(tt.streak); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("StreakBadges(%d) = %v, want %v", tt.streak, got, tt.want)
		}
	}
}

func TestMergeBadges_Dedup(t *testing.T) {
	got := MergeBadges([]string{BadgeWeekStreak}, []string{BadgeWeekStreak, BadgeLevel5})
	want := []string{BadgeWeekStreak, BadgeLevel5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeBadges = %v, want %v", got, want)
	}
}
