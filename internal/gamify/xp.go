package gamify

import "fmt"

// XPPerLevel is the fixed XP threshold between levels.
const XPPerLevel = 1000

// XPUpdate is the result of adding XP to a running total.
type XPUpdate struct {
	TotalXP int
	Level   int
}

// Level derives the level for a cumulative XP total. Level 1 starts at 0 XP
// and each subsequent level requires another XPPerLevel points.
func Level(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return totalXP/XPPerLevel + 1
}

// AddXP adds amount to totalXP and recomputes the level. amount must be
// positive; there is no XP deduction in this design.
func AddXP(totalXP, amount int) (XPUpdate, error) {
	if amount <= 0 {
		return XPUpdate{}, fmt.Errorf("xp amount must be positive, got %d", amount)
	}
	total := totalXP + amount
	return XPUpdate{TotalXP: total, Level: Level(total)}, nil
}
