package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shikshamitra/shikshamitra/internal/gamify"
)

type statsRow struct {
	AccountID     int64          `db:"user_id"`
	CurrentStreak int            `db:"current_streak"`
	LongestStreak int            `db:"longest_streak"`
	TotalXP       int            `db:"total_xp"`
	Level         int            `db:"level"`
	Badges        string         `db:"badges"`
	LastActivity  sql.NullString `db:"last_activity_date"`
}

func (r statsRow) stats() *Stats {
	return &Stats{
		AccountID:     r.AccountID,
		CurrentStreak: r.CurrentStreak,
		LongestStreak: r.LongestStreak,
		TotalXP:       r.TotalXP,
		Level:         r.Level,
		Badges:        decodeList(r.Badges),
		LastActivity:  decodeDate(r.LastActivity.String),
	}
}

const statsColumns = `user_id, current_streak, longest_streak, total_xp, level, badges, last_activity_date`

// GetStats returns the gamification state for the account. An account
// without a stats row gets the zero state at level 1.
func (s *Store) GetStats(ctx context.Context, accountID int64) (*Stats, error) {
	var row statsRow
	err := s.db.GetContext(ctx, &row,
		`SELECT `+statsColumns+` FROM user_stats WHERE user_id = ?`, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return &Stats{AccountID: accountID, Level: 1, Badges: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return row.stats(), nil
}

// ApplyStreakUpdate advances the daily streak for an activity on today and
// awards any streak badges this unlocks. The read-compute-write runs in one
// transaction so concurrent logins cannot double-count a day.
func (s *Store) ApplyStreakUpdate(ctx context.Context, accountID int64, today time.Time) (*Stats, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var row statsRow
	err = tx.GetContext(ctx, &row,
		`SELECT `+statsColumns+` FROM user_stats WHERE user_id = ?`, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoAccount
	}
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}

	upd := gamify.UpdateStreak(today, decodeDate(row.LastActivity.String), row.CurrentStreak, row.LongestStreak)
	badges := gamify.MergeBadges(decodeList(row.Badges), gamify.StreakBadges(upd.Current))

	var lastActivity any
	if !upd.LastActivity.IsZero() {
		lastActivity = encodeDate(upd.LastActivity)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE user_stats
		 SET current_streak = ?, longest_streak = ?, badges = ?, last_activity_date = ?
		 WHERE user_id = ?`,
		upd.Current, upd.Longest, encodeList(badges), lastActivity, accountID); err != nil {
		return nil, fmt.Errorf("save streak: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	row.CurrentStreak = upd.Current
	row.LongestStreak = upd.Longest
	row.Badges = encodeList(badges)
	if !upd.LastActivity.IsZero() {
		row.LastActivity = sql.NullString{String: encodeDate(upd.LastActivity), Valid: true}
	}
	return row.stats(), nil
}

// AddXP credits amount experience points and awards any level badges this
// unlocks. The XP add happens inside the UPDATE so concurrent awards never
// lose points; the level is then rederived from the new total in the same
// transaction.
func (s *Store) AddXP(ctx context.Context, accountID int64, amount int) (*Stats, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("xp amount must be positive, got %d", amount)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE user_stats SET total_xp = total_xp + ? WHERE user_id = ?`,
		amount, accountID)
	if err != nil {
		return nil, fmt.Errorf("add xp: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("add xp: %w", err)
	} else if n == 0 {
		return nil, ErrNoAccount
	}

	var row statsRow
	if err := tx.GetContext(ctx, &row,
		`SELECT `+statsColumns+` FROM user_stats WHERE user_id = ?`, accountID); err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}

	level := gamify.Level(row.TotalXP)
	badges := gamify.MergeBadges(decodeList(row.Badges), gamify.LevelBadges(level))
	if _, err := tx.ExecContext(ctx,
		`UPDATE user_stats SET level = ?, badges = ? WHERE user_id = ?`,
		level, encodeList(badges), accountID); err != nil {
		return nil, fmt.Errorf("save level: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	row.Level = level
	row.Badges = encodeList(badges)
	return row.stats(), nil
}
