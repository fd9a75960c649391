package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type profileRow struct {
	AccountID   int64          `db:"user_id"`
	FullName    string         `db:"full_name"`
	ClassNumber int            `db:"class_number"`
	Language    string         `db:"language"`
	Subjects    string         `db:"subjects"`
	DateOfBirth sql.NullString `db:"date_of_birth"`
	PhoneNumber sql.NullString `db:"phone_number"`
	ParentPhone sql.NullString `db:"parent_phone"`
}

// UpsertProfile writes the whole profile, replacing any previous row.
func (s *Store) UpsertProfile(ctx context.Context, p Profile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO user_profiles
			(user_id, full_name, class_number, language, subjects, date_of_birth, phone_number, parent_phone)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
			full_name = excluded.full_name,
			class_number = excluded.class_number,
			language = excluded.language,
			subjects = excluded.subjects,
			date_of_birth = excluded.date_of_birth,
			phone_number = excluded.phone_number,
			parent_phone = excluded.parent_phone`,
		p.AccountID, p.FullName, p.ClassNumber, p.Language,
		encodeList(p.Subjects), p.DateOfBirth, p.PhoneNumber, p.ParentPhone)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile returns the profile for the account, or nil when none has
// been saved yet.
func (s *Store) GetProfile(ctx context.Context, accountID int64) (*Profile, error) {
	var row profileRow
	err := s.db.GetContext(ctx, &row,
		`SELECT user_id, full_name, class_number, language, subjects, date_of_birth, phone_number, parent_phone
		 FROM user_profiles WHERE user_id = ?`, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &Profile{
		AccountID:   row.AccountID,
		FullName:    row.FullName,
		ClassNumber: row.ClassNumber,
		Language:    row.Language,
		Subjects:    decodeList(row.Subjects),
		DateOfBirth: row.DateOfBirth.String,
		PhoneNumber: row.PhoneNumber.String,
		ParentPhone: row.ParentPhone.String,
	}, nil
}
