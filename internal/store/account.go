package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

type accountRow struct {
	ID           int64          `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Email        sql.NullString `db:"email"`
	CreatedAt    string         `db:"created_at"`
	LastLogin    sql.NullString `db:"last_login"`
}

func (r accountRow) account() *Account {
	return &Account{
		ID:        r.ID,
		Username:  r.Username,
		Email:     r.Email.String,
		CreatedAt: decodeTime(r.CreatedAt),
		LastLogin: decodeTime(r.LastLogin.String),
	}
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CreateAccount registers a new account and seeds its stats row. The email
// is optional; pass "" to omit it.
func (s *Store) CreateAccount(ctx context.Context, username, password, email string) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username must not be empty")
	}
	if password == "" {
		return nil, errors.New("password must not be empty")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var emailVal any
	if email != "" {
		emailVal = email
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, email, created_at) VALUES (?, ?, ?, ?)`,
		username, hashPassword(password), emailVal, encodeTime(time.Now()))
	if err != nil {
		return nil, mapUniqueError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO user_stats (user_id) VALUES (?)`, id); err != nil {
		return nil, fmt.Errorf("seed stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.getAccount(ctx, id)
}

// Authenticate checks the credentials and stamps last_login on success.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*Account, error) {
	var row accountRow
	err := s.db.GetContext(ctx, &row,
		`SELECT user_id, username, password_hash, email, created_at, last_login
		 FROM users WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}
	if row.PasswordHash != hashPassword(password) {
		return nil, ErrInvalidCredentials
	}

	now := encodeTime(time.Now())
	if _, err := s.db.ExecContext(ctx,
		`UPDATE users SET last_login = ? WHERE user_id = ?`, now, row.ID); err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}
	row.LastLogin = sql.NullString{String: now, Valid: true}
	return row.account(), nil
}

// DeleteAccount removes the account and, through the cascade, all of its
// profile, stats, doubt and result rows.
func (s *Store) DeleteAccount(ctx context.Context, accountID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, accountID)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if n == 0 {
		return ErrNoAccount
	}
	return nil
}

func (s *Store) getAccount(ctx context.Context, id int64) (*Account, error) {
	var row accountRow
	err := s.db.GetContext(ctx, &row,
		`SELECT user_id, username, password_hash, email, created_at, last_login
		 FROM users WHERE user_id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoAccount
	}
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}
	return row.account(), nil
}

func mapUniqueError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "users.username"):
		return ErrUsernameTaken
	case strings.Contains(msg, "users.email"):
		return ErrEmailTaken
	default:
		return fmt.Errorf("insert account: %w", err)
	}
}
