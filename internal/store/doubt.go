package store

import (
	"context"
	"fmt"
	"time"
)

type doubtRow struct {
	ID        int64  `db:"doubt_id"`
	AccountID int64  `db:"user_id"`
	Subject   string `db:"subject"`
	Question  string `db:"question"`
	Answer    string `db:"answer"`
	Language  string `db:"language"`
	AskedAt   string `db:"asked_at"`
}

// AppendDoubt records one answered doubt. History is append-only.
func (s *Store) AppendDoubt(ctx context.Context, d DoubtRecord) (int64, error) {
	askedAt := d.AskedAt
	if askedAt.IsZero() {
		askedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO doubts_history (user_id, subject, question, answer, language, asked_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.AccountID, d.Subject, d.Question, d.Answer, d.Language, encodeTime(askedAt))
	if err != nil {
		return 0, fmt.Errorf("append doubt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("append doubt: %w", err)
	}
	return id, nil
}

// ListDoubts returns the most recent doubts, newest first, up to limit.
// A non-positive limit returns everything.
func (s *Store) ListDoubts(ctx context.Context, accountID int64, limit int) ([]DoubtRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}
	var rows []doubtRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT doubt_id, user_id, subject, question, answer, language, asked_at
		 FROM doubts_history WHERE user_id = ?
		 ORDER BY doubt_id DESC LIMIT ?`, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list doubts: %w", err)
	}
	out := make([]DoubtRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, DoubtRecord{
			ID:        r.ID,
			AccountID: r.AccountID,
			Subject:   r.Subject,
			Question:  r.Question,
			Answer:    r.Answer,
			Language:  r.Language,
			AskedAt:   decodeTime(r.AskedAt),
		})
	}
	return out, nil
}
