package store

import (
	"context"
	"fmt"
	"time"
)

// LLMRequestLog is one recorded model call: what was asked, of which
// provider, and how it went.
type LLMRequestLog struct {
	ID         int64
	CreatedAt  time.Time
	Provider   string
	Model      string
	Purpose    string
	Duration   time.Duration
	Success    bool
	Error      string
	RequestDoc string // serialized request, for replaying failures
}

// AppendLLMRequest records one model call.
func (s *Store) AppendLLMRequest(ctx context.Context, l LLMRequestLog) error {
	createdAt := l.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	success := 0
	if l.Success {
		success = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_requests (created_at, provider, model, purpose, duration_ms, success, error, request)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		encodeTime(createdAt), l.Provider, l.Model, l.Purpose,
		l.Duration.Milliseconds(), success, l.Error, l.RequestDoc)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

// ListLLMRequests returns the most recent model calls, newest first.
func (s *Store) ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestLog, error) {
	if limit <= 0 {
		limit = -1
	}
	var rows []struct {
		ID         int64  `db:"request_id"`
		CreatedAt  string `db:"created_at"`
		Provider   string `db:"provider"`
		Model      string `db:"model"`
		Purpose    string `db:"purpose"`
		DurationMS int64  `db:"duration_ms"`
		Success    int    `db:"success"`
		Error      string `db:"error"`
		RequestDoc string `db:"request"`
	}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT request_id, created_at, provider, model, purpose, duration_ms, success,
		        COALESCE(error, '') AS error, request
		 FROM llm_requests ORDER BY request_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list llm requests: %w", err)
	}
	out := make([]LLMRequestLog, 0, len(rows))
	for _, r := range rows {
		out = append(out, LLMRequestLog{
			ID:         r.ID,
			CreatedAt:  decodeTime(r.CreatedAt),
			Provider:   r.Provider,
			Model:      r.Model,
			Purpose:    r.Purpose,
			Duration:   time.Duration(r.DurationMS) * time.Millisecond,
			Success:    r.Success == 1,
			Error:      r.Error,
			RequestDoc: r.RequestDoc,
		})
	}
	return out, nil
}
