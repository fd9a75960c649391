package store

import (
	"context"
	"fmt"
	"time"
)

type resultRow struct {
	ID             int64   `db:"result_id"`
	AccountID      int64   `db:"user_id"`
	Subject        string  `db:"subject"`
	Level          string  `db:"level"`
	TotalMarks     int     `db:"total_marks"`
	ObtainedMarks  int     `db:"obtained_marks"`
	Percentage     float64 `db:"percentage"`
	CorrectAnswers int     `db:"correct_answers"`
	TotalQuestions int     `db:"total_questions"`
	Answers        string  `db:"answers"`
	CompletedAt    string  `db:"completed_at"`
}

func (r resultRow) result() TestResult {
	return TestResult{
		ID:             r.ID,
		AccountID:      r.AccountID,
		Subject:        r.Subject,
		Level:          r.Level,
		TotalMarks:     r.TotalMarks,
		ObtainedMarks:  r.ObtainedMarks,
		Percentage:     r.Percentage,
		CorrectAnswers: r.CorrectAnswers,
		TotalQuestions: r.TotalQuestions,
		Answers:        decodeAnswers(r.Answers),
		CompletedAt:    decodeTime(r.CompletedAt),
	}
}

// AppendTestResult records one completed assessment. Results are
// append-only and never updated.
func (s *Store) AppendTestResult(ctx context.Context, r TestResult) (int64, error) {
	completedAt := r.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO enhanced_test_results
			(user_id, subject, level, total_marks, obtained_marks, percentage,
			 correct_answers, total_questions, answers, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.AccountID, r.Subject, r.Level, r.TotalMarks, r.ObtainedMarks, r.Percentage,
		r.CorrectAnswers, r.TotalQuestions, encodeAnswers(r.Answers), encodeTime(completedAt))
	if err != nil {
		return 0, fmt.Errorf("append result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("append result: %w", err)
	}
	return id, nil
}

// ListTestResults returns the most recent results, newest first, up to
// limit. A non-positive limit returns everything.
func (s *Store) ListTestResults(ctx context.Context, accountID int64, limit int) ([]TestResult, error) {
	if limit <= 0 {
		limit = -1
	}
	var rows []resultRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT result_id, user_id, subject, level, total_marks, obtained_marks, percentage,
		        correct_answers, total_questions, answers, completed_at
		 FROM enhanced_test_results WHERE user_id = ?
		 ORDER BY result_id DESC LIMIT ?`, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	out := make([]TestResult, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.result())
	}
	return out, nil
}

// SubjectPerformance aggregates the account's results in one subject,
// grouped per level.
func (s *Store) SubjectPerformance(ctx context.Context, accountID int64, subject string) ([]LevelPerformance, error) {
	var rows []struct {
		Level          string  `db:"level"`
		Attempts       int     `db:"attempts"`
		MeanPercentage float64 `db:"mean_percentage"`
		BestPercentage float64 `db:"best_percentage"`
		MeanAccuracy   float64 `db:"mean_accuracy"`
	}
	err := s.db.SelectContext(ctx, &rows,
		`SELECT level,
		        COUNT(*) AS attempts,
		        AVG(percentage) AS mean_percentage,
		        MAX(percentage) AS best_percentage,
		        AVG(CAST(correct_answers AS REAL) / total_questions) AS mean_accuracy
		 FROM enhanced_test_results
		 WHERE user_id = ? AND subject = ? AND total_questions > 0
		 GROUP BY level ORDER BY level`, accountID, subject)
	if err != nil {
		return nil, fmt.Errorf("subject performance: %w", err)
	}
	out := make([]LevelPerformance, 0, len(rows))
	for _, r := range rows {
		out = append(out, LevelPerformance(r))
	}
	return out, nil
}

// AccountOverallStats aggregates all of the account's test results. An
// account with no tests yet gets the zero aggregate, not an error.
func (s *Store) AccountOverallStats(ctx context.Context, accountID int64) (*OverallStats, error) {
	var row struct {
		TotalTests     int     `db:"total_tests"`
		MeanPercentage float64 `db:"mean_percentage"`
		BestPercentage float64 `db:"best_percentage"`
		SubjectsTested int     `db:"subjects_tested"`
		PassedTests    int     `db:"passed_tests"`
	}
	err := s.db.GetContext(ctx, &row,
		`SELECT COUNT(*) AS total_tests,
		        COALESCE(AVG(percentage), 0) AS mean_percentage,
		        COALESCE(MAX(percentage), 0) AS best_percentage,
		        COUNT(DISTINCT subject) AS subjects_tested,
		        COALESCE(SUM(percentage >= ?), 0) AS passed_tests
		 FROM enhanced_test_results WHERE user_id = ?`, PassThreshold, accountID)
	if err != nil {
		return nil, fmt.Errorf("overall stats: %w", err)
	}
	return &OverallStats{
		TotalTests:     row.TotalTests,
		MeanPercentage: row.MeanPercentage,
		BestPercentage: row.BestPercentage,
		SubjectsTested: row.SubjectsTested,
		PassedTests:    row.PassedTests,
	}, nil
}
