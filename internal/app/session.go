package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/shikshamitra/shikshamitra/internal/quiz"
	"github.com/shikshamitra/shikshamitra/internal/store"
	"github.com/shikshamitra/shikshamitra/internal/tutor"
)

// DoubtXP is awarded for every answered doubt.
const DoubtXP = 10

// ErrSessionClosed reports use of a session after Logout.
var ErrSessionClosed = errors.New("session is closed")

// Defaults used when a session has no saved profile yet.
const (
	defaultClass    = 5
	defaultLanguage = "English"
)

// UserSession is one logged-in user. All per-login state, including the
// tutor's comprehension tracking, lives here and dies at Logout.
type UserSession struct {
	app     *App
	account *store.Account
	stats   *store.Stats
	agent   *tutor.Agent
	closed  bool
}

// Account returns the logged-in account.
func (s *UserSession) Account() *store.Account {
	return s.account
}

// Stats returns the gamification state as of the last mutation in this
// session.
func (s *UserSession) Stats() *store.Stats {
	return s.stats
}

// Agent exposes the session's tutor.
func (s *UserSession) Agent() *tutor.Agent {
	return s.agent
}

// Logout closes the session. Every later call fails with ErrSessionClosed.
func (s *UserSession) Logout() {
	s.closed = true
	s.account = nil
	s.stats = nil
	s.agent = nil
}

func (s *UserSession) check() error {
	if s.closed {
		return ErrSessionClosed
	}
	return nil
}

// Profile loads the saved profile, nil when onboarding hasn't happened.
func (s *UserSession) Profile(ctx context.Context) (*store.Profile, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.app.store.GetProfile(ctx, s.account.ID)
}

// SaveProfile validates against the curriculum and saves wholesale.
func (s *UserSession) SaveProfile(ctx context.Context, p store.Profile) error {
	if err := s.check(); err != nil {
		return err
	}
	p.AccountID = s.account.ID
	if err := ValidateProfile(p); err != nil {
		return err
	}
	return s.app.store.UpsertProfile(ctx, p)
}

// AskDoubt answers the student's question, appends it to the history and
// awards the doubt XP. The answer comes back in the profile language.
func (s *UserSession) AskDoubt(ctx context.Context, subject, question string) (*tutor.Explanation, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	class, language := s.profileDefaults(ctx)
	expl, err := s.agent.Explain(ctx, question, subject, class, language)
	if err != nil {
		return nil, err
	}

	if _, err := s.app.store.AppendDoubt(ctx, store.DoubtRecord{
		AccountID: s.account.ID,
		Subject:   subject,
		Question:  question,
		Answer:    expl.Text,
		Language:  language,
		AskedAt:   s.app.now(),
	}); err != nil {
		return nil, fmt.Errorf("record doubt: %w", err)
	}

	stats, err := s.app.store.AddXP(ctx, s.account.ID, DoubtXP)
	if err != nil {
		return nil, fmt.Errorf("award xp: %w", err)
	}
	s.stats = stats

	return expl, nil
}

// Lesson generates a lesson in the profile language.
func (s *UserSession) Lesson(ctx context.Context, topic, subject string) (*tutor.Lesson, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	class, language := s.profileDefaults(ctx)
	return s.agent.CreateLesson(ctx, topic, subject, class, language)
}

// StartTest opens a fresh test session over the app's catalog.
func (s *UserSession) StartTest() (*quiz.Session, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return quiz.NewSession(s.app.catalog), nil
}

// SubmitTest scores the quiz and persists the result against this account.
func (s *UserSession) SubmitTest(ctx context.Context, q *quiz.Session) (*quiz.Result, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return q.Submit(ctx, resultRecorder{store: s.app.store, accountID: s.account.ID})
}

// Doubts returns the most recent doubt history.
func (s *UserSession) Doubts(ctx context.Context, limit int) ([]store.DoubtRecord, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.app.store.ListDoubts(ctx, s.account.ID, limit)
}

// Results returns the most recent test results.
func (s *UserSession) Results(ctx context.Context, limit int) ([]store.TestResult, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.app.store.ListTestResults(ctx, s.account.ID, limit)
}

// Performance aggregates this account's results in one subject.
func (s *UserSession) Performance(ctx context.Context, subject string) ([]store.LevelPerformance, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.app.store.SubjectPerformance(ctx, s.account.ID, subject)
}

// Overall aggregates all of this account's results.
func (s *UserSession) Overall(ctx context.Context) (*store.OverallStats, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.app.store.AccountOverallStats(ctx, s.account.ID)
}

// RefreshStats reloads the gamification state from the store.
func (s *UserSession) RefreshStats(ctx context.Context) (*store.Stats, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	stats, err := s.app.store.GetStats(ctx, s.account.ID)
	if err != nil {
		return nil, err
	}
	s.stats = stats
	return stats, nil
}

func (s *UserSession) profileDefaults(ctx context.Context) (class int, language string) {
	class, language = defaultClass, defaultLanguage
	p, err := s.app.store.GetProfile(ctx, s.account.ID)
	if err != nil || p == nil {
		return class, language
	}
	if p.ClassNumber != 0 {
		class = p.ClassNumber
	}
	if p.Language != "" {
		language = p.Language
	}
	return class, language
}

// resultRecorder persists scored quiz results for one account.
type resultRecorder struct {
	store     *store.Store
	accountID int64
}

func (r resultRecorder) Record(ctx context.Context, res quiz.Result) error {
	_, err := r.store.AppendTestResult(ctx, store.TestResult{
		AccountID:      r.accountID,
		Subject:        res.Subject,
		Level:          res.Level,
		TotalMarks:     res.TotalMarks,
		ObtainedMarks:  res.ObtainedMarks,
		Percentage:     res.Percentage,
		CorrectAnswers: res.CorrectCount,
		TotalQuestions: res.TotalQuestions,
		Answers:        res.Answers,
		CompletedAt:    res.CompletedAt,
	})
	return err
}
