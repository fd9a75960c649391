// Package quiz implements the assessment session state machine: a learner
// selects a subject/level/language, answers a snapshot of catalog questions,
// submits for scoring, and reviews per-question results.
package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shikshamitra/shikshamitra/internal/catalog"
)

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseSelecting Phase = iota
	PhaseInProgress
	PhaseScored
	PhaseReviewed
)

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhaseInProgress:
		return "in-progress"
	case PhaseScored:
		return "scored"
	case PhaseReviewed:
		return "reviewed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Result is the immutable outcome of a scored session.
type Result struct {
	Subject        string
	Level          string
	Language       string
	TotalMarks     int
	ObtainedMarks  int
	Percentage     float64
	CorrectCount   int
	TotalQuestions int
	Answers        map[string]int
	CompletedAt    time.Time
}

// Recorder persists scored results. A failed Record does not invalidate the
// in-memory result.
type Recorder interface {
	Record(ctx context.Context, result Result) error
}

// QuestionReview is the per-question detail exposed after scoring.
type QuestionReview struct {
	QuestionID string
	Text       string
	Options    []string
	Chosen     int // -1 when no answer was recorded
	Correct    int
	IsCorrect  bool
	Marks      int
}

// Session is one assessment attempt. Not safe for concurrent use; each
// learner connection owns its session.
type Session struct {
	ID string

	catalog *catalog.Catalog
	now     func() time.Time

	subject  string
	level    string
	language string

	questions []catalog.Question
	answers   map[string]int
	phase     Phase
	result    *Result
}

// NewSession creates a session in the Selecting phase.
func NewSession(cat *catalog.Catalog) *Session {
	return newSessionWithClock(cat, time.Now)
}

// newSessionWithClock allows deterministic completion timestamps in tests.
func newSessionWithClock(cat *catalog.Catalog, now func() time.Time) *Session {
	return &Session{
		ID:      uuid.NewString(),
		catalog: cat,
		now:     now,
		answers: make(map[string]int),
		phase:   PhaseSelecting,
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Selection returns the subject, level, and language of the current attempt.
func (s *Session) Selection() (subject, level, language string) {
	return s.subject, s.level, s.language
}

// Questions returns the snapshot taken at Start.
func (s *Session) Questions() []catalog.Question {
	out := make([]catalog.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Answered reports how many questions have a recorded answer.
func (s *Session) Answered() int { return len(s.answers) }

// Result returns the scored result, or nil before submission.
func (s *Session) Result() *Result { return s.result }

// Start moves Selecting → InProgress, snapshotting the question list for
// the subject/level pair and clearing the answer map. The level may be
// shorthand ("1"); the session keeps the catalog's canonical tag.
func (s *Session) Start(subject, level, language string) error {
	if s.phase != PhaseSelecting {
		return fmt.Errorf("start from %s: %w", s.phase, ErrWrongPhase)
	}
	level = catalog.NormalizeLevel(level)
	questions := s.catalog.Questions(subject, level)
	if len(questions) == 0 {
		return fmt.Errorf("%s %s: %w", subject, level, ErrInvalidSelection)
	}

	s.subject = subject
	s.level = level
	s.language = language
	s.questions = questions
	s.answers = make(map[string]int)
	s.result = nil
	s.phase = PhaseInProgress
	return nil
}

// RecordAnswer upserts the selected option for a question. Answers may be
// changed any number of times before submission.
func (s *Session) RecordAnswer(questionID string, optionIndex int) error {
	if s.phase != PhaseInProgress {
		return fmt.Errorf("record answer in %s: %w", s.phase, ErrWrongPhase)
	}
	q, ok := s.find(questionID)
	if !ok {
		return fmt.Errorf("%q: %w", questionID, ErrUnknownQuestion)
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("%q option %d of %d: %w", questionID, optionIndex, len(q.Options), ErrInvalidAnswerIndex)
	}
	s.answers[questionID] = optionIndex
	return nil
}

// Submit scores the attempt and moves InProgress → Scored. Every question
// must have an answer; otherwise ErrIncompleteSubmission is returned and the
// session stays in progress. When a recorder is supplied and fails, the
// returned error is a *PersistError and the session is still Scored.
func (s *Session) Submit(ctx context.Context, rec Recorder) (*Result, error) {
	if s.phase != PhaseInProgress {
		return nil, fmt.Errorf("submit from %s: %w", s.phase, ErrWrongPhase)
	}
	if len(s.answers) < len(s.questions) {
		return nil, fmt.Errorf("%d of %d answered: %w", len(s.answers), len(s.questions), ErrIncompleteSubmission)
	}

	totalMarks, obtained, correct := 0, 0, 0
	answers := make(map[string]int, len(s.answers))
	for _, q := range s.questions {
		totalMarks += q.Marks
		chosen := s.answers[q.ID]
		answers[q.ID] = chosen
		if chosen == q.Correct {
			obtained += q.Marks
			correct++
		}
	}

	percentage := 0.0
	if totalMarks > 0 {
		percentage = float64(obtained) / float64(totalMarks) * 100
	}

	s.result = &Result{
		Subject:        s.subject,
		Level:          s.level,
		Language:       s.language,
		TotalMarks:     totalMarks,
		ObtainedMarks:  obtained,
		Percentage:     percentage,
		CorrectCount:   correct,
		TotalQuestions: len(s.questions),
		Answers:        answers,
		CompletedAt:    s.now(),
	}
	s.phase = PhaseScored

	if rec != nil {
		if err := rec.Record(ctx, *s.result); err != nil {
			return s.result, &PersistError{Err: err}
		}
	}
	return s.result, nil
}

// Review moves Scored → Reviewed and returns per-question details in the
// session's display language. Reviewing again is allowed.
func (s *Session) Review() ([]QuestionReview, error) {
	if s.phase != PhaseScored && s.phase != PhaseReviewed {
		return nil, fmt.Errorf("review from %s: %w", s.phase, ErrWrongPhase)
	}
	s.phase = PhaseReviewed

	out := make([]QuestionReview, 0, len(s.questions))
	for _, q := range s.questions {
		chosen, answered := s.result.Answers[q.ID]
		if !answered {
			chosen = -1
		}
		out = append(out, QuestionReview{
			QuestionID: q.ID,
			Text:       q.TextIn(s.language),
			Options:    q.Options,
			Chosen:     chosen,
			Correct:    q.Correct,
			IsCorrect:  answered && chosen == q.Correct,
			Marks:      q.Marks,
		})
	}
	return out, nil
}

// Retake restarts the same subject/level/language attempt, clearing only
// the answers and score.
func (s *Session) Retake() error {
	if s.phase == PhaseSelecting {
		return fmt.Errorf("retake from %s: %w", s.phase, ErrWrongPhase)
	}
	s.answers = make(map[string]int)
	s.result = nil
	s.phase = PhaseInProgress
	return nil
}

// Reset abandons the attempt entirely and returns to Selecting.
func (s *Session) Reset() {
	s.subject = ""
	s.level = ""
	s.language = ""
	s.questions = nil
	s.answers = make(map[string]int)
	s.result = nil
	s.phase = PhaseSelecting
}

func (s *Session) find(questionID string) (catalog.Question, bool) {
	for _, q := range s.questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return catalog.Question{}, false
}
