package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection is returned when the catalog has no questions for
	// the requested subject/level pair.
	ErrInvalidSelection = errors.New("no questions for selected subject and level")
	// ErrUnknownQuestion is returned when an answer targets a question ID
	// outside the session snapshot.
	ErrUnknownQuestion = errors.New("question not in session")
	// ErrInvalidAnswerIndex is returned when an option index is out of range.
	ErrInvalidAnswerIndex = errors.New("answer option index out of range")
	// ErrIncompleteSubmission is returned by Submit while any question is
	// still unanswered. The session stays in progress.
	ErrIncompleteSubmission = errors.New("not all questions answered")
	// ErrWrongPhase is returned when an operation is invoked outside the
	// phase that permits it.
	ErrWrongPhase = errors.New("operation not allowed in current session phase")
)

// PersistError reports that a scored result could not be saved durably.
// The in-memory score is still valid; callers surface this as a warning
// rather than discarding the result.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("test result not saved: %v", e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
