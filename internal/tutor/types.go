package tutor

import "context"

// Lesson is one generated teaching unit.
type Lesson struct {
	Topic      string
	Subject    string
	Class      int
	Language   string
	Content    string
	Difficulty int // rounded comprehension level, 1-10
	Sources    []string
}

// Explanation answers one student doubt.
type Explanation struct {
	Text          string
	Comprehension float64
}

// Problem is one generated practice problem.
type Problem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Hint     string `json:"hint"`
}

// Assessment grades one student answer.
type Assessment struct {
	Score      float64 `json:"score"` // 0-10
	Understood string  `json:"understood"`
	NeedsWork  string  `json:"needs_work"`
	Feedback   string  `json:"feedback"`
	NextStep   string  `json:"next_step"`
}

// ContextRetriever supplies reference snippets for a topic. The default
// agent retrieves nothing; callers with a document index can inject one.
type ContextRetriever interface {
	Retrieve(ctx context.Context, topic string, limit int) ([]string, error)
}
