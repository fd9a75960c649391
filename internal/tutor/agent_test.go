package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/shikshamitra/shikshamitra/internal/llm"
)

func TestTranslateReturnsInputForEnglish(t *testing.T) {
	mock := llm.NewMockProvider()
	a := NewAgent(mock)

	for _, lang := range []string{"English", "english", "en", ""} {
		if got := a.Translate(context.Background(), "hello", lang); got != "hello" {
			t.Fatalf("Translate(%q) = %q", lang, got)
		}
	}
	if mock.CallCount() != 0 {
		t.Fatalf("English target must not call the model, got %d calls", mock.CallCount())
	}
}

func TestTranslateFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	a := NewAgent(mock)

	if got := a.Translate(context.Background(), "hello", "Hindi"); got != "hello" {
		t.Fatalf("failed translation must return the input, got %q", got)
	}
}

func TestTranslateSuccess(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"नमस्ते"`)},
	)
	a := NewAgent(mock)

	if got := a.Translate(context.Background(), "hello", "Hindi"); got != "नमस्ते" {
		t.Fatalf("Translate = %q", got)
	}
}

func TestCreateLessonCaches(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"Water evaporates from ponds and wells..."`)},
	)
	a := NewAgent(mock)
	ctx := context.Background()

	l1, err := a.CreateLesson(ctx, "evaporation", "Science", 6, "English")
	if err != nil {
		t.Fatalf("CreateLesson: %v", err)
	}
	if l1.Content == "" || l1.Topic != "evaporation" || l1.Difficulty != 5 {
		t.Fatalf("lesson: %+v", l1)
	}

	// Second request for the same topic must be served from cache: the
	// mock's queue is empty, so a model call would fail.
	l2, err := a.CreateLesson(ctx, "evaporation", "Science", 6, "English")
	if err != nil {
		t.Fatalf("cached CreateLesson: %v", err)
	}
	if l2.Content != l1.Content {
		t.Fatalf("cache returned different content")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 model call, got %d", mock.CallCount())
	}
}

func TestCreateLessonTranslatesNonEnglish(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"lesson in English"`)},
		llm.MockResponse{Content: json.RawMessage(`"हिंदी में पाठ"`)},
	)
	a := NewAgent(mock)

	l, err := a.CreateLesson(context.Background(), "fractions", "Mathematics", 5, "Hindi")
	if err != nil {
		t.Fatalf("CreateLesson: %v", err)
	}
	if l.Content != "हिंदी में पाठ" || l.Language != "Hindi" {
		t.Fatalf("lesson not localized: %+v", l)
	}

	// The cached entry stays English so other languages can be served.
	cached, ok := a.cache.get(lessonKey{topic: "fractions", subject: "Mathematics", class: 5})
	if !ok || cached.Content != "lesson in English" {
		t.Fatalf("cache should keep the English lesson: %+v", cached)
	}
}

func TestExplainPropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	a := NewAgent(mock)

	if _, err := a.Explain(context.Background(), "why do stars twinkle", "Science", 6, "English"); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateProblemsParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(
			`{"problems":[{"question":"What is 3/4 of 12?","answer":"9","hint":"Divide 12 into 4 parts."}]}`)},
	)
	a := NewAgent(mock)

	got := a.GenerateProblems(context.Background(), "fractions", "Mathematics", 5, 1)
	if len(got) != 1 || got[0].Answer != "9" {
		t.Fatalf("problems: %+v", got)
	}
}

func TestGenerateProblemsFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("schema")}},
	)
	a := NewAgent(mock)

	got := a.GenerateProblems(context.Background(), "fractions", "Mathematics", 5, 3)
	if len(got) != 3 {
		t.Fatalf("fallback should produce 3 problems, got %d", len(got))
	}
	for _, p := range got {
		if p.Question == "" || p.Hint == "" {
			t.Fatalf("fallback problem incomplete: %+v", p)
		}
	}
}

func TestAssessParsesFullGrading(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"score": 8,
			"understood": "The addition is right.",
			"needs_work": "Show the carrying step.",
			"feedback": "Well done!",
			"next_step": "Try a three-digit sum."
		}`)},
	)
	a := NewAgent(mock)

	got := a.Assess(context.Background(), Problem{Question: "12+19?", Answer: "31"}, "31")
	if got.Score != 8 {
		t.Fatalf("score = %v, want 8", got.Score)
	}
	if got.Understood != "The addition is right." {
		t.Errorf("understood = %q", got.Understood)
	}
	if got.NeedsWork != "Show the carrying step." {
		t.Errorf("needs_work = %q", got.NeedsWork)
	}
	if got.NextStep != "Try a three-digit sum." {
		t.Errorf("next_step = %q", got.NextStep)
	}
}

func TestAssessUpdatesComprehension(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score":10,"feedback":"Perfect!"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"score":0,"feedback":"Let us revise this."}`)},
	)
	a := NewAgent(mock)
	ctx := context.Background()
	p := Problem{Question: "2+2?", Answer: "4"}

	if got := a.Comprehension(); got != 5.0 {
		t.Fatalf("initial comprehension: %v", got)
	}

	a.Assess(ctx, p, "4")
	if got := a.Comprehension(); math.Abs(got-6.0) > 1e-9 {
		t.Fatalf("after score 10: got %v, want 6.0", got)
	}

	a.Assess(ctx, p, "5")
	if got := a.Comprehension(); math.Abs(got-4.8) > 1e-9 {
		t.Fatalf("after score 0: got %v, want 4.8", got)
	}
}

func TestAssessFallsBackNeutral(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	a := NewAgent(mock)

	got := a.Assess(context.Background(), Problem{Question: "2+2?"}, "4")
	if got.Score != 5.0 || got.Feedback == "" {
		t.Fatalf("neutral fallback expected: %+v", got)
	}
	if got.Understood == "" || got.NeedsWork == "" || got.NextStep == "" {
		t.Fatalf("fallback grading incomplete: %+v", got)
	}
	// A neutral score leaves the estimate where it was.
	if c := a.Comprehension(); c != 5.0 {
		t.Fatalf("comprehension moved on fallback: %v", c)
	}
}

func TestAssessClampsScore(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score":42,"feedback":"!"}`)},
	)
	a := NewAgent(mock)

	got := a.Assess(context.Background(), Problem{}, "x")
	if got.Score != 10 {
		t.Fatalf("score not clamped: %v", got.Score)
	}
}

type stubRetriever struct {
	snippets []string
}

func (s stubRetriever) Retrieve(context.Context, string, int) ([]string, error) {
	return s.snippets, nil
}

func TestLessonCarriesRetrievedSources(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"lesson"`)},
	)
	a := NewAgent(mock, WithRetriever(stubRetriever{snippets: []string{"NCERT ch. 6"}}))

	l, err := a.CreateLesson(context.Background(), "soil", "Science", 7, "English")
	if err != nil {
		t.Fatalf("CreateLesson: %v", err)
	}
	if len(l.Sources) != 1 || l.Sources[0] != "NCERT ch. 6" {
		t.Fatalf("sources: %+v", l.Sources)
	}
}

func TestLessonCacheEviction(t *testing.T) {
	c := newLessonCache()
	for i := 0; i < maxCachedLessons+5; i++ {
		c.put(lessonKey{topic: string(rune('a' + i%26)), class: i}, &Lesson{})
	}
	if c.len() != maxCachedLessons {
		t.Fatalf("cache size: %d", c.len())
	}
	if _, ok := c.get(lessonKey{topic: "a", class: 0}); ok {
		t.Fatal("oldest entry should have been evicted")
	}
}
