// Package tutor is the AI tutoring boundary: lessons, doubt explanations,
// practice problems and answer assessment, all behind llm.Provider.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/shikshamitra/shikshamitra/internal/llm"
)

const (
	// initialComprehension is the neutral starting estimate on a 0-10
	// scale; each assessment nudges it by a fifth of the new score.
	initialComprehension = 5.0
	comprehensionDecay   = 0.8

	defaultLocalContext = "farming and village life"
)

// Agent tutors one student. It tracks a comprehension estimate across
// assessments, so use one Agent per student session.
type Agent struct {
	provider     llm.Provider
	retriever    ContextRetriever
	localContext string
	cache        *lessonCache

	mu            sync.Mutex
	comprehension float64
}

// Option configures an Agent.
type Option func(*Agent)

// WithRetriever injects a reference-snippet source for lesson and
// explanation prompts.
func WithRetriever(r ContextRetriever) Option {
	return func(a *Agent) { a.retriever = r }
}

// WithLocalContext overrides the everyday-life setting used in examples.
func WithLocalContext(context string) Option {
	return func(a *Agent) { a.localContext = context }
}

// NewAgent creates an Agent over the given provider.
func NewAgent(p llm.Provider, opts ...Option) *Agent {
	a := &Agent{
		provider:      p,
		localContext:  defaultLocalContext,
		cache:         newLessonCache(),
		comprehension: initialComprehension,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Comprehension reports the current 0-10 comprehension estimate.
func (a *Agent) Comprehension() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.comprehension
}

// Translate renders text in the target language. English targets and any
// provider failure return the input unchanged; translation is best-effort
// and must never lose the content.
func (a *Agent) Translate(ctx context.Context, text, targetLanguage string) string {
	if text == "" || isEnglish(targetLanguage) {
		return text
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeTranslate)
	resp, err := a.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: translatePrompt(text, targetLanguage)}},
		MaxTokens: 1500,
	})
	if err != nil {
		return text
	}
	out := rawText(resp.Content)
	if out == "" {
		return text
	}
	return out
}

// CreateLesson generates (or returns a cached) lesson on the topic,
// localized to the requested language.
func (a *Agent) CreateLesson(ctx context.Context, topic, subject string, class int, language string) (*Lesson, error) {
	key := lessonKey{topic: topic, subject: subject, class: class}
	if cached, ok := a.cache.get(key); ok {
		return a.localizeLesson(ctx, cached, language), nil
	}

	snippets := a.retrieve(ctx, topic)

	genCtx := llm.WithPurpose(ctx, llm.PurposeLesson)
	resp, err := a.provider.Generate(genCtx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: lessonPrompt(topic, subject, class, a.localContext, snippets)}},
		MaxTokens:   1500,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("create lesson: %w", err)
	}

	lesson := &Lesson{
		Topic:      topic,
		Subject:    subject,
		Class:      class,
		Language:   "English",
		Content:    rawText(resp.Content),
		Difficulty: int(math.Round(a.Comprehension())),
		Sources:    snippets,
	}
	a.cache.put(key, lesson)

	return a.localizeLesson(ctx, lesson, language), nil
}

// Explain answers one doubt, localized to the requested language.
func (a *Agent) Explain(ctx context.Context, question, subject string, class int, language string) (*Explanation, error) {
	snippets := a.retrieve(ctx, question)

	genCtx := llm.WithPurpose(ctx, llm.PurposeDoubt)
	resp, err := a.provider.Generate(genCtx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: explainPrompt(question, subject, class, a.localContext, snippets)}},
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("explain doubt: %w", err)
	}

	text := rawText(resp.Content)
	if !isEnglish(language) {
		text = a.Translate(ctx, text, language)
	}
	return &Explanation{Text: text, Comprehension: a.Comprehension()}, nil
}

// GenerateProblems produces count practice problems on the topic. When the
// model cannot produce a valid set even after retries, a canned fallback
// set is returned so practice can continue offline.
func (a *Agent) GenerateProblems(ctx context.Context, topic, subject string, class, count int) []Problem {
	if count <= 0 {
		count = 3
	}

	genCtx := llm.WithPurpose(ctx, llm.PurposeProblems)
	resp, err := a.provider.Generate(genCtx, llm.Request{
		System:    systemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: problemsPrompt(topic, subject, class, count)}},
		Schema:    problemsSchema,
		MaxTokens: 1500,
	})
	if err != nil {
		return defaultProblems(topic, count)
	}

	var parsed struct {
		Problems []Problem `json:"problems"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil || len(parsed.Problems) == 0 {
		return defaultProblems(topic, count)
	}
	return parsed.Problems
}

// Assess grades the student's answer and folds the score into the
// comprehension estimate. A model failure yields a neutral assessment.
func (a *Agent) Assess(ctx context.Context, p Problem, studentAnswer string) *Assessment {
	genCtx := llm.WithPurpose(ctx, llm.PurposeAssessment)
	resp, err := a.provider.Generate(genCtx, llm.Request{
		System:    systemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: assessPrompt(p, studentAnswer)}},
		Schema:    assessmentSchema,
		MaxTokens: 600,
	})

	assessment := defaultAssessment()
	if err == nil {
		var parsed Assessment
		if jsonErr := json.Unmarshal(resp.Content, &parsed); jsonErr == nil {
			parsed.Score = clampScore(parsed.Score)
			assessment = &parsed
		}
	}

	a.mu.Lock()
	a.comprehension = comprehensionDecay*a.comprehension + (1-comprehensionDecay)*assessment.Score
	a.mu.Unlock()

	return assessment
}

func (a *Agent) localizeLesson(ctx context.Context, l *Lesson, language string) *Lesson {
	out := *l
	if !isEnglish(language) {
		out.Content = a.Translate(ctx, l.Content, language)
		out.Language = language
	}
	return &out
}

func (a *Agent) retrieve(ctx context.Context, topic string) []string {
	if a.retriever == nil {
		return nil
	}
	snippets, err := a.retriever.Retrieve(ctx, topic, 3)
	if err != nil {
		return nil
	}
	return snippets
}

func defaultProblems(topic string, count int) []Problem {
	out := make([]Problem, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, Problem{
			Question: fmt.Sprintf("Practice %d: explain %s in your own words and give one example from daily life.", i, topic),
			Answer:   "Any answer that states the main idea correctly with a sensible example.",
			Hint:     "Think about where you have seen this at home, on the farm, or in the market.",
		})
	}
	return out
}

func defaultAssessment() *Assessment {
	return &Assessment{
		Score:      initialComprehension,
		Understood: "Basic understanding shown.",
		NeedsWork:  "Practice more examples.",
		Feedback:   "Your answer has been noted. Keep practising and ask a doubt if something is unclear.",
		NextStep:   "Try a few similar problems.",
	}
}

func clampScore(s float64) float64 {
	return math.Min(10, math.Max(0, s))
}

func isEnglish(language string) bool {
	l := strings.ToLower(strings.TrimSpace(language))
	return l == "" || l == "english" || l == "en"
}

// rawText undoes the JSON wrapping on plain-text responses. Providers
// return text either bare or as a JSON string.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
