// Package catalog holds the static, versioned bank of test questions. The
// bank is immutable at runtime; question IDs are stable across versions so
// in-flight sessions survive catalog updates.
package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// FallbackLanguage is the language code every question must carry text for.
const FallbackLanguage = "en"

// Question is one multiple-choice catalog entry. Text is keyed by language
// code; the English entry is mandatory and serves as the fallback.
type Question struct {
	ID      string
	Text    map[string]string
	Options []string
	Correct int
	Marks   int
}

// TextIn returns the question text for a language code, falling back to
// English when the language has no variant.
func (q Question) TextIn(lang string) string {
	if s, ok := q.Text[lang]; ok && s != "" {
		return s
	}
	return q.Text[FallbackLanguage]
}

// Catalog maps subject → level → ordered question list.
type Catalog struct {
	banks map[string]map[string][]Question
}

// New builds a catalog from a subject → level → questions mapping.
func New(banks map[string]map[string][]Question) *Catalog {
	return &Catalog{banks: banks}
}

// Default returns the built-in question bank.
func Default() *Catalog {
	return New(questionBank)
}

// NormalizeLevel maps shorthand level input to the catalog's level tags:
// "1" and "level 1" both become "Level 1". Anything else passes through
// trimmed, so unknown input still fails the lookup with its original text.
func NormalizeLevel(level string) string {
	l := strings.TrimSpace(level)
	if n, err := strconv.Atoi(l); err == nil {
		return fmt.Sprintf("Level %d", n)
	}
	if rest, ok := strings.CutPrefix(strings.ToLower(l), "level "); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
			return fmt.Sprintf("Level %d", n)
		}
	}
	return l
}

// Questions returns the ordered question list for a subject/level pair, or
// nil when the pair is not in the catalog. The level may be shorthand; see
// NormalizeLevel.
func (c *Catalog) Questions(subject, level string) []Question {
	levels, ok := c.banks[subject]
	if !ok {
		return nil
	}
	qs := levels[NormalizeLevel(level)]
	if len(qs) == 0 {
		return nil
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Subjects returns the subjects in the catalog, sorted.
func (c *Catalog) Subjects() []string {
	out := make([]string, 0, len(c.banks))
	for s := range c.banks {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Levels returns the level tags available for a subject, sorted.
func (c *Catalog) Levels(subject string) []string {
	levels, ok := c.banks[subject]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(levels))
	for l := range levels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// TotalMarks sums the mark values for a subject/level pair.
func (c *Catalog) TotalMarks(subject, level string) int {
	total := 0
	for _, q := range c.Questions(subject, level) {
		total += q.Marks
	}
	return total
}
