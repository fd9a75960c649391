package llm

import "context"

// Purposes label what a model call is for, so the request log can be
// filtered per feature.
const (
	PurposeTranslate  = "translate"
	PurposeLesson     = "lesson"
	PurposeDoubt      = "doubt"
	PurposeProblems   = "problems"
	PurposeAssessment = "assessment"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context for request logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label, "unknown" when absent.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
