package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shikshamitra/shikshamitra/internal/store"
)

// RequestLog receives one record per model call. *store.Store satisfies it.
type RequestLog interface {
	AppendLLMRequest(ctx context.Context, l store.LLMRequestLog) error
}

// LoggingProvider records every model call in the request log.
type LoggingProvider struct {
	inner    Provider
	provider string
	log      RequestLog
}

// WithLogging wraps a Provider so every call lands in the request log.
// The provider name is the configured provider ("gemini", "mock", ...).
func WithLogging(p Provider, provider string, log RequestLog) Provider {
	return &LoggingProvider{inner: p, provider: provider, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := store.LLMRequestLog{
		Provider:   l.provider,
		Model:      l.inner.ModelID(),
		Purpose:    PurposeFrom(ctx),
		Duration:   time.Since(start),
		Success:    err == nil,
		RequestDoc: serializeRequest(req),
	}
	if resp != nil {
		rec.Model = resp.Model
	}
	if err != nil {
		rec.Error = err.Error()
	}

	// A logging failure must not fail the call itself.
	if logErr := l.log.AppendLLMRequest(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log model request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest renders the request readably for the log.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.Write(def)
			b.WriteString("\n")
		}
	}

	return b.String()
}
