package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/minatgo/minatgo/internal/store"
)

// LoggingProvider records every call as an LLM request event.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
}

// WithLogging wraps p so each call is appended to events. name is the
// provider name stored with the event.
func WithLogging(p Provider, name string, events store.EventRepo) Provider {
	return &LoggingProvider{inner: p, provider: name, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, pr Prompt) (*Completion, error) {
	start := time.Now()
	c, err := l.inner.Generate(ctx, pr)

	ev := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.Model(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: describePrompt(pr),
	}
	if c != nil {
		ev.Model = c.Model
		ev.InputTokens = c.Usage.InputTokens
		ev.OutputTokens = c.Usage.OutputTokens
		ev.ResponseBody = string(c.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// Logging failures never fail the request.
	if logErr := l.events.AppendLLMRequest(ctx, ev); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}
	return c, err
}

func (l *LoggingProvider) Model() string { return l.inner.Model() }

func describePrompt(pr Prompt) string {
	var b strings.Builder
	if pr.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", pr.System)
	}
	fmt.Fprintf(&b, "[user]\n%s\n", pr.User)
	if pr.Schema != nil {
		if def, err := json.Marshal(pr.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "\n[schema: %s]\n%s\n", pr.Schema.Name, def)
		}
	}
	return b.String()
}
