// Package insight asks a language model for a short narrative about a quiz
// result.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/minatgo/minatgo/internal/llm"
	"github.com/minatgo/minatgo/internal/riasec"
)

// Purpose labels insight requests in the LLM event log.
const Purpose = "insight"

// Insight is the model's reading of a result.
type Insight struct {
	Summary   string   `json:"summary"`
	Strengths []string `json:"strengths"`
	NextSteps []string `json:"next_steps"`
}

// Text renders the insight as plain paragraphs.
func (in *Insight) Text() string {
	var b strings.Builder
	b.WriteString(in.Summary)
	if len(in.Strengths) > 0 {
		b.WriteString("\n\nKekuatan:\n")
		for _, s := range in.Strengths {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	if len(in.NextSteps) > 0 {
		b.WriteString("\nLangkah berikutnya:\n")
		for _, s := range in.NextSteps {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Service generates insights. A nil *Service is valid and reports the
// feature as unavailable.
type Service struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewService wraps provider. timeout bounds each request, retries included.
func NewService(provider llm.Provider, timeout time.Duration) *Service {
	return &Service{provider: provider, timeout: timeout}
}

// Available reports whether a provider is configured.
func (s *Service) Available() bool {
	return s != nil && s.provider != nil
}

// Explain asks for an insight on res. Results with no answers are rejected.
func (s *Service) Explain(ctx context.Context, res riasec.Result) (*Insight, error) {
	if !s.Available() {
		return nil, llm.ErrDisabled
	}
	if res.Answered == 0 {
		return nil, fmt.Errorf("explain result: no answers")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	c, err := s.provider.Generate(ctx, llm.Prompt{
		System:      systemPrompt,
		User:        buildUserPrompt(res),
		Schema:      Schema,
		MaxTokens:   600,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("generate insight: %w", err)
	}

	var out Insight
	if err := json.Unmarshal(c.Content, &out); err != nil {
		return nil, fmt.Errorf("decode insight: %w", err)
	}
	return &out, nil
}
