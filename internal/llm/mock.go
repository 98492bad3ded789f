package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is one canned answer for MockProvider.
type MockReply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays canned replies in order and records prompts.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	Prompts []Prompt
}

func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

// Generate returns the next reply, or ErrProviderUnavailable when none are
// left. Replies are schema-checked like a real provider.
func (m *MockProvider) Generate(_ context.Context, pr Prompt) (*Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, pr)
	if len(m.replies) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	r := m.replies[0]
	m.replies = m.replies[1:]
	if r.Err != nil {
		return nil, r.Err
	}
	if err := checkSchema(pr, r.Content); err != nil {
		return nil, err
	}
	return &Completion{Content: r.Content, Usage: r.Usage, Model: "mock", Finish: finishEnd}, nil
}

func (m *MockProvider) Model() string { return "mock" }

// Add queues another reply.
func (m *MockProvider) Add(r MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, r)
}

// Calls returns the number of Generate calls.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
