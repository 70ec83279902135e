// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"strings"
	"sync"
)

// mockModel is reported as Response.Model by MockProvider.
const mockModel = "mock"

// MockResponse is one scripted reply. A non-nil Err fails the call.
type MockResponse struct {
	Content string
	Err     error
}

// MockProvider replays scripted replies in order and repeats the last one
// once the script runs out. With no script every reply is empty. Token usage
// is the word count of the prompt and of the reply.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	next   int
	calls  []Request
}

var _ Provider = (*MockProvider)(nil)

// NewMockProvider returns a provider that replies with script.
func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

// Complete records req and returns the next scripted reply.
func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.calls = append(m.calls, req)
	reply := m.advance()
	m.mu.Unlock()

	if reply.Err != nil {
		return nil, reply.Err
	}
	return &Response{
		Content: reply.Content,
		Model:   mockModel,
		Usage: Usage{
			InputTokens:  len(strings.Fields(req.System)) + len(strings.Fields(req.Prompt)),
			OutputTokens: len(strings.Fields(reply.Content)),
		},
	}, nil
}

// advance returns the current reply and moves on. Callers hold m.mu.
func (m *MockProvider) advance() MockResponse {
	if len(m.script) == 0 {
		return MockResponse{}
	}
	r := m.script[m.next]
	if m.next < len(m.script)-1 {
		m.next++
	}
	return r
}

// Calls returns the requests received so far.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}
