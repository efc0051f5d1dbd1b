package suggest

import (
	"context"
	"sync"
)

// MockClient is a test implementation of the Client interface returning
// queued completions.
type MockClient struct {
	err       error
	responses []string
	calls     int
	mu        sync.Mutex
}

// NewMockClient creates a mock client that returns the given completions in
// order, repeating the last one once exhausted.
func NewMockClient(responses ...string) *MockClient {
	return &MockClient{responses: responses}
}

// FailWith makes every call return err.
func (m *MockClient) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Suggest returns the next queued completion.
func (m *MockClient) Suggest(_ context.Context, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.err != nil {
		return "", m.err
	}

	if len(m.responses) == 0 {
		return "", nil
	}

	idx := m.calls - 1
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	return m.responses[idx], nil
}

// Calls returns how many times Suggest was invoked.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
