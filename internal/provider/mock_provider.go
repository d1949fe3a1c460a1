package provider

import (
	"context"
	"sync"

	"github.com/notifyhub/apprise-node/internal/domain"
)

// Call records one Notify invocation seen by MockProvider.
type Call struct {
	Credential domain.Credential
	Params     domain.Params
}

// MockProvider is a hand-written Provider used in unit tests.
// Set Errs to make the n-th call (0-based) fail with the given error.
type MockProvider struct {
	mu    sync.Mutex
	calls []Call

	Errs map[int]error
}

func NewMockProvider() *MockProvider {
	return &MockProvider{Errs: make(map[int]error)}
}

func (m *MockProvider) Notify(_ context.Context, cred domain.Credential, p domain.Params) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.calls)
	m.calls = append(m.calls, Call{Credential: cred, Params: p})
	return m.Errs[n]
}

// Calls returns a copy of the recorded calls in order.
func (m *MockProvider) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

var _ Provider = (*MockProvider)(nil)
