package hello

import (
	"context"
	"sync"
)

// MockService implements Service for handler tests. It returns a configurable greeting and
// counts calls.
type MockService struct {
	mu       sync.Mutex
	greeting string
	calls    int
}

// NewMockService creates a mock that answers with greeting.
func NewMockService(greeting string) *MockService {
	return &MockService{greeting: greeting}
}

func (m *MockService) GetHello(context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.greeting
}

// Calls reports how many times GetHello ran.
func (m *MockService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
