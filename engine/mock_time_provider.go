package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a hand-steered clock for tests: only Advance moves
// it. Lock-free so clock reads inside the tick under test never contend
type MockTimeProvider struct {
	base   time.Time
	offset atomic.Int64 // Nanoseconds since base
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: start}
}

// Now returns the mocked instant
func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.offset.Load()))
}

// Advance moves the clock forward by d (or back, for negative d)
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}
