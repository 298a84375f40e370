package mockrng

import (
	"sync"
)

// ManualMockSource implements rng.Source for testing with
// predetermined values. When the queue runs dry it returns 0 and
// records the overrun for the test to assert on.
type ManualMockSource struct {
	mu       sync.Mutex
	values   []float64
	index    int
	overruns int
}

// NewManualMockSource creates a new mock random source
func NewManualMockSource() *ManualMockSource {
	return &ManualMockSource{
		values: []float64{},
	}
}

// SetNextValue queues the next value to return
func (m *ManualMockSource) SetNextValue(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = append(m.values, v)
}

// SetValues replaces the queued values and resets the cursor
func (m *ManualMockSource) SetValues(values []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = values
	m.index = 0
	m.overruns = 0
}

// Reset clears all queued values
func (m *ManualMockSource) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = []float64{}
	m.index = 0
	m.overruns = 0
}

// Overruns returns how many times Float64 was called past the queue
func (m *ManualMockSource) Overruns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overruns
}

// Float64 implements rng.Source.Float64
func (m *ManualMockSource) Float64() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.index >= len(m.values) {
		m.overruns++
		return 0
	}

	v := m.values[m.index]
	m.index++
	return v
}
