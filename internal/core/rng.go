package core

import "math/rand/v2"

// Random is the source of randomness used for apple placement.
type Random interface {
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// MockRandom returns queued values from IntN, reduced modulo n, and 0 once
// the queue is drained.
type MockRandom struct {
	values []int
	next   int
}

// NewMockRandom returns a MockRandom that yields values in order.
func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{values: values}
}

// Queue appends values to the result queue.
func (m *MockRandom) Queue(values ...int) { m.values = append(m.values, values...) }

// IntN returns the next queued value.
func (m *MockRandom) IntN(n int) int {
	if m.next >= len(m.values) {
		return 0
	}
	v := m.values[m.next]
	m.next++
	return v % n
}
