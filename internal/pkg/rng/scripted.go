package rng

import (
	"fmt"
	"sync"
)

// Sequence is a scripted Source. Float64 and IntN pop from independent
// queues and panic once a queue is exhausted so a test never silently
// reads values it did not plan for.
type Sequence struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
}

// NewSequence creates an empty scripted source
func NewSequence() *Sequence {
	return &Sequence{}
}

// WithFloats queues values returned by Float64
func (s *Sequence) WithFloats(values ...float64) *Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floats = append(s.floats, values...)
	return s
}

// WithInts queues values returned by IntN
func (s *Sequence) WithInts(values ...int) *Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = append(s.ints, values...)
	return s
}

// Float64 returns the next scripted float
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		panic("rng: scripted floats exhausted")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// IntN returns the next scripted int, which must lie in [0, n)
func (s *Sequence) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		panic("rng: scripted ints exhausted")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("rng: scripted int %d outside [0, %d)", v, n))
	}
	return v
}

// Remaining reports how many scripted floats and ints are unread
func (s *Sequence) Remaining() (floats, ints int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.floats), len(s.ints)
}

// ScriptedRoller is a toolkit dice.Roller that returns queued results
type ScriptedRoller struct {
	mu    sync.Mutex
	rolls []int
}

// NewScriptedRoller creates a roller that returns rolls in order
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Roll returns the next queued result
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rolls) == 0 {
		return 0, fmt.Errorf("rng: scripted rolls exhausted")
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	if v < 1 || v > size {
		return 0, fmt.Errorf("rng: scripted roll %d outside d%d", v, size)
	}
	return v, nil
}

// RollN returns the next count queued results
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Remaining reports how many queued rolls are unread
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rolls)
}
