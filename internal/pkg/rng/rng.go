// Package rng provides the randomness sources used by the battle engine.
// Every random decision in the engine goes through a Source so tests can
// script exact branches.
package rng

import (
	"math/rand/v2"
	"sync"
)

// Source is the randomness provider for the engine.
//
// Implementations must be safe for concurrent use.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64

	// IntN returns a uniform value in [0, n). n must be positive.
	IntN(n int) int
}

type pcgSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewPCG returns a seeded, concurrency-safe PCG source
func NewPCG(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandom returns a PCG source seeded from the runtime generator
func NewRandom() Source {
	return NewPCG(rand.Uint64())
}

func (p *pcgSource) Float64() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.r.Float64()
}

func (p *pcgSource) IntN(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.r.IntN(n)
}
