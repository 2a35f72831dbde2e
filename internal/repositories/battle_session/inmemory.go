package battlesession

import (
	"context"
	"sync"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
)

// InMemoryRepository implements Repository with a map
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.BattleSession
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.BattleSession),
	}
}

// Get retrieves the player's session
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.store[input.PlayerID]
	if !ok {
		return nil, errors.NotFoundf("battle session for player %s not found", input.PlayerID)
	}

	return &GetOutput{Session: session.Clone()}, nil
}

// Put creates or replaces the player's session
func (r *InMemoryRepository) Put(_ context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Session.PlayerID] = input.Session.Clone()
	return &PutOutput{}, nil
}

// Remove deletes and returns the player's session
func (r *InMemoryRepository) Remove(_ context.Context, input *RemoveInput) (*RemoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.store[input.PlayerID]
	if !ok {
		return nil, errors.NotFoundf("battle session for player %s not found", input.PlayerID)
	}
	delete(r.store, input.PlayerID)

	return &RemoveOutput{Session: session}, nil
}

// List returns every stored session
func (r *InMemoryRepository) List(_ context.Context, _ *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*entities.BattleSession, 0, len(r.store))
	for _, session := range r.store {
		sessions = append(sessions, session.Clone())
	}
	return &ListOutput{Sessions: sessions}, nil
}
