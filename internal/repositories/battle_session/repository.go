// Package battlesession stores one battle session per player
package battlesession

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesessionmock github.com/KirkDiggler/idlemon-api/internal/repositories/battle_session Repository

import (
	"context"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
)

// Repository persists battle sessions keyed by player ID. Implementations
// hand out copies; mutating a returned session never changes stored state.
type Repository interface {
	// Get retrieves the player's session
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.NotFound if the player has no session
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Put creates or replaces the player's session
	// Returns errors.InvalidArgument for a nil session or empty player ID
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)

	// Remove deletes and returns the player's session
	// Returns errors.NotFound if the player has no session
	// Returns errors.Internal for storage failures
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)

	// List returns every stored session in no particular order
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting a session
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *entities.BattleSession
}

// PutInput defines the input for storing a session
type PutInput struct {
	Session *entities.BattleSession
}

// PutOutput defines the output for storing a session
type PutOutput struct{}

// RemoveInput defines the input for removing a session
type RemoveInput struct {
	PlayerID string
}

// RemoveOutput contains the removed session
type RemoveOutput struct {
	Session *entities.BattleSession
}

// ListInput defines the input for listing sessions
type ListInput struct{}

// ListOutput contains every stored session
type ListOutput struct {
	Sessions []*entities.BattleSession
}

const (
	errInputNil      = "input is required"
	errSessionNil    = "session is required"
	errPlayerIDEmpty = "player ID is required"
)
