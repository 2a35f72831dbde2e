// Package engine combines the battle mechanics behind one interface for the
// orchestrators: stat derivation, hidden values, turn and capture resolution.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/idlemon-api/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/idlemon-api/internal/engine/damage"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
)

// Engine provides game mechanics for battles
type Engine interface {
	// Combatant creation
	BuildCombatant(ctx context.Context, input *BuildCombatantInput) (*BuildCombatantOutput, error)
	GenerateHiddenValues(ctx context.Context, input *GenerateHiddenValuesInput) (*GenerateHiddenValuesOutput, error)

	// Battle resolution
	ResolveTurn(ctx context.Context, input *ResolveTurnInput) (*ResolveTurnOutput, error)
	ResolveCapture(ctx context.Context, input *ResolveCaptureInput) (*ResolveCaptureOutput, error)
}

// Dex is the reference data the engine reads
type Dex interface {
	damage.MoveBook
	Species(id string) (*entities.Species, error)
}
