package engine

import (
	"github.com/KirkDiggler/idlemon-api/internal/engine/ivgen"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
)

// BuildCombatantInput describes a creature to bring into battle
type BuildCombatantInput struct {
	SpeciesID string
	Level     int
	// HiddenValues are applied to the derived stats when set
	HiddenValues *entities.HiddenValues
	Shiny        bool
	// Name overrides the species name
	Name string
}

// BuildCombatantOutput contains the combatant at full HP
type BuildCombatantOutput struct {
	Combatant *entities.Combatant
}

// GenerateHiddenValuesInput contains the generation options
type GenerateHiddenValuesInput struct {
	Options ivgen.Options
}

// GenerateHiddenValuesOutput contains the generated values and their grade
type GenerateHiddenValuesOutput struct {
	HiddenValues entities.HiddenValues
	Grade        entities.Grade
}

// ResolveTurnInput contains the session to advance. The session is updated
// in place.
type ResolveTurnInput struct {
	Session *entities.BattleSession
}

// ResolveTurnOutput contains the turn record
type ResolveTurnOutput struct {
	Outcome *entities.TurnOutcome
}

// ResolveCaptureInput contains the session and the ball thrown
type ResolveCaptureInput struct {
	Session *entities.BattleSession
	Ball    entities.Ball
}

// ResolveCaptureOutput contains the capture result. Creature is set only
// when the wild combatant was caught.
type ResolveCaptureOutput struct {
	Outcome *entities.CaptureOutcome
}
