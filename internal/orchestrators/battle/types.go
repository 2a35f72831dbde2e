package battle

import (
	"github.com/KirkDiggler/idlemon-api/internal/entities"
)

// StartBattleInput contains the two combatants for a new battle
type StartBattleInput struct {
	PlayerID string
	Player   *entities.Combatant
	Wild     *entities.Combatant
}

// StartBattleOutput contains the new session
type StartBattleOutput struct {
	Session *entities.BattleSession
	// Replaced is true when a previous session for the player was discarded
	Replaced bool
}

// GetBattleInput identifies the player
type GetBattleInput struct {
	PlayerID string
}

// GetBattleOutput contains the session, including one flagged timed out
type GetBattleOutput struct {
	Session *entities.BattleSession
}

// TouchInput identifies the player
type TouchInput struct {
	PlayerID string
}

// TouchOutput reports whether a playable session was refreshed
type TouchOutput struct {
	Touched bool
}

// UpdateBattleInput carries the fields to merge. Nil fields are left alone.
type UpdateBattleInput struct {
	PlayerID string
	PlayerHP *int
	WildHP   *int
	Turn     *int
	Status   *entities.SessionStatus
}

// UpdateBattleOutput contains the merged session
type UpdateBattleOutput struct {
	Session *entities.BattleSession
}

// EndBattleInput identifies the player
type EndBattleInput struct {
	PlayerID string
}

// EndBattleOutput contains the removed session
type EndBattleOutput struct {
	Session *entities.BattleSession
}

// NextTurnInput identifies the player
type NextTurnInput struct {
	PlayerID string
}

// NextTurnOutput contains the turn record and the session after it
type NextTurnOutput struct {
	Outcome *entities.TurnOutcome
	Session *entities.BattleSession
}

// AttemptCaptureInput identifies the player and the ball thrown
type AttemptCaptureInput struct {
	PlayerID string
	Ball     entities.Ball
}

// AttemptCaptureOutput contains the capture result and the session after it
type AttemptCaptureOutput struct {
	Outcome *entities.CaptureOutcome
	Session *entities.BattleSession
}

// SweepIdleInput is empty; the sweep covers every stored session
type SweepIdleInput struct{}

// SweepIdleOutput counts the sessions flagged and those skipped while busy
type SweepIdleOutput struct {
	Flagged int
	Skipped int
}

// EvictStaleInput is empty; eviction covers every stored session
type EvictStaleInput struct{}

// EvictStaleOutput counts the sessions removed
type EvictStaleOutput struct {
	Evicted int
	Skipped int
}
