package errors

import "fmt"

// Domain reasons carried on battle errors
const (
	ReasonNoActiveSession   = "NO_ACTIVE_SESSION"
	ReasonInvalidTransition = "INVALID_TRANSITION"
	ReasonTurnInProgress    = "TURN_IN_PROGRESS"
	ReasonUnknownSpecies    = "UNKNOWN_SPECIES"
	ReasonUnknownZone       = "UNKNOWN_ZONE"
)

// Targets for errors.Is; they match any error with the same code and reason.
var (
	ErrNoActiveSession   = &Error{Code: CodeNotFound, Reason: ReasonNoActiveSession}
	ErrInvalidTransition = &Error{Code: CodeFailedPrecondition, Reason: ReasonInvalidTransition}
	ErrTurnInProgress    = &Error{Code: CodeAborted, Reason: ReasonTurnInProgress}
)

// NoActiveSession reports that the player has no battle to act on
func NoActiveSession(playerID string) *Error {
	return NotFound("no battle in progress").
		WithReason(ReasonNoActiveSession).
		WithMeta("player_id", playerID)
}

// InvalidTransition reports a request the battle's current state cannot accept
func InvalidTransition(format string, args ...interface{}) *Error {
	return FailedPrecondition(fmt.Sprintf(format, args...)).
		WithReason(ReasonInvalidTransition)
}

// TurnInProgress reports a second concurrent turn request for one player
func TurnInProgress(playerID string) *Error {
	return Aborted("turn already in progress").
		WithReason(ReasonTurnInProgress).
		WithMeta("player_id", playerID)
}
