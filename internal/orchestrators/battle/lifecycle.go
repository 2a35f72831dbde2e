package battle

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
)

// Lifecycle events
const (
	EventWildFainted   = "wild_fainted"
	EventPlayerFainted = "player_fainted"
	EventThrow         = "throw"
	EventCaught        = "caught"
	EventBrokeFree     = "broke_free"
	EventTimeout       = "timeout"
)

var (
	battling = string(entities.StatusBattling)
	catching = string(entities.StatusCatching)
	complete = string(entities.StatusComplete)
	timedOut = string(entities.StatusTimedOut)
)

var lifecycleEvents = fsm.Events{
	{Name: EventWildFainted, Src: []string{battling}, Dst: complete},
	{Name: EventPlayerFainted, Src: []string{battling}, Dst: complete},
	{Name: EventThrow, Src: []string{battling}, Dst: catching},
	{Name: EventCaught, Src: []string{catching}, Dst: complete},
	{Name: EventBrokeFree, Src: []string{catching}, Dst: battling},
	{Name: EventTimeout, Src: []string{battling, catching}, Dst: timedOut},
}

// transition fires event against the session's current status and stores
// the resulting status on the session.
func transition(ctx context.Context, session *entities.BattleSession, event string) error {
	machine := fsm.NewFSM(string(session.Status), lifecycleEvents, fsm.Callbacks{
		"enter_state": func(ctx context.Context, e *fsm.Event) {
			slog.DebugContext(ctx, "Battle status changed",
				"player_id", session.PlayerID,
				"event", e.Event,
				"from", e.Src,
				"to", e.Dst)
		},
	})

	if err := machine.Event(ctx, event); err != nil {
		return errors.InvalidTransition("cannot %s a battle that is %s", event, session.Status).
			WithMeta("player_id", session.PlayerID).
			WithMeta("status", string(session.Status))
	}

	session.Status = entities.SessionStatus(machine.Current())
	return nil
}

// reachable reports whether one lifecycle event leads from one status to
// the other
func reachable(from, to entities.SessionStatus) bool {
	if from == to {
		return true
	}
	for _, e := range lifecycleEvents {
		if e.Dst != string(to) {
			continue
		}
		for _, src := range e.Src {
			if src == string(from) {
				return true
			}
		}
	}
	return false
}
