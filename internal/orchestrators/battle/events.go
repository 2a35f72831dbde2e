package battle

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// EventTypeBattleTimedOut is published after the sweep flags a battle timed out.
// The event source is the battle session, identified by player id.
const EventTypeBattleTimedOut = "battle.timed_out"

const sessionEntityType = "battle_session"

// sessionRef implements core.Entity for a player's battle session
type sessionRef struct {
	playerID string
}

func (r *sessionRef) GetID() string {
	return r.playerID
}

func (r *sessionRef) GetType() string {
	return sessionEntityType
}

// NewTimedOutEvent builds the event published when a player's battle times out
func NewTimedOutEvent(playerID string) events.Event {
	return events.NewGameEvent(EventTypeBattleTimedOut, &sessionRef{playerID: playerID}, nil)
}

// TimedOutPlayer returns the player whose battle the event is about, or false
// when the event is not a battle timeout
func TimedOutPlayer(event events.Event) (string, bool) {
	if event == nil || event.Type() != EventTypeBattleTimedOut {
		return "", false
	}
	source := event.Source()
	if source == nil || source.GetType() != sessionEntityType {
		return "", false
	}
	return source.GetID(), true
}

// publishTimedOut notifies subscribers. The session is already saved, so a
// failed publish is logged and the sweep carries on.
func (o *orchestrator) publishTimedOut(ctx context.Context, playerID string) {
	if o.eventBus == nil {
		return
	}
	if err := o.eventBus.Publish(ctx, NewTimedOutEvent(playerID)); err != nil {
		slog.WarnContext(ctx, "Failed to publish battle timeout",
			"player_id", playerID,
			"error", err)
	}
}

var _ core.Entity = (*sessionRef)(nil)
