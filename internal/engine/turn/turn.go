// Package turn resolves one turn of a battle session.
package turn

import (
	"fmt"

	"github.com/KirkDiggler/idlemon-api/internal/engine/damage"
	"github.com/KirkDiggler/idlemon-api/internal/engine/typechart"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
)

// Config configures a Resolver
type Config struct {
	Moves  damage.MoveBook
	Damage *damage.Resolver
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Moves == nil {
		vb.RequiredField("Moves")
	}
	if c.Damage == nil {
		vb.RequiredField("Damage")
	}
	return vb.Build()
}

// Resolver advances a session by one turn
type Resolver struct {
	moves  damage.MoveBook
	damage *damage.Resolver
}

// NewResolver creates a turn resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Resolver{moves: cfg.Moves, damage: cfg.Damage}, nil
}

// Resolve lets the side whose turn it is attack the other side, mutating
// session in place: the defender's HP, the turn counter and, once either
// side is down, the outcome.
//
// The winner check only looks at the wild side, so a simultaneous knockout
// is reported as a player win.
func (r *Resolver) Resolve(session *entities.BattleSession) (*entities.TurnOutcome, error) {
	if session == nil || session.Player == nil || session.Wild == nil {
		return nil, errors.InvalidArgument("session is missing a combatant")
	}
	if session.Outcome != entities.OutcomeOngoing {
		return nil, errors.InvalidTransition("battle already ended with %s", session.Outcome).
			WithMeta("player_id", session.PlayerID)
	}

	turn := session.Turn
	actor := session.ActingSide(turn)

	attacker, defender := session.Player, session.Wild
	defenderHP := &session.WildHP
	if actor == entities.SideWild {
		attacker, defender = session.Wild, session.Player
		defenderHP = &session.PlayerHP
	}

	selection := damage.SelectMove(r.moves.Pool(attacker), defender.Types)
	hit := r.damage.Resolve(damage.ResolveInput{
		Level:      attacker.Level,
		Attack:     attacker.Stats.BestAttack(),
		Defense:    defender.Stats.BestDefense(),
		Multiplier: selection.Multiplier,
		Power:      selection.Move.Power,
	})

	*defenderHP = max(*defenderHP-hit.Damage, 0)
	session.Turn++
	mustBeInBounds(session)

	ended := session.PlayerHP <= 0 || session.WildHP <= 0
	won := session.WildHP <= 0
	if ended {
		session.Outcome = entities.OutcomePlayerFaint
		if won {
			session.Outcome = entities.OutcomePlayerWin
		}
	}

	return &entities.TurnOutcome{
		Turn:          turn,
		Actor:         actor,
		AttackerName:  attacker.Name,
		DefenderName:  defender.Name,
		Damage:        hit.Damage,
		IsCritical:    hit.Critical,
		Effectiveness: typechart.Categorize(selection.Multiplier),
		PlayerHP:      session.PlayerHP,
		PlayerMaxHP:   session.Player.MaxHP,
		WildHP:        session.WildHP,
		WildMaxHP:     session.Wild.MaxHP,
		Move:          selection.Move.Name,
		MoveType:      selection.Move.Type,
		BattleEnded:   ended,
		PlayerWon:     won,
	}, nil
}

func mustBeInBounds(session *entities.BattleSession) {
	if session.PlayerHP < 0 || session.PlayerHP > session.Player.MaxHP {
		panic(fmt.Sprintf("turn: player hp %d outside [0, %d]", session.PlayerHP, session.Player.MaxHP))
	}
	if session.WildHP < 0 || session.WildHP > session.Wild.MaxHP {
		panic(fmt.Sprintf("turn: wild hp %d outside [0, %d]", session.WildHP, session.Wild.MaxHP))
	}
}
