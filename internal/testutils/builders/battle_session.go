// Package builders provides fluent builders for test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/testutils"
)

// BattleSessionBuilder builds BattleSession fixtures
type BattleSessionBuilder struct {
	session *entities.BattleSession
}

// NewBattleSessionBuilder starts from a fresh battling session between the
// standard test combatants, created at testutils.TestEpoch.
func NewBattleSessionBuilder() *BattleSessionBuilder {
	player := testutils.CreateTestPlayerCombatant()
	wild := testutils.CreateTestWildCombatant()
	return &BattleSessionBuilder{
		session: &entities.BattleSession{
			PlayerID:       testutils.TestPlayerID,
			Player:         player,
			Wild:           wild,
			PlayerHP:       player.MaxHP,
			WildHP:         wild.MaxHP,
			PlayerFirst:    player.Stats.Speed >= wild.Stats.Speed,
			Status:         entities.StatusBattling,
			Outcome:        entities.OutcomeOngoing,
			CreatedAt:      testutils.TestEpoch,
			LastActivityAt: testutils.TestEpoch,
		},
	}
}

// WithPlayerID sets the owning player
func (b *BattleSessionBuilder) WithPlayerID(id string) *BattleSessionBuilder {
	b.session.PlayerID = id
	return b
}

// WithHP sets both running HP values
func (b *BattleSessionBuilder) WithHP(player, wild int) *BattleSessionBuilder {
	b.session.PlayerHP = player
	b.session.WildHP = wild
	return b
}

// WithTurn sets the turn counter
func (b *BattleSessionBuilder) WithTurn(turn int) *BattleSessionBuilder {
	b.session.Turn = turn
	return b
}

// WithPlayerFirst overrides the first mover
func (b *BattleSessionBuilder) WithPlayerFirst(first bool) *BattleSessionBuilder {
	b.session.PlayerFirst = first
	return b
}

// WithStatus sets the lifecycle status
func (b *BattleSessionBuilder) WithStatus(status entities.SessionStatus) *BattleSessionBuilder {
	b.session.Status = status
	return b
}

// WithOutcome sets the battle outcome
func (b *BattleSessionBuilder) WithOutcome(outcome entities.BattleOutcome) *BattleSessionBuilder {
	b.session.Outcome = outcome
	return b
}

// WithLastActivity sets the last activity time
func (b *BattleSessionBuilder) WithLastActivity(at time.Time) *BattleSessionBuilder {
	b.session.LastActivityAt = at
	return b
}

// TimedOut flags the session as timed out at the given time
func (b *BattleSessionBuilder) TimedOut(at time.Time) *BattleSessionBuilder {
	b.session.Status = entities.StatusTimedOut
	b.session.TimedOutAt = &at
	return b
}

// Build returns a copy of the built session
func (b *BattleSessionBuilder) Build() *entities.BattleSession {
	return b.session.Clone()
}
