package turn_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/idlemon-api/internal/engine/damage"
	damagemock "github.com/KirkDiggler/idlemon-api/internal/engine/damage/mock"
	"github.com/KirkDiggler/idlemon-api/internal/engine/turn"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/rng"
)

var (
	ember    = entities.Move{ID: "ember", Name: "Ember", Type: entities.ElementFire, Power: 40}
	vineWhip = entities.Move{ID: "vine-whip", Name: "Vine Whip", Type: entities.ElementGrass, Power: 45}
)

type TurnTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockBook *damagemock.MockMoveBook
	source   *rng.Sequence
	resolver *turn.Resolver
}

func TestTurnTestSuite(t *testing.T) {
	suite.Run(t, new(TurnTestSuite))
}

func (s *TurnTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBook = damagemock.NewMockMoveBook(s.ctrl)
	s.source = rng.NewSequence()

	dmg, err := damage.NewResolver(&damage.Config{Source: s.source, CritChance: damage.DefaultCritChance})
	s.Require().NoError(err)

	s.resolver, err = turn.NewResolver(&turn.Config{Moves: s.mockBook, Damage: dmg})
	s.Require().NoError(err)
}

func (s *TurnTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TurnTestSuite) newSession(playerFirst bool) *entities.BattleSession {
	player := &entities.Combatant{
		SpeciesID: "charmander",
		Name:      "Charmander",
		Level:     50,
		Types:     []entities.Element{entities.ElementFire},
		Stats:     entities.Stats{HP: 120, Attack: 100, Defense: 50, SpecialAttack: 80, SpecialDefense: 40, Speed: 80},
		HP:        120,
		MaxHP:     120,
	}
	wild := &entities.Combatant{
		SpeciesID: "bulbasaur",
		Name:      "Bulbasaur",
		Level:     50,
		Types:     []entities.Element{entities.ElementGrass, entities.ElementPoison},
		Stats:     entities.Stats{HP: 130, Attack: 60, Defense: 50, SpecialAttack: 70, SpecialDefense: 45, Speed: 120},
		HP:        130,
		MaxHP:     130,
	}
	return &entities.BattleSession{
		PlayerID:    "player-1",
		Player:      player,
		Wild:        wild,
		PlayerHP:    player.MaxHP,
		WildHP:      wild.MaxHP,
		PlayerFirst: playerFirst,
		Status:      entities.StatusBattling,
		Outcome:     entities.OutcomeOngoing,
	}
}

func (s *TurnTestSuite) TestPlayerAttackScenarioA() {
	session := s.newSession(true)
	s.mockBook.EXPECT().Pool(session.Player).Return([]entities.Move{ember})
	s.source.WithFloats(0.9)

	got, err := s.resolver.Resolve(session)
	s.Require().NoError(err)

	// L50, atk 100 vs def 50, x2 fire on grass/poison, power 40
	s.Equal(entities.SidePlayer, got.Actor)
	s.Equal(0, got.Turn)
	s.Equal(74, got.Damage)
	s.False(got.IsCritical)
	s.Equal(entities.EffectivenessSuper, got.Effectiveness)
	s.Equal("Ember", got.Move)
	s.Equal(entities.ElementFire, got.MoveType)
	s.Equal("Charmander", got.AttackerName)
	s.Equal("Bulbasaur", got.DefenderName)
	s.Equal(56, got.WildHP)
	s.Equal(130, got.WildMaxHP)
	s.Equal(120, got.PlayerHP, "attacker hp is unchanged")
	s.False(got.BattleEnded)
	s.False(got.PlayerWon)

	s.Equal(1, session.Turn)
	s.Equal(56, session.WildHP)
	s.Equal(entities.OutcomeOngoing, session.Outcome)
}

func (s *TurnTestSuite) TestWildActsFirstWhenSlowerPlayer() {
	session := s.newSession(false)
	s.mockBook.EXPECT().Pool(session.Wild).Return([]entities.Move{vineWhip})
	s.source.WithFloats(0.9)

	got, err := s.resolver.Resolve(session)
	s.Require().NoError(err)

	s.Equal(entities.SideWild, got.Actor)
	s.Equal(entities.EffectivenessNotVery, got.Effectiveness)
	s.Equal(session.WildHP, got.WildHP)
	s.Less(got.PlayerHP, 120)
	s.Equal(120-got.Damage, got.PlayerHP)
}

func (s *TurnTestSuite) TestKnockoutClampsToZero() {
	session := s.newSession(true)
	session.WildHP = 1
	s.mockBook.EXPECT().Pool(session.Player).Return([]entities.Move{ember})
	s.source.WithFloats(0.9)

	got, err := s.resolver.Resolve(session)
	s.Require().NoError(err)

	s.Equal(0, got.WildHP)
	s.Equal(0, session.WildHP)
	s.True(got.BattleEnded)
	s.True(got.PlayerWon)
	s.Equal(entities.OutcomePlayerWin, session.Outcome)
}

func (s *TurnTestSuite) TestPlayerFaints() {
	session := s.newSession(false)
	session.PlayerHP = 3
	s.mockBook.EXPECT().Pool(session.Wild).Return([]entities.Move{vineWhip})
	s.source.WithFloats(0.9)

	got, err := s.resolver.Resolve(session)
	s.Require().NoError(err)

	s.Equal(0, got.PlayerHP)
	s.True(got.BattleEnded)
	s.False(got.PlayerWon)
	s.Equal(entities.OutcomePlayerFaint, session.Outcome)
}

func (s *TurnTestSuite) TestSimultaneousKnockoutReportsWin() {
	session := s.newSession(true)
	session.PlayerHP = 0
	session.WildHP = 1
	s.mockBook.EXPECT().Pool(session.Player).Return([]entities.Move{ember})
	s.source.WithFloats(0.9)

	got, err := s.resolver.Resolve(session)
	s.Require().NoError(err)

	s.Equal(0, got.PlayerHP)
	s.Equal(0, got.WildHP)
	s.True(got.BattleEnded)
	s.True(got.PlayerWon)
	s.Equal(entities.OutcomePlayerWin, session.Outcome)
}

func (s *TurnTestSuite) TestEndedBattleRejectsTurn() {
	for _, outcome := range []entities.BattleOutcome{entities.OutcomePlayerWin, entities.OutcomePlayerFaint} {
		s.Run(string(outcome), func() {
			session := s.newSession(true)
			session.Outcome = outcome

			got, err := s.resolver.Resolve(session)
			s.Nil(got)
			s.True(errors.Is(err, errors.ErrInvalidTransition))
			s.Equal(0, session.Turn, "session left untouched")
		})
	}
}

func (s *TurnTestSuite) TestMissingCombatant() {
	session := s.newSession(true)
	session.Wild = nil

	_, err := s.resolver.Resolve(session)
	s.True(errors.IsInvalidArgument(err))
}

func (s *TurnTestSuite) TestActorsAlternateAndHPStaysInBounds() {
	source := rng.NewPCG(11)
	dmg, err := damage.NewResolver(&damage.Config{Source: source, CritChance: damage.DefaultCritChance})
	s.Require().NoError(err)

	s.mockBook.EXPECT().Pool(gomock.Any()).DoAndReturn(func(c *entities.Combatant) []entities.Move {
		if c.Types[0] == entities.ElementFire {
			return []entities.Move{ember}
		}
		return []entities.Move{vineWhip}
	}).AnyTimes()

	resolver, err := turn.NewResolver(&turn.Config{Moves: s.mockBook, Damage: dmg})
	s.Require().NoError(err)

	for _, playerFirst := range []bool{true, false} {
		session := s.newSession(playerFirst)
		var last entities.Side
		for i := 0; i < 100; i++ {
			got, err := resolver.Resolve(session)
			s.Require().NoError(err)

			s.NotEqual(last, got.Actor, "same side acted twice in a row")
			last = got.Actor
			if i == 0 && playerFirst {
				s.Equal(entities.SidePlayer, got.Actor)
			}

			s.GreaterOrEqual(session.PlayerHP, 0)
			s.LessOrEqual(session.PlayerHP, session.Player.MaxHP)
			s.GreaterOrEqual(session.WildHP, 0)
			s.LessOrEqual(session.WildHP, session.Wild.MaxHP)

			if got.BattleEnded {
				break
			}
		}
		s.NotEqual(entities.OutcomeOngoing, session.Outcome)
	}
}

func (s *TurnTestSuite) TestNewResolverValidation() {
	_, err := turn.NewResolver(&turn.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = turn.NewResolver(nil)
	s.True(errors.IsInvalidArgument(err))
}
