package battle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/idlemon-api/internal/engine"
	enginemock "github.com/KirkDiggler/idlemon-api/internal/engine/mock"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/clock"
	battlesession "github.com/KirkDiggler/idlemon-api/internal/repositories/battle_session"
	battlesessionmock "github.com/KirkDiggler/idlemon-api/internal/repositories/battle_session/mock"
	"github.com/KirkDiggler/idlemon-api/internal/testutils"
	"github.com/KirkDiggler/idlemon-api/internal/testutils/builders"
)

// StoreFailureTestSuite covers how the service surfaces session store outages
type StoreFailureTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	ctx          context.Context
	clock        *clock.Manual
	mockRepo     *battlesessionmock.MockRepository
	mockEngine   *enginemock.MockEngine
	orchestrator battle.Service
	storeDown    error
}

func TestStoreFailureTestSuite(t *testing.T) {
	suite.Run(t, new(StoreFailureTestSuite))
}

func (s *StoreFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.clock = clock.NewManual(testutils.TestEpoch)
	s.mockRepo = battlesessionmock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.storeDown = errors.Unavailable("redis down")

	var err error
	s.orchestrator, err = battle.NewOrchestrator(&battle.Config{
		Repository: s.mockRepo,
		Engine:     s.mockEngine,
		Clock:      s.clock,
	})
	s.Require().NoError(err)
}

func (s *StoreFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StoreFailureTestSuite) TestStartBattleSaveFails() {
	s.mockRepo.EXPECT().
		Remove(s.ctx, &battlesession.RemoveInput{PlayerID: testutils.TestPlayerID}).
		Return(nil, errors.NotFound("no session"))
	s.mockRepo.EXPECT().
		Put(s.ctx, gomock.Any()).
		Return(nil, s.storeDown)

	_, err := s.orchestrator.StartBattle(s.ctx, &battle.StartBattleInput{
		PlayerID: testutils.TestPlayerID,
		Player:   testutils.CreateTestPlayerCombatant(),
		Wild:     testutils.CreateTestWildCombatant(),
	})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *StoreFailureTestSuite) TestStartBattleDiscardFails() {
	s.mockRepo.EXPECT().
		Remove(s.ctx, gomock.Any()).
		Return(nil, s.storeDown)

	_, err := s.orchestrator.StartBattle(s.ctx, &battle.StartBattleInput{
		PlayerID: testutils.TestPlayerID,
		Player:   testutils.CreateTestPlayerCombatant(),
		Wild:     testutils.CreateTestWildCombatant(),
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to discard previous battle")
}

func (s *StoreFailureTestSuite) TestGetBattleOutageIsNotMissing() {
	s.mockRepo.EXPECT().
		Get(s.ctx, &battlesession.GetInput{PlayerID: testutils.TestPlayerID}).
		Return(nil, s.storeDown)

	_, err := s.orchestrator.GetBattle(s.ctx, &battle.GetBattleInput{PlayerID: testutils.TestPlayerID})
	s.Require().Error(err)
	s.False(errors.Is(err, errors.ErrNoActiveSession))
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *StoreFailureTestSuite) TestNextTurnSaveFails() {
	session := builders.NewBattleSessionBuilder().Build()
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&battlesession.GetOutput{Session: session}, nil)
	s.mockEngine.EXPECT().
		ResolveTurn(s.ctx, gomock.Any()).
		Return(&engine.ResolveTurnOutput{Outcome: &entities.TurnOutcome{Actor: entities.SideWild, Damage: 10}}, nil)
	s.mockRepo.EXPECT().
		Put(s.ctx, gomock.Any()).
		Return(nil, s.storeDown)

	_, err := s.orchestrator.NextTurn(s.ctx, &battle.NextTurnInput{PlayerID: testutils.TestPlayerID})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))

	// the lock is released even though the save failed
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("gone"))
	_, err = s.orchestrator.NextTurn(s.ctx, &battle.NextTurnInput{PlayerID: testutils.TestPlayerID})
	s.True(errors.Is(err, errors.ErrNoActiveSession))
}

func (s *StoreFailureTestSuite) TestSweepIdle() {
	s.Run("list fails", func() {
		s.mockRepo.EXPECT().
			List(s.ctx, gomock.Any()).
			Return(nil, s.storeDown)

		_, err := s.orchestrator.SweepIdle(s.ctx, &battle.SweepIdleInput{})
		s.Require().Error(err)
		s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	})

	s.Run("one reload fails", func() {
		idle := builders.NewBattleSessionBuilder().Build()
		other := builders.NewBattleSessionBuilder().WithPlayerID("player-2").Build()
		s.clock.Advance(time.Minute)

		s.mockRepo.EXPECT().
			List(s.ctx, gomock.Any()).
			Return(&battlesession.ListOutput{Sessions: []*entities.BattleSession{idle, other}}, nil)
		s.mockRepo.EXPECT().
			Get(s.ctx, &battlesession.GetInput{PlayerID: testutils.TestPlayerID}).
			Return(nil, s.storeDown)
		s.mockRepo.EXPECT().
			Get(s.ctx, &battlesession.GetInput{PlayerID: "player-2"}).
			Return(&battlesession.GetOutput{Session: other}, nil)
		s.mockRepo.EXPECT().
			Put(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *battlesession.PutInput) (*battlesession.PutOutput, error) {
				s.Equal("player-2", input.Session.PlayerID)
				s.Equal(entities.StatusTimedOut, input.Session.Status)
				return &battlesession.PutOutput{}, nil
			})

		out, err := s.orchestrator.SweepIdle(s.ctx, &battle.SweepIdleInput{})
		s.Require().NoError(err)
		s.Equal(1, out.Flagged)
		s.Equal(0, out.Skipped)
	})
}
