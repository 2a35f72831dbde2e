package battle_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/idlemon-api/internal/engine"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/gamedata"
	"github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/clock"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/rng"
	battlesession "github.com/KirkDiggler/idlemon-api/internal/repositories/battle_session"
	"github.com/KirkDiggler/idlemon-api/internal/testutils"
)

// BattleIntegrationTestSuite runs full battles through the real engine and
// the Redis store
type BattleIntegrationTestSuite struct {
	suite.Suite
	ctx          context.Context
	clock        *clock.Manual
	redis        *miniredis.Miniredis
	engine       engine.Engine
	orchestrator battle.Service
}

func TestBattleIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BattleIntegrationTestSuite))
}

func (s *BattleIntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewManual(testutils.TestEpoch)

	dex, err := gamedata.Load()
	s.Require().NoError(err)

	s.engine, err = engine.New(&engine.Config{
		Dex:         dex,
		Source:      rng.NewPCG(42),
		ShakeRoller: rng.NewScriptedRoller(),
		IDGenerator: idgen.NewSequential("creature"),
	})
	s.Require().NoError(err)

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.redis = mr
	repo, err := battlesession.NewRedis(&battlesession.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.orchestrator, err = battle.NewOrchestrator(&battle.Config{
		Repository: repo,
		Engine:     s.engine,
		Clock:      s.clock,
	})
	s.Require().NoError(err)
}

func (s *BattleIntegrationTestSuite) start(playerLevel, wildLevel int) *entities.BattleSession {
	return s.startFor(testutils.TestPlayerID, playerLevel, wildLevel)
}

func (s *BattleIntegrationTestSuite) startFor(playerID string, playerLevel, wildLevel int) *entities.BattleSession {
	player, err := s.engine.BuildCombatant(s.ctx, &engine.BuildCombatantInput{SpeciesID: "cinderpup", Level: playerLevel})
	s.Require().NoError(err)
	wild, err := s.engine.BuildCombatant(s.ctx, &engine.BuildCombatantInput{SpeciesID: "sproutle", Level: wildLevel})
	s.Require().NoError(err)

	out, err := s.orchestrator.StartBattle(s.ctx, &battle.StartBattleInput{
		PlayerID: playerID,
		Player:   player.Combatant,
		Wild:     wild.Combatant,
	})
	s.Require().NoError(err)
	return out.Session
}

func (s *BattleIntegrationTestSuite) TestBattleToTheEnd() {
	session := s.start(30, 12)

	var last entities.Side
	var outcome *entities.TurnOutcome
	for i := 0; i < 200; i++ {
		s.clock.Advance(2 * time.Second)
		out, err := s.orchestrator.NextTurn(s.ctx, &battle.NextTurnInput{PlayerID: testutils.TestPlayerID})
		s.Require().NoError(err)
		outcome = out.Outcome

		s.Equal(i, outcome.Turn)
		s.Equal(session.ActingSide(i), outcome.Actor)
		s.NotEqual(last, outcome.Actor)
		last = outcome.Actor

		s.GreaterOrEqual(outcome.PlayerHP, 0)
		s.LessOrEqual(outcome.PlayerHP, outcome.PlayerMaxHP)
		s.GreaterOrEqual(outcome.WildHP, 0)
		s.LessOrEqual(outcome.WildHP, outcome.WildMaxHP)

		if outcome.BattleEnded {
			break
		}
	}
	s.Require().True(outcome.BattleEnded, "battle never ended")

	got, err := s.orchestrator.GetBattle(s.ctx, &battle.GetBattleInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(entities.StatusComplete, got.Session.Status)
	s.NotEqual(entities.OutcomeOngoing, got.Session.Outcome)

	_, err = s.orchestrator.NextTurn(s.ctx, &battle.NextTurnInput{PlayerID: testutils.TestPlayerID})
	s.True(errors.Is(err, errors.ErrInvalidTransition))

	ended, err := s.orchestrator.EndBattle(s.ctx, &battle.EndBattleInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(got.Session.Turn, ended.Session.Turn)
	s.False(s.redis.Exists("battle_session:" + testutils.TestPlayerID))
}

func (s *BattleIntegrationTestSuite) TestMasterBallCapture() {
	s.start(20, 8)

	out, err := s.orchestrator.AttemptCapture(s.ctx, &battle.AttemptCaptureInput{
		PlayerID: testutils.TestPlayerID,
		Ball:     entities.BallMaster,
	})
	s.Require().NoError(err)
	s.True(out.Outcome.Caught)
	s.Equal(4, out.Outcome.Shakes)
	s.Require().NotNil(out.Outcome.Creature)
	s.Equal("creature_1", out.Outcome.Creature.ID)
	s.Equal("sproutle", out.Outcome.Creature.SpeciesID)
	s.Equal(8, out.Outcome.Creature.Level)
	s.Equal(entities.StatusComplete, out.Session.Status)
}

func (s *BattleIntegrationTestSuite) TestTimeoutThenEvict() {
	s.start(20, 8)

	s.clock.Advance(31 * time.Second)
	sweep, err := s.orchestrator.SweepIdle(s.ctx, &battle.SweepIdleInput{})
	s.Require().NoError(err)
	s.Equal(1, sweep.Flagged)

	got, err := s.orchestrator.GetBattle(s.ctx, &battle.GetBattleInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(entities.StatusTimedOut, got.Session.Status)
	s.Require().NotNil(got.Session.TimedOutAt)

	s.clock.Advance(5 * time.Minute)
	evict, err := s.orchestrator.EvictStale(s.ctx, &battle.EvictStaleInput{})
	s.Require().NoError(err)
	s.Equal(1, evict.Evicted)

	_, err = s.orchestrator.GetBattle(s.ctx, &battle.GetBattleInput{PlayerID: testutils.TestPlayerID})
	s.True(errors.Is(err, errors.ErrNoActiveSession))
}

func (s *BattleIntegrationTestSuite) TestSweepSurvivesOddPlayersAndBadRecords() {
	for _, id := range []string{"active", "alice", "mallory"} {
		s.startFor(id, 10, 10)
	}
	s.Require().NoError(s.redis.Set("battle_session:mallory", "{not json"))

	s.clock.Advance(31 * time.Second)
	out, err := s.orchestrator.SweepIdle(s.ctx, &battle.SweepIdleInput{})
	s.Require().NoError(err)
	s.Equal(2, out.Flagged)

	for _, id := range []string{"active", "alice"} {
		got, err := s.orchestrator.GetBattle(s.ctx, &battle.GetBattleInput{PlayerID: id})
		s.Require().NoError(err, id)
		s.Equal(entities.StatusTimedOut, got.Session.Status, id)
	}
}
