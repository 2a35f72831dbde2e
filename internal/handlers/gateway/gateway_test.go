package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/handlers/gateway"
	"github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle/mock"
	"github.com/KirkDiggler/idlemon-api/internal/testutils"
	"github.com/KirkDiggler/idlemon-api/internal/testutils/builders"
	"github.com/KirkDiggler/idlemon-api/internal/testutils/mocks"
)

type GatewayTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBattles *battlemock.MockService
	bus         events.EventBus
	server      *httptest.Server
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func (s *GatewayTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBattles = battlemock.NewMockService(s.ctrl)
	s.bus = events.NewBus()

	g, err := gateway.New(&gateway.Config{BattleService: s.mockBattles, EventBus: s.bus})
	s.Require().NoError(err)
	s.server = httptest.NewServer(g.Router())
}

func (s *GatewayTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *GatewayTestSuite) dial(playerID string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws/" + playerID
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	_ = resp.Body.Close()
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

func (s *GatewayTestSuite) roundTrip(conn *websocket.Conn, in gateway.ClientMessage) gateway.ServerMessage {
	s.Require().NoError(conn.WriteJSON(in))
	return s.read(conn)
}

func (s *GatewayTestSuite) read(conn *websocket.Conn) gateway.ServerMessage {
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var out gateway.ServerMessage
	s.Require().NoError(conn.ReadJSON(&out))
	return out
}

func (s *GatewayTestSuite) expectTouch() {
	mocks.ExpectTouch(s.mockBattles, testutils.TestPlayerID, true)
}

func (s *GatewayTestSuite) TestNew() {
	_, err := gateway.New(&gateway.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "BattleService")
}

func (s *GatewayTestSuite) TestHealth() {
	resp, err := http.Get(s.server.URL + "/healthz")
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *GatewayTestSuite) TestGetBattle() {
	testCases := []struct {
		name       string
		session    *entities.BattleSession
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "timed out battle is still readable",
			session:    builders.NewBattleSessionBuilder().TimedOut(testutils.TestEpoch).Build(),
			wantStatus: http.StatusOK,
		},
		{
			name:       "no battle",
			err:        errors.NoActiveSession(testutils.TestPlayerID),
			wantStatus: http.StatusNotFound,
			wantReason: errors.ReasonNoActiveSession,
		},
		{
			name:       "storage failure",
			err:        errors.Internal("redis down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			call := s.mockBattles.EXPECT().
				GetBattle(gomock.Any(), &battle.GetBattleInput{PlayerID: testutils.TestPlayerID})
			if tc.err != nil {
				call.Return(nil, tc.err)
			} else {
				call.Return(&battle.GetBattleOutput{Session: tc.session}, nil)
			}

			resp, err := http.Get(s.server.URL + "/v1/battles/" + testutils.TestPlayerID)
			s.Require().NoError(err)
			defer func() { _ = resp.Body.Close() }()
			s.Equal(tc.wantStatus, resp.StatusCode)

			var body map[string]any
			s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
			if tc.err != nil {
				s.Equal(string(errors.GetCode(tc.err)), body["code"])
				if tc.wantReason != "" {
					s.Equal(tc.wantReason, body["reason"])
				}
				return
			}
			s.Equal("timed_out", body["status"])
			s.NotNil(body["timed_out_at"])
		})
	}
}

func (s *GatewayTestSuite) TestSocketSession() {
	session := builders.NewBattleSessionBuilder().Build()
	mocks.ExpectGetBattle(s.mockBattles, testutils.TestPlayerID, session, nil)

	conn := s.dial(testutils.TestPlayerID)
	hello := s.read(conn)
	s.Equal(gateway.TypeState, hello.Type)
	s.Equal(130, hello.Battle.WildHP)

	s.Run("ping", func() {
		s.expectTouch()
		out := s.roundTrip(conn, gateway.ClientMessage{Type: gateway.TypePing})
		s.Equal(gateway.TypePong, out.Type)
	})

	s.Run("next turn", func() {
		s.expectTouch()
		outcome := &entities.TurnOutcome{Turn: 0, Actor: entities.SideWild, Damage: 12, PlayerHP: 108}
		mocks.ExpectNextTurn(s.mockBattles, testutils.TestPlayerID, outcome, session)

		out := s.roundTrip(conn, gateway.ClientMessage{Type: gateway.TypeNextTurn})
		s.Equal(gateway.TypeTurn, out.Type)
		s.Equal(outcome, out.Turn)
	})

	s.Run("turn conflict", func() {
		s.expectTouch()
		s.mockBattles.EXPECT().
			NextTurn(gomock.Any(), gomock.Any()).
			Return(nil, errors.TurnInProgress(testutils.TestPlayerID))

		out := s.roundTrip(conn, gateway.ClientMessage{Type: gateway.TypeNextTurn})
		s.Equal(gateway.TypeError, out.Type)
		s.Require().NotNil(out.Error)
		s.Equal(errors.CodeAborted, out.Error.Code)
		s.Equal(errors.ReasonTurnInProgress, out.Error.Reason)
	})

	s.Run("capture", func() {
		s.expectTouch()
		capture := &entities.CaptureOutcome{Shakes: 3, Ball: entities.BallGreat}
		s.mockBattles.EXPECT().
			AttemptCapture(gomock.Any(), &battle.AttemptCaptureInput{PlayerID: testutils.TestPlayerID, Ball: entities.BallGreat}).
			Return(&battle.AttemptCaptureOutput{Outcome: capture, Session: session}, nil)

		out := s.roundTrip(conn, gateway.ClientMessage{Type: gateway.TypeCapture, Ball: entities.BallGreat})
		s.Equal(gateway.TypeCaptureResult, out.Type)
		s.Equal(capture, out.Capture)
	})

	s.Run("unknown type", func() {
		s.expectTouch()
		out := s.roundTrip(conn, gateway.ClientMessage{Type: "dance"})
		s.Equal(gateway.TypeError, out.Type)
		s.Equal(errors.CodeInvalidArgument, out.Error.Code)
	})

	s.Run("end", func() {
		s.expectTouch()
		s.mockBattles.EXPECT().
			EndBattle(gomock.Any(), &battle.EndBattleInput{PlayerID: testutils.TestPlayerID}).
			Return(&battle.EndBattleOutput{Session: session}, nil)

		out := s.roundTrip(conn, gateway.ClientMessage{Type: gateway.TypeEnd})
		s.Equal(gateway.TypeEnded, out.Type)
		s.Equal(testutils.TestPlayerID, out.Battle.PlayerID)
	})
}

func (s *GatewayTestSuite) TestReconnectAfterTimeout() {
	session := builders.NewBattleSessionBuilder().TimedOut(testutils.TestEpoch.Add(31 * time.Second)).Build()
	mocks.ExpectGetBattle(s.mockBattles, testutils.TestPlayerID, session, nil)

	conn := s.dial(testutils.TestPlayerID)
	hello := s.read(conn)
	s.Equal(gateway.TypeTimeout, hello.Type)
	s.Equal(entities.StatusTimedOut, hello.Battle.Status)
}

func (s *GatewayTestSuite) TestNoBattleOnConnect() {
	mocks.ExpectGetBattle(s.mockBattles, testutils.TestPlayerID, nil, nil)

	conn := s.dial(testutils.TestPlayerID)

	s.expectTouch()
	out := s.roundTrip(conn, gateway.ClientMessage{Type: gateway.TypePing})
	s.Equal(gateway.TypePong, out.Type)
}

func (s *GatewayTestSuite) TestTimeoutPushedToPlayer() {
	battling := builders.NewBattleSessionBuilder().Build()
	timedOut := builders.NewBattleSessionBuilder().TimedOut(testutils.TestEpoch.Add(31 * time.Second)).Build()
	gomock.InOrder(
		mocks.ExpectGetBattle(s.mockBattles, testutils.TestPlayerID, battling, nil),
		mocks.ExpectGetBattle(s.mockBattles, testutils.TestPlayerID, timedOut, nil),
	)

	conn := s.dial(testutils.TestPlayerID)
	s.Equal(gateway.TypeState, s.read(conn).Type)

	ctx := context.Background()
	s.Require().NoError(s.bus.Publish(ctx, battle.NewTimedOutEvent("someone-else")))
	s.Require().NoError(s.bus.Publish(ctx, battle.NewTimedOutEvent(testutils.TestPlayerID)))

	pushed := s.read(conn)
	s.Equal(gateway.TypeTimeout, pushed.Type)
	s.Require().NotNil(pushed.Battle)
	s.Equal(entities.StatusTimedOut, pushed.Battle.Status)

	// replies still arrive after a push
	s.expectTouch()
	out := s.roundTrip(conn, gateway.ClientMessage{Type: gateway.TypePing})
	s.Equal(gateway.TypePong, out.Type)
}
