package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
	"github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle/mock"
	encountermock "github.com/KirkDiggler/idlemon-api/internal/orchestrators/encounter/mock"
	"github.com/KirkDiggler/idlemon-api/internal/testutils"
	"github.com/KirkDiggler/idlemon-api/internal/testutils/builders"
)

// ServiceTestSuite drives the handler through a real gRPC server so the
// descriptor and JSON codec are exercised end to end
type ServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBattles *battlemock.MockService
	server      *grpc.Server
	conn        *grpc.ClientConn
	client      v1alpha1.BattleServiceClient
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBattles = battlemock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BattleService:    s.mockBattles,
		EncounterService: encountermock.NewMockService(s.ctrl),
	})
	s.Require().NoError(err)

	listener := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterBattleServiceServer(s.server, handler)
	go func() { _ = s.server.Serve(listener) }()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewBattleServiceClient(s.conn)
}

func (s *ServiceTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) TestNextTurnRoundTrip() {
	session := builders.NewBattleSessionBuilder().WithTurn(1).WithHP(120, 56).Build()
	outcome := &entities.TurnOutcome{
		Turn:          0,
		Actor:         entities.SidePlayer,
		AttackerName:  "Cinderpup",
		DefenderName:  "Sproutle",
		Damage:        74,
		Effectiveness: entities.EffectivenessSuper,
		PlayerHP:      120,
		PlayerMaxHP:   120,
		WildHP:        56,
		WildMaxHP:     130,
		Move:          "Ember",
		MoveType:      entities.ElementFire,
	}

	s.mockBattles.EXPECT().
		NextTurn(gomock.Any(), &battle.NextTurnInput{PlayerID: testutils.TestPlayerID}).
		Return(&battle.NextTurnOutput{Outcome: outcome, Session: session}, nil)

	resp, err := s.client.NextTurn(context.Background(), &v1alpha1.NextTurnRequest{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(outcome, resp.Turn)
	s.Equal(56, resp.Battle.WildHP)
	s.Equal(testutils.TestEpoch, resp.Battle.CreatedAt.UTC())
}

func (s *ServiceTestSuite) TestErrorDetailsSurvive() {
	s.mockBattles.EXPECT().
		NextTurn(gomock.Any(), gomock.Any()).
		Return(nil, errors.TurnInProgress(testutils.TestPlayerID))

	_, err := s.client.NextTurn(context.Background(), &v1alpha1.NextTurnRequest{PlayerID: testutils.TestPlayerID})
	s.Require().Error(err)
	s.Equal(codes.Aborted, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.Equal(errors.ReasonTurnInProgress, errors.GetReason(converted))
}
