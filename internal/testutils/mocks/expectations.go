// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle/mock"
)

// ExpectTouch sets up a keep-alive for the player
func ExpectTouch(mockService *battlemock.MockService, playerID string, touched bool) *gomock.Call {
	return mockService.EXPECT().
		Touch(gomock.Any(), &battle.TouchInput{PlayerID: playerID}).
		Return(&battle.TouchOutput{Touched: touched}, nil)
}

// ExpectGetBattle sets up a session lookup. A nil session with a nil error
// is reported as no active session.
func ExpectGetBattle(
	mockService *battlemock.MockService, playerID string,
	session *entities.BattleSession, err error,
) *gomock.Call {
	call := mockService.EXPECT().
		GetBattle(gomock.Any(), &battle.GetBattleInput{PlayerID: playerID})
	if err != nil {
		return call.Return(nil, err)
	}
	if session == nil {
		return call.Return(nil, errors.NoActiveSession(playerID))
	}
	return call.Return(&battle.GetBattleOutput{Session: session}, nil)
}

// ExpectNextTurn sets up one resolved turn
func ExpectNextTurn(
	mockService *battlemock.MockService, playerID string,
	outcome *entities.TurnOutcome, session *entities.BattleSession,
) *gomock.Call {
	return mockService.EXPECT().
		NextTurn(gomock.Any(), &battle.NextTurnInput{PlayerID: playerID}).
		Return(&battle.NextTurnOutput{Outcome: outcome, Session: session}, nil)
}
