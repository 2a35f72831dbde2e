package gateway

import (
	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/idlemon-api/internal/handlers/battle/v1alpha1"
)

// Client message types
const (
	TypeNextTurn = "next_turn"
	TypeCapture  = "capture"
	TypePing     = "ping"
	TypeEnd      = "end"
)

// Server message types
const (
	TypeTurn          = "turn"
	TypeCaptureResult = "capture"
	TypePong          = "pong"
	TypeEnded         = "ended"
	TypeError         = "error"
	// TypeState is sent on connect with the battle in progress
	TypeState = "state"
	// TypeTimeout is sent instead of TypeState when the battle was flagged
	// timed out while the client was away
	TypeTimeout = "timeout"
)

// ClientMessage is one request read from the socket
type ClientMessage struct {
	Type string        `json:"type"`
	Ball entities.Ball `json:"ball,omitempty"`
}

// ServerMessage is one reply written to the socket
type ServerMessage struct {
	Type    string                   `json:"type"`
	Turn    *entities.TurnOutcome    `json:"turn,omitempty"`
	Capture *entities.CaptureOutcome `json:"capture,omitempty"`
	Battle  *v1alpha1.Battle         `json:"battle,omitempty"`
	Error   *ErrorBody               `json:"error,omitempty"`
}

// ErrorBody is the structured error sent to clients
type ErrorBody struct {
	Code    errors.Code `json:"code"`
	Reason  string      `json:"reason,omitempty"`
	Message string      `json:"message"`
}

func newErrorBody(err error) *ErrorBody {
	return &ErrorBody{
		Code:    errors.GetCode(err),
		Reason:  errors.GetReason(err),
		Message: errors.GetMessage(err),
	}
}
