// Package v1alpha1 handles the battle grpc service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/idlemon-api/internal/orchestrators/encounter"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	BattleService    battle.Service
	EncounterService encounter.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}
	if c.EncounterService == nil {
		vb.RequiredField("EncounterService")
	}
	return vb.Build()
}

// Handler implements BattleService
type Handler struct {
	UnimplementedBattleServiceServer
	battleService    battle.Service
	encounterService encounter.Service
}

var _ BattleServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		battleService:    cfg.BattleService,
		encounterService: cfg.EncounterService,
	}, nil
}

// StartEncounter spawns a wild creature and starts the battle
func (h *Handler) StartEncounter(
	ctx context.Context,
	req *StartEncounterRequest,
) (*StartEncounterResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	if req.ZoneID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("zone_id is required"))
	}
	if req.Lead == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("lead is required"))
	}

	output, err := h.encounterService.WildEncounter(ctx, &encounter.WildEncounterInput{
		PlayerID: req.PlayerID,
		ZoneID:   req.ZoneID,
		Lead: &encounter.Lead{
			SpeciesID:    req.Lead.SpeciesID,
			Level:        req.Lead.Level,
			HiddenValues: req.Lead.HiddenValues,
			Shiny:        req.Lead.Shiny,
			Name:         req.Lead.Name,
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StartEncounterResponse{
		Battle:        NewBattle(output.Session),
		Grade:         output.Grade,
		EncounterType: string(output.EncounterType),
	}, nil
}

// GetBattle returns the player's battle
func (h *Handler) GetBattle(
	ctx context.Context,
	req *GetBattleRequest,
) (*GetBattleResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.battleService.GetBattle(ctx, &battle.GetBattleInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetBattleResponse{Battle: NewBattle(output.Session)}, nil
}

// NextTurn resolves one turn
func (h *Handler) NextTurn(
	ctx context.Context,
	req *NextTurnRequest,
) (*NextTurnResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.battleService.NextTurn(ctx, &battle.NextTurnInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &NextTurnResponse{
		Turn:   output.Outcome,
		Battle: NewBattle(output.Session),
	}, nil
}

// AttemptCapture throws a ball at the wild creature
func (h *Handler) AttemptCapture(
	ctx context.Context,
	req *AttemptCaptureRequest,
) (*AttemptCaptureResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.battleService.AttemptCapture(ctx, &battle.AttemptCaptureInput{
		PlayerID: req.PlayerID,
		Ball:     req.Ball,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AttemptCaptureResponse{
		Capture: output.Outcome,
		Battle:  NewBattle(output.Session),
	}, nil
}

// EndBattle removes the player's battle
func (h *Handler) EndBattle(
	ctx context.Context,
	req *EndBattleRequest,
) (*EndBattleResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.battleService.EndBattle(ctx, &battle.EndBattleInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EndBattleResponse{Battle: NewBattle(output.Session)}, nil
}

// Touch keeps the player's battle alive
func (h *Handler) Touch(
	ctx context.Context,
	req *TouchRequest,
) (*TouchResponse, error) {
	if req.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	output, err := h.battleService.Touch(ctx, &battle.TouchInput{PlayerID: req.PlayerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &TouchResponse{Touched: output.Touched}, nil
}
