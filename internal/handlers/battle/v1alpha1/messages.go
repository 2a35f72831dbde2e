package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
)

// LeadCreature is the player's creature sent into an encounter
type LeadCreature struct {
	SpeciesID    string                 `json:"species_id"`
	Level        int                    `json:"level"`
	HiddenValues *entities.HiddenValues `json:"hidden_values,omitempty"`
	Shiny        bool                   `json:"shiny,omitempty"`
	Name         string                 `json:"name,omitempty"`
}

// Battle is the client view of a battle session. The wild side's hidden
// values stay server side until it is caught.
type Battle struct {
	PlayerID       string                 `json:"player_id"`
	Player         *entities.Combatant    `json:"player"`
	Wild           *entities.Combatant    `json:"wild"`
	PlayerHP       int                    `json:"player_hp"`
	WildHP         int                    `json:"wild_hp"`
	Turn           int                    `json:"turn"`
	PlayerFirst    bool                   `json:"player_first"`
	Status         entities.SessionStatus `json:"status"`
	Outcome        entities.BattleOutcome `json:"outcome"`
	CreatedAt      time.Time              `json:"created_at"`
	LastActivityAt time.Time              `json:"last_activity_at"`
	TimedOutAt     *time.Time             `json:"timed_out_at,omitempty"`
}

// NewBattle converts a session to its client view
func NewBattle(session *entities.BattleSession) *Battle {
	if session == nil {
		return nil
	}
	s := session.Clone()
	if s.Wild != nil {
		s.Wild.HiddenValues = nil
	}
	return &Battle{
		PlayerID:       s.PlayerID,
		Player:         s.Player,
		Wild:           s.Wild,
		PlayerHP:       s.PlayerHP,
		WildHP:         s.WildHP,
		Turn:           s.Turn,
		PlayerFirst:    s.PlayerFirst,
		Status:         s.Status,
		Outcome:        s.Outcome,
		CreatedAt:      s.CreatedAt,
		LastActivityAt: s.LastActivityAt,
		TimedOutAt:     s.TimedOutAt,
	}
}

// StartEncounterRequest starts a wild battle in a zone
type StartEncounterRequest struct {
	PlayerID string        `json:"player_id"`
	ZoneID   string        `json:"zone_id"`
	Lead     *LeadCreature `json:"lead"`
}

// StartEncounterResponse contains the new battle
type StartEncounterResponse struct {
	Battle        *Battle        `json:"battle"`
	Grade         entities.Grade `json:"grade"`
	EncounterType string         `json:"encounter_type"`
}

// GetBattleRequest identifies the player
type GetBattleRequest struct {
	PlayerID string `json:"player_id"`
}

// GetBattleResponse contains the battle
type GetBattleResponse struct {
	Battle *Battle `json:"battle"`
}

// NextTurnRequest identifies the player
type NextTurnRequest struct {
	PlayerID string `json:"player_id"`
}

// NextTurnResponse contains the turn record and the battle after it
type NextTurnResponse struct {
	Turn   *entities.TurnOutcome `json:"turn"`
	Battle *Battle               `json:"battle"`
}

// AttemptCaptureRequest throws a ball
type AttemptCaptureRequest struct {
	PlayerID string        `json:"player_id"`
	Ball     entities.Ball `json:"ball,omitempty"`
}

// AttemptCaptureResponse contains the capture result and the battle after it
type AttemptCaptureResponse struct {
	Capture *entities.CaptureOutcome `json:"capture"`
	Battle  *Battle                  `json:"battle"`
}

// EndBattleRequest identifies the player
type EndBattleRequest struct {
	PlayerID string `json:"player_id"`
}

// EndBattleResponse contains the battle as it was when ended
type EndBattleResponse struct {
	Battle *Battle `json:"battle"`
}

// TouchRequest identifies the player
type TouchRequest struct {
	PlayerID string `json:"player_id"`
}

// TouchResponse reports whether a playable battle was kept alive
type TouchResponse struct {
	Touched bool `json:"touched"`
}
