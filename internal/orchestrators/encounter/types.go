package encounter

import (
	"github.com/KirkDiggler/idlemon-api/internal/engine/ivgen"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
)

// Lead is the player's creature sent into battle
type Lead struct {
	SpeciesID    string
	Level        int
	HiddenValues *entities.HiddenValues
	Shiny        bool
	// Name is the player's nickname, if any
	Name string
}

// SpawnWildInput identifies the zone to spawn from
type SpawnWildInput struct {
	ZoneID string
}

// SpawnWildOutput contains the spawned combatant and how it was rolled
type SpawnWildOutput struct {
	Wild          *entities.Combatant
	Grade         entities.Grade
	EncounterType ivgen.EncounterType
}

// WildEncounterInput defines the request for starting a wild battle
type WildEncounterInput struct {
	PlayerID string
	ZoneID   string
	Lead     *Lead
}

// WildEncounterOutput contains the started battle
type WildEncounterOutput struct {
	Session       *entities.BattleSession
	Grade         entities.Grade
	EncounterType ivgen.EncounterType
}
