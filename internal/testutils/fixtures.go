package testutils

import (
	"time"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
)

// Fixture identifiers
const (
	TestPlayerID = "player-test-001"
)

// TestEpoch is the fixed start time used with clock.Manual in tests
var TestEpoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// CreateTestPlayerCombatant returns a level 50 fire combatant with even
// stats and a speed of 80.
func CreateTestPlayerCombatant() *entities.Combatant {
	return &entities.Combatant{
		SpeciesID: "cinderpup",
		Name:      "Cinderpup",
		Level:     50,
		Types:     []entities.Element{entities.ElementFire},
		Stats: entities.Stats{
			HP: 120, Attack: 100, Defense: 50, SpecialAttack: 80, SpecialDefense: 40, Speed: 80,
		},
		HP:          120,
		MaxHP:       120,
		CaptureRate: 45,
	}
}

// CreateTestWildCombatant returns a level 50 grass/poison combatant with a
// speed of 120.
func CreateTestWildCombatant() *entities.Combatant {
	hv := entities.HiddenValues{20, 20, 20, 20, 20, 20}
	return &entities.Combatant{
		SpeciesID: "sproutle",
		Name:      "Sproutle",
		Level:     50,
		Types:     []entities.Element{entities.ElementGrass, entities.ElementPoison},
		Stats: entities.Stats{
			HP: 130, Attack: 60, Defense: 50, SpecialAttack: 70, SpecialDefense: 45, Speed: 120,
		},
		HP:           130,
		MaxHP:        130,
		HiddenValues: &hv,
		CaptureRate:  45,
	}
}
