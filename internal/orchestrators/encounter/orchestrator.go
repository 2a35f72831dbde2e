// Package encounter spawns wild creatures from zone tables and starts
// battles against them
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/idlemon-api/internal/orchestrators/encounter Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/idlemon-api/internal/engine"
	"github.com/KirkDiggler/idlemon-api/internal/engine/ivgen"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/rng"
)

// Service defines the interface for encounter operations
type Service interface {
	// SpawnWild rolls a wild combatant from a zone's spawn table
	SpawnWild(ctx context.Context, input *SpawnWildInput) (*SpawnWildOutput, error)

	// WildEncounter spawns a wild combatant and starts a battle against the
	// player's lead, replacing any battle the player already had
	WildEncounter(ctx context.Context, input *WildEncounterInput) (*WildEncounterOutput, error)
}

// ZoneBook looks up zones
type ZoneBook interface {
	Zone(id string) (*entities.Zone, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Zones   ZoneBook
	Engine  engine.Engine
	Battles battle.Service
	Source  rng.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Zones == nil {
		vb.RequiredField("Zones")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Battles == nil {
		vb.RequiredField("Battles")
	}
	if c.Source == nil {
		vb.RequiredField("Source")
	}

	return vb.Build()
}

type orchestrator struct {
	zones   ZoneBook
	engine  engine.Engine
	battles battle.Service
	source  rng.Source
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		zones:   cfg.Zones,
		engine:  cfg.Engine,
		battles: cfg.Battles,
		source:  cfg.Source,
	}, nil
}

// SpawnWild draws, in order, the species by weight, the level within the
// zone's range and the shiny check, then generates hidden values with the
// zone's difficulty as the modifier.
func (o *orchestrator) SpawnWild(ctx context.Context, input *SpawnWildInput) (*SpawnWildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ZoneID == "" {
		return nil, errors.InvalidArgument("zone_id is required")
	}

	zone, err := o.zones.Zone(input.ZoneID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up zone %s", input.ZoneID)
	}

	entry, err := o.pickEncounter(zone)
	if err != nil {
		return nil, err
	}
	level := zone.MinLevel
	if zone.MaxLevel > zone.MinLevel {
		level += o.source.IntN(zone.MaxLevel - zone.MinLevel + 1)
	}
	shiny := zone.ShinyOdds > 0 && o.source.IntN(zone.ShinyOdds) == 0

	encounterType := ivgen.EncounterType(entry.EncounterType)
	if encounterType == "" {
		encounterType = ivgen.EncounterWild
	}

	hidden, err := o.engine.GenerateHiddenValues(ctx, &engine.GenerateHiddenValuesInput{
		Options: ivgen.Options{
			Shiny:         shiny,
			ZoneModifier:  zone.Difficulty,
			EncounterType: encounterType,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate hidden values")
	}

	built, err := o.engine.BuildCombatant(ctx, &engine.BuildCombatantInput{
		SpeciesID:    entry.SpeciesID,
		Level:        level,
		HiddenValues: &hidden.HiddenValues,
		Shiny:        shiny,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build wild %s", entry.SpeciesID)
	}

	slog.DebugContext(ctx, "Wild creature spawned",
		"zone_id", zone.ID,
		"species_id", entry.SpeciesID,
		"level", level,
		"shiny", shiny,
		"encounter_type", encounterType,
		"grade", hidden.Grade)

	return &SpawnWildOutput{
		Wild:          built.Combatant,
		Grade:         hidden.Grade,
		EncounterType: encounterType,
	}, nil
}

func (o *orchestrator) pickEncounter(zone *entities.Zone) (entities.ZoneEncounter, error) {
	total := zone.TotalWeight()
	if total <= 0 {
		return entities.ZoneEncounter{}, errors.FailedPreconditionf("zone %s has no encounters", zone.ID)
	}

	roll := o.source.IntN(total)
	for _, e := range zone.Encounters {
		if roll < e.Weight {
			return e, nil
		}
		roll -= e.Weight
	}
	// unreachable while weights are non-negative
	return zone.Encounters[len(zone.Encounters)-1], nil
}

// WildEncounter spawns from the zone and starts the battle
func (o *orchestrator) WildEncounter(ctx context.Context, input *WildEncounterInput) (*WildEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.PlayerID == "" {
		vb.RequiredField("player_id")
	}
	if input.ZoneID == "" {
		vb.RequiredField("zone_id")
	}
	if input.Lead == nil {
		vb.RequiredField("lead")
	} else if input.Lead.SpeciesID == "" {
		vb.RequiredField("lead.species_id")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	lead, err := o.engine.BuildCombatant(ctx, &engine.BuildCombatantInput{
		SpeciesID:    input.Lead.SpeciesID,
		Level:        input.Lead.Level,
		HiddenValues: input.Lead.HiddenValues,
		Shiny:        input.Lead.Shiny,
		Name:         input.Lead.Name,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build lead")
	}

	spawn, err := o.SpawnWild(ctx, &SpawnWildInput{ZoneID: input.ZoneID})
	if err != nil {
		return nil, err
	}

	started, err := o.battles.StartBattle(ctx, &battle.StartBattleInput{
		PlayerID: input.PlayerID,
		Player:   lead.Combatant,
		Wild:     spawn.Wild,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start battle")
	}

	slog.InfoContext(ctx, "Wild encounter started",
		"player_id", input.PlayerID,
		"zone_id", input.ZoneID,
		"lead", lead.Combatant.SpeciesID,
		"wild", spawn.Wild.SpeciesID,
		"wild_level", spawn.Wild.Level,
		"shiny", spawn.Wild.Shiny)

	return &WildEncounterOutput{
		Session:       started.Session,
		Grade:         spawn.Grade,
		EncounterType: spawn.EncounterType,
	}, nil
}
