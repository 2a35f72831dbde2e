package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/idlemon-api/internal/engine/capture"
	"github.com/KirkDiggler/idlemon-api/internal/engine/damage"
	"github.com/KirkDiggler/idlemon-api/internal/engine/ivgen"
	"github.com/KirkDiggler/idlemon-api/internal/engine/stats"
	"github.com/KirkDiggler/idlemon-api/internal/engine/turn"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/rng"
)

// Level bounds
const (
	MinLevel = 1
	MaxLevel = 100
)

type engine struct {
	dex         Dex
	hidden      *ivgen.Generator
	turns       *turn.Resolver
	captures    *capture.Resolver
	idGenerator idgen.Generator
}

// Config configures the engine. Source feeds crit rolls and hidden values;
// ShakeRoller feeds capture shake checks.
type Config struct {
	Dex            Dex
	Source         rng.Source
	ShakeRoller    dice.Roller
	IDGenerator    idgen.Generator
	CritChance     float64
	CritMultiplier float64
}

// Validate validates the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Dex == nil {
		vb.RequiredField("Dex")
	}
	if cfg.Source == nil {
		vb.RequiredField("Source")
	}
	if cfg.ShakeRoller == nil {
		vb.RequiredField("ShakeRoller")
	}
	if cfg.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	dmg, err := damage.NewResolver(&damage.Config{
		Source:         cfg.Source,
		CritChance:     cfg.CritChance,
		CritMultiplier: cfg.CritMultiplier,
	})
	if err != nil {
		return nil, err
	}

	turns, err := turn.NewResolver(&turn.Config{Moves: cfg.Dex, Damage: dmg})
	if err != nil {
		return nil, err
	}

	captures, err := capture.NewResolver(&capture.Config{Roller: cfg.ShakeRoller})
	if err != nil {
		return nil, err
	}

	return &engine{
		dex:         cfg.Dex,
		hidden:      ivgen.New(cfg.Source),
		turns:       turns,
		captures:    captures,
		idGenerator: cfg.IDGenerator,
	}, nil
}

func (e *engine) BuildCombatant(
	_ context.Context,
	input *BuildCombatantInput,
) (*BuildCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level < MinLevel || input.Level > MaxLevel {
		return nil, errors.InvalidArgumentf("level must be between %d and %d, got %d", MinLevel, MaxLevel, input.Level)
	}
	if input.HiddenValues != nil {
		if err := input.HiddenValues.Validate(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid hidden values")
		}
	}

	species, err := e.dex.Species(input.SpeciesID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up species %s", input.SpeciesID)
	}

	combatant := stats.NewCombatant(species, input.Level, input.HiddenValues, input.Name)
	combatant.Shiny = input.Shiny

	return &BuildCombatantOutput{Combatant: combatant}, nil
}

func (e *engine) GenerateHiddenValues(
	_ context.Context,
	input *GenerateHiddenValuesInput,
) (*GenerateHiddenValuesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	hv := e.hidden.GenerateAll(input.Options)
	return &GenerateHiddenValuesOutput{HiddenValues: hv, Grade: hv.Grade()}, nil
}

func (e *engine) ResolveTurn(_ context.Context, input *ResolveTurnInput) (*ResolveTurnOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}

	outcome, err := e.turns.Resolve(input.Session)
	if err != nil {
		return nil, err
	}

	return &ResolveTurnOutput{Outcome: outcome}, nil
}

func (e *engine) ResolveCapture(
	ctx context.Context,
	input *ResolveCaptureInput,
) (*ResolveCaptureOutput, error) {
	if input == nil || input.Session == nil || input.Session.Wild == nil {
		return nil, errors.InvalidArgument("session with a wild combatant is required")
	}
	wild := input.Session.Wild

	species, err := e.dex.Species(wild.SpeciesID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up species %s", wild.SpeciesID)
	}
	captureRate := wild.CaptureRate
	if captureRate == 0 {
		captureRate = species.CaptureRate
	}

	result, err := e.captures.Attempt(&capture.AttemptInput{
		MaxHP:       wild.MaxHP,
		HP:          input.Session.WildHP,
		CaptureRate: captureRate,
		Ball:        input.Ball,
	})
	if err != nil {
		return nil, err
	}

	outcome := &entities.CaptureOutcome{
		Caught: result.Caught,
		Shakes: result.Shakes,
		Ball:   input.Ball,
	}
	if !result.Caught {
		return &ResolveCaptureOutput{Outcome: outcome}, nil
	}

	creature, err := e.newCreature(ctx, wild, species)
	if err != nil {
		return nil, err
	}
	outcome.Creature = creature

	return &ResolveCaptureOutput{Outcome: outcome}, nil
}

// newCreature turns a caught wild combatant into a creature, generating its
// hidden values if the encounter did not supply any.
func (e *engine) newCreature(
	ctx context.Context,
	wild *entities.Combatant,
	species *entities.Species,
) (*entities.Creature, error) {
	var hv entities.HiddenValues
	if wild.HiddenValues != nil {
		hv = *wild.HiddenValues
	} else {
		hv = e.hidden.GenerateAll(ivgen.Options{Shiny: wild.Shiny, EncounterType: ivgen.EncounterWild})
		slog.DebugContext(ctx, "Generated hidden values for caught creature",
			"species_id", wild.SpeciesID,
			"grade", hv.Grade())
	}

	return &entities.Creature{
		ID:           e.idGenerator.Generate(),
		SpeciesID:    wild.SpeciesID,
		Name:         wild.Name,
		Level:        wild.Level,
		HiddenValues: hv,
		Grade:        hv.Grade(),
		Stats:        stats.Compute(species.BaseStats, wild.Level, &hv),
		Shiny:        wild.Shiny,
	}, nil
}
