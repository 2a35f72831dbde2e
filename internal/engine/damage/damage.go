// Package damage selects moves and resolves the damage of a single attack.
package damage

import (
	"math"

	"github.com/KirkDiggler/idlemon-api/internal/engine/typechart"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/rng"
)

// Defaults for critical hits
const (
	DefaultCritChance     = 1.0 / 16
	DefaultCritMultiplier = 1.5
)

// Fallback is used when a combatant has no moves at all
var Fallback = entities.Move{ID: "tackle", Name: "Tackle", Type: entities.ElementNormal, Power: 40}

//go:generate mockgen -destination=mock/mock_movebook.go -package=damagemock github.com/KirkDiggler/idlemon-api/internal/engine/damage MoveBook

// MoveBook resolves the candidate moves of an attacker. Implementations return
// the species-specific pool when one exists and otherwise the default pool of
// the attacker's primary element.
type MoveBook interface {
	Pool(attacker *entities.Combatant) []entities.Move
}

// Selection is a chosen move and its multiplier against the defender
type Selection struct {
	Move       entities.Move
	Multiplier float64
}

// SelectMove scores every candidate as effectiveness times power and returns
// the best one. Ties go to the earlier move; if nothing scores above zero the
// first move is used.
func SelectMove(pool []entities.Move, defender []entities.Element) Selection {
	if len(pool) == 0 {
		pool = []entities.Move{Fallback}
	}

	best := -1
	bestScore := 0.0
	for i, move := range pool {
		score := typechart.Effectiveness(move.Type, defender...) * float64(move.Power)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 {
		best = 0
	}

	move := pool[best]
	return Selection{
		Move:       move,
		Multiplier: typechart.Effectiveness(move.Type, defender...),
	}
}

// Config configures a Resolver
type Config struct {
	Source         rng.Source
	CritChance     float64
	CritMultiplier float64
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Source == nil {
		vb.RequiredField("Source")
	}
	errors.ValidateProbability("CritChance", c.CritChance, vb)
	if c.CritMultiplier != 0 && c.CritMultiplier < 1 {
		vb.Fieldf("CritMultiplier", "must be at least 1, got %v", c.CritMultiplier)
	}
	return vb.Build()
}

// Resolver computes damage. It draws exactly one crit roll per call.
type Resolver struct {
	source         rng.Source
	critChance     float64
	critMultiplier float64
}

// NewResolver creates a resolver. A zero CritMultiplier takes the default;
// a zero CritChance disables critical hits.
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	multiplier := cfg.CritMultiplier
	if multiplier == 0 {
		multiplier = DefaultCritMultiplier
	}

	return &Resolver{
		source:         cfg.Source,
		critChance:     cfg.CritChance,
		critMultiplier: multiplier,
	}, nil
}

// ResolveInput is the input of one attack
type ResolveInput struct {
	Level      int
	Attack     int
	Defense    int
	Multiplier float64
	Power      int
}

// ResolveOutput is the result of one attack
type ResolveOutput struct {
	Damage   int
	Critical bool
}

// Resolve computes
//
//	floor((((2*L/5 + 2) * P * A / D) / 50 + 2) * crit * multiplier)
//
// An immune multiplier always yields zero.
func (r *Resolver) Resolve(input ResolveInput) ResolveOutput {
	critical := r.source.Float64() < r.critChance

	if input.Multiplier <= 0 || input.Power <= 0 {
		return ResolveOutput{Damage: 0, Critical: critical}
	}

	critMult := 1.0
	if critical {
		critMult = r.critMultiplier
	}

	return ResolveOutput{
		Damage:   Formula(input.Level, input.Attack, input.Defense, input.Power, critMult*input.Multiplier),
		Critical: critical,
	}
}

// Formula is the deterministic part of Resolve
func Formula(level, attack, defense, power int, multiplier float64) int {
	if multiplier <= 0 || power <= 0 {
		return 0
	}
	defense = max(defense, 1)

	base := (float64(2*level)/5 + 2) * float64(power) * float64(attack) / float64(defense)
	base = base/50 + 2

	return max(int(math.Floor(base*multiplier)), 0)
}
