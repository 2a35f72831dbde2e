// Package ivgen generates the hidden values of newly created creatures.
//
// Each value is drawn from a bell curve over [floor, ceiling] with two flat
// extremes carved out of the same uniform draw: a 4% chance of a perfect 31
// and, when the floor is zero, a further 1% chance of a zero.
package ivgen

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/rng"
)

// Draw probabilities
const (
	PerfectChance = 0.04
	ZeroChance    = 0.01
)

// Floors and guarantees per encounter context
const (
	MaxZoneModifier       = 5
	MaxFloor              = 30
	ShinyFloor            = 5
	GiftFloor             = 3
	LegendaryFloor        = 10
	ShinyPerfectCount     = 3
	LegendaryPerfectCount = 3
)

// EncounterType is how a creature came into the world
type EncounterType string

// Encounter types
const (
	EncounterWild      EncounterType = "wild"
	EncounterGift      EncounterType = "gift"
	EncounterLegendary EncounterType = "legendary"
	EncounterBred      EncounterType = "bred"
)

// Options configures GenerateAll
type Options struct {
	Shiny         bool
	ZoneModifier  int
	EncounterType EncounterType
	// GuaranteedFloor and GuaranteedPerfectCount raise the computed floor and
	// perfect guarantee; they never lower them.
	GuaranteedFloor        int
	GuaranteedPerfectCount int
}

// ConstraintViolation is the panic value for impossible generation bounds.
// It only arises from programmer error.
type ConstraintViolation struct {
	Floor   int
	Ceiling int
}

func (c ConstraintViolation) Error() string {
	return fmt.Sprintf("ivgen: cannot generate within floor %d and ceiling %d", c.Floor, c.Ceiling)
}

// Generator draws hidden values from an injected source
type Generator struct {
	source rng.Source
}

// New creates a generator
func New(source rng.Source) *Generator {
	return &Generator{source: source}
}

// Generate draws one value in [floor, ceiling]
func (g *Generator) Generate(floor, ceiling int) int {
	if floor > ceiling || floor < entities.HiddenValueMin || ceiling > entities.HiddenValueMax {
		panic(ConstraintViolation{Floor: floor, Ceiling: ceiling})
	}

	u := g.source.Float64()
	if ceiling == entities.HiddenValueMax && u < PerfectChance {
		return entities.HiddenValueMax
	}
	if floor == 0 && u < PerfectChance+ZeroChance {
		return 0
	}

	x := kumaraswamy22(g.source.Float64())
	value := floor + int(math.Round(x*float64(ceiling-floor)))
	return min(max(value, floor), ceiling)
}

// GenerateAll draws all six values and then forces enough non-perfect values
// to 31 to satisfy the perfect guarantee.
func (g *Generator) GenerateAll(opts Options) entities.HiddenValues {
	floor := EffectiveFloor(opts)
	perfect := PerfectGuarantee(opts)

	var hv entities.HiddenValues
	for i := range hv {
		hv[i] = g.Generate(floor, entities.HiddenValueMax)
	}

	missing := perfect - hv.PerfectCount()
	if missing <= 0 {
		return hv
	}

	candidates := make([]int, 0, entities.HiddenValueCount)
	for i, v := range hv {
		if v != entities.HiddenValueMax {
			candidates = append(candidates, i)
		}
	}
	// partial Fisher-Yates: uniform choice without replacement
	for i := 0; i < missing; i++ {
		j := i + g.source.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		hv[candidates[i]] = entities.HiddenValueMax
	}
	return hv
}

// EffectiveFloor returns the shared floor for all six draws
func EffectiveFloor(opts Options) int {
	floor := clamp(opts.GuaranteedFloor, 0, MaxFloor)
	switch opts.EncounterType {
	case EncounterLegendary:
		floor = max(floor, LegendaryFloor)
	case EncounterGift:
		floor = max(floor, GiftFloor)
	}
	if opts.Shiny {
		floor = max(floor, ShinyFloor)
	}
	floor += clamp(opts.ZoneModifier, 0, MaxZoneModifier)
	return min(floor, MaxFloor)
}

// PerfectGuarantee returns how many values must end up at 31
func PerfectGuarantee(opts Options) int {
	perfect := clamp(opts.GuaranteedPerfectCount, 0, entities.HiddenValueCount)
	if opts.EncounterType == EncounterLegendary {
		perfect = max(perfect, LegendaryPerfectCount)
	}
	if opts.Shiny {
		perfect = max(perfect, ShinyPerfectCount)
	}
	return perfect
}

// kumaraswamy22 maps a uniform draw through the inverse CDF of a
// Kumaraswamy(2, 2) distribution, a closed-form stand-in for Beta(2, 2).
func kumaraswamy22(v float64) float64 {
	return math.Sqrt(1 - math.Sqrt(1-v))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
