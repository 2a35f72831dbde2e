package damage_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/idlemon-api/internal/engine/damage"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
	"github.com/KirkDiggler/idlemon-api/internal/pkg/rng"
)

var (
	ember      = entities.Move{ID: "ember", Name: "Ember", Type: entities.ElementFire, Power: 40}
	waterGun   = entities.Move{ID: "water-gun", Name: "Water Gun", Type: entities.ElementWater, Power: 40}
	tackle     = entities.Move{ID: "tackle", Name: "Tackle", Type: entities.ElementNormal, Power: 40}
	thunder    = entities.Move{ID: "thundershock", Name: "Thundershock", Type: entities.ElementElectric, Power: 40}
	lick       = entities.Move{ID: "lick", Name: "Lick", Type: entities.ElementGhost, Power: 30}
	hydroPump  = entities.Move{ID: "hydro-pump", Name: "Hydro Pump", Type: entities.ElementWater, Power: 110}
	bubble     = entities.Move{ID: "bubble", Name: "Bubble", Type: entities.ElementWater, Power: 40}
	growlNoDmg = entities.Move{ID: "growl", Name: "Growl", Type: entities.ElementNormal, Power: 0}
)

type DamageTestSuite struct {
	suite.Suite
}

func TestDamageTestSuite(t *testing.T) {
	suite.Run(t, new(DamageTestSuite))
}

func (s *DamageTestSuite) TestSelectMove() {
	testCases := []struct {
		name           string
		pool           []entities.Move
		defender       []entities.Element
		wantMove       string
		wantMultiplier float64
	}{
		{
			name:           "super effective wins",
			pool:           []entities.Move{tackle, ember},
			defender:       []entities.Element{entities.ElementGrass},
			wantMove:       "ember",
			wantMultiplier: 2,
		},
		{
			name:           "dual type product",
			pool:           []entities.Move{tackle, ember},
			defender:       []entities.Element{entities.ElementGrass, entities.ElementBug},
			wantMove:       "ember",
			wantMultiplier: 4,
		},
		{
			name:           "power beats weaker neutral move",
			pool:           []entities.Move{bubble, hydroPump},
			defender:       []entities.Element{entities.ElementNormal},
			wantMove:       "hydro-pump",
			wantMultiplier: 1,
		},
		{
			name:           "tie goes to first",
			pool:           []entities.Move{waterGun, bubble},
			defender:       []entities.Element{entities.ElementFire},
			wantMove:       "water-gun",
			wantMultiplier: 2,
		},
		{
			name:           "nothing scores falls back to first",
			pool:           []entities.Move{tackle, lick},
			defender:       []entities.Element{entities.ElementGhost, entities.ElementNormal},
			wantMove:       "tackle",
			wantMultiplier: 0,
		},
		{
			name:           "ground immune to electric",
			pool:           []entities.Move{thunder, tackle},
			defender:       []entities.Element{entities.ElementGround},
			wantMove:       "tackle",
			wantMultiplier: 1,
		},
		{
			name:           "zero power never beats damaging move",
			pool:           []entities.Move{growlNoDmg, tackle},
			defender:       []entities.Element{entities.ElementNormal},
			wantMove:       "tackle",
			wantMultiplier: 1,
		},
		{
			name:           "empty pool uses fallback",
			pool:           nil,
			defender:       []entities.Element{entities.ElementFire},
			wantMove:       damage.Fallback.ID,
			wantMultiplier: 1,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got := damage.SelectMove(tc.pool, tc.defender)
			s.Equal(tc.wantMove, got.Move.ID)
			s.Equal(tc.wantMultiplier, got.Multiplier)
		})
	}
}

func (s *DamageTestSuite) TestFormulaScenarioA() {
	s.Equal(74, damage.Formula(50, 100, 50, 40, 2.0))
}

func (s *DamageTestSuite) TestResolve() {
	testCases := []struct {
		name         string
		roll         float64
		input        damage.ResolveInput
		wantDamage   int
		wantCritical bool
	}{
		{
			name:       "scenario A without crit",
			roll:       0.9,
			input:      damage.ResolveInput{Level: 50, Attack: 100, Defense: 50, Multiplier: 2, Power: 40},
			wantDamage: 74,
		},
		{
			name:         "scenario A with crit",
			roll:         0.01,
			input:        damage.ResolveInput{Level: 50, Attack: 100, Defense: 50, Multiplier: 2, Power: 40},
			wantDamage:   111,
			wantCritical: true,
		},
		{
			name:       "quarter effective",
			roll:       0.9,
			input:      damage.ResolveInput{Level: 50, Attack: 100, Defense: 50, Multiplier: 0.25, Power: 40},
			wantDamage: 9,
		},
		{
			name:         "immune stays zero on crit",
			roll:         0.0,
			input:        damage.ResolveInput{Level: 100, Attack: 999, Defense: 1, Multiplier: 0, Power: 250},
			wantDamage:   0,
			wantCritical: true,
		},
		{
			name:       "zero defense treated as one",
			roll:       0.9,
			input:      damage.ResolveInput{Level: 5, Attack: 10, Defense: 0, Multiplier: 1, Power: 40},
			wantDamage: 34,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			source := rng.NewSequence().WithFloats(tc.roll)
			resolver, err := damage.NewResolver(&damage.Config{
				Source:     source,
				CritChance: damage.DefaultCritChance,
			})
			s.Require().NoError(err)

			got := resolver.Resolve(tc.input)
			s.Equal(tc.wantDamage, got.Damage)
			s.Equal(tc.wantCritical, got.Critical)

			floats, _ := source.Remaining()
			s.Zero(floats, "exactly one crit draw per attack")
		})
	}
}

func (s *DamageTestSuite) TestImmunityAlwaysZero() {
	resolver, err := damage.NewResolver(&damage.Config{Source: rng.NewPCG(1), CritChance: 0.5})
	s.Require().NoError(err)

	for level := 1; level <= 100; level += 9 {
		for _, power := range []int{10, 40, 120, 250} {
			got := resolver.Resolve(damage.ResolveInput{
				Level: level, Attack: level * 3, Defense: 20, Multiplier: 0, Power: power,
			})
			s.Zero(got.Damage)
		}
	}
}

func (s *DamageTestSuite) TestNewResolverValidation() {
	_, err := damage.NewResolver(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = damage.NewResolver(&damage.Config{CritChance: 2, CritMultiplier: 0.5})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Source")
	s.Contains(err.Error(), "CritChance")
	s.Contains(err.Error(), "CritMultiplier")
}
