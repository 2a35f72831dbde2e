package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/idlemon-api/internal/engine/stats"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
)

func TestFormulas(t *testing.T) {
	testCases := []struct {
		name      string
		base      int
		level     int
		iv        int
		wantHP    int
		wantOther int
	}{
		// floor(2*45*5/100 + 5 + 10) = floor(4.5 + 15) = 19
		{"low level", 45, 5, 0, 19, 9},
		// 2*100*50/100 = 100
		{"level fifty", 100, 50, 0, 160, 105},
		{"level one", 1, 1, 0, 11, 5},
		{"zero base", 0, 10, 0, 20, 5},
		// (2*100+31)*50/100 = 115.5 -> 115
		{"perfect iv", 100, 50, 31, 175, 120},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantHP, stats.HP(tc.base, tc.level, tc.iv))
			assert.Equal(t, tc.wantOther, stats.Other(tc.base, tc.level, tc.iv))
		})
	}
}

func TestComputeUsesMatchingHiddenValue(t *testing.T) {
	base := entities.Stats{HP: 50, Attack: 50, Defense: 50, SpecialAttack: 50, SpecialDefense: 50, Speed: 50}
	ivs := entities.HiddenValues{0, 31, 0, 0, 0, 31}

	got := stats.Compute(base, 100, &ivs)

	assert.Equal(t, 210, got.HP)
	assert.Equal(t, 136, got.Attack)
	assert.Equal(t, 105, got.Defense)
	assert.Equal(t, 136, got.Speed)
	assert.Equal(t, stats.Compute(base, 100, &entities.HiddenValues{}), stats.Compute(base, 100, nil))
}

func TestLevelUpRecomputesWithoutHealing(t *testing.T) {
	young := &entities.Species{
		ID: "sproutle", Types: []entities.Element{entities.ElementGrass},
		BaseStats: entities.Stats{HP: 45, Attack: 49, Defense: 49, SpecialAttack: 65, SpecialDefense: 65, Speed: 45},
	}
	evolved := &entities.Species{
		ID: "bloomtusk", Types: []entities.Element{entities.ElementGrass, entities.ElementPoison},
		BaseStats: entities.Stats{HP: 60, Attack: 62, Defense: 63, SpecialAttack: 80, SpecialDefense: 80, Speed: 60},
	}

	c := stats.NewCombatant(young, 15, nil, "Sproutle")
	c.HP = 3

	derived := stats.LevelUp(evolved, c, 16)

	assert.Equal(t, "bloomtusk", c.SpeciesID)
	assert.Equal(t, 16, c.Level)
	assert.Equal(t, derived.HP, c.MaxHP)
	assert.Equal(t, 3, c.HP)
	assert.Len(t, c.Types, 2)

	c.Heal()
	assert.Equal(t, c.MaxHP, c.HP)
}
