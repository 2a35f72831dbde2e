// Package stats computes derived creature stats from base stats, level and
// hidden values.
package stats

import "github.com/KirkDiggler/idlemon-api/internal/entities"

// HP returns floor((2*base+iv)*level/100 + level + 10)
func HP(base, level, iv int) int {
	return (2*base+iv)*level/100 + level + 10
}

// Other returns floor((2*base+iv)*level/100 + 5) for every non-HP stat
func Other(base, level, iv int) int {
	return (2*base+iv)*level/100 + 5
}

// Compute derives all six stats. A nil ivs counts as all zeros.
func Compute(base entities.Stats, level int, ivs *entities.HiddenValues) entities.Stats {
	var hv entities.HiddenValues
	if ivs != nil {
		hv = *ivs
	}
	return entities.Stats{
		HP:             HP(base.HP, level, hv[entities.StatHP]),
		Attack:         Other(base.Attack, level, hv[entities.StatAttack]),
		Defense:        Other(base.Defense, level, hv[entities.StatDefense]),
		SpecialAttack:  Other(base.SpecialAttack, level, hv[entities.StatSpecialAttack]),
		SpecialDefense: Other(base.SpecialDefense, level, hv[entities.StatSpecialDefense]),
		Speed:          Other(base.Speed, level, hv[entities.StatSpeed]),
	}
}

// NewCombatant builds a full-health battle snapshot of a species. An empty
// displayName falls back to the species name.
func NewCombatant(species *entities.Species, level int, ivs *entities.HiddenValues, displayName string) *entities.Combatant {
	derived := Compute(species.BaseStats, level, ivs)
	if displayName == "" {
		displayName = species.Name
	}
	c := &entities.Combatant{
		SpeciesID:   species.ID,
		Name:        displayName,
		Level:       level,
		Types:       append([]entities.Element(nil), species.Types...),
		Stats:       derived,
		HP:          derived.HP,
		MaxHP:       derived.HP,
		CaptureRate: species.CaptureRate,
	}
	if ivs != nil {
		hv := *ivs
		c.HiddenValues = &hv
	}
	return c
}

// LevelUp recomputes a combatant's stats for a new level from the given
// species, which may be the evolved form. It does not touch current HP; the
// caller applies the full heal with Combatant.Heal.
func LevelUp(species *entities.Species, c *entities.Combatant, level int) entities.Stats {
	derived := Compute(species.BaseStats, level, c.HiddenValues)
	c.SpeciesID = species.ID
	c.Level = level
	c.Types = append([]entities.Element(nil), species.Types...)
	c.Stats = derived
	c.MaxHP = derived.HP
	c.CaptureRate = species.CaptureRate
	return derived
}
