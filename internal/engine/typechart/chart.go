// Package typechart holds the static elemental effectiveness table.
package typechart

import "github.com/KirkDiggler/idlemon-api/internal/entities"

// Chart maps an attacking element to per-defending-element multipliers.
// Pairs that are absent are neutral.
type Chart map[entities.Element]map[entities.Element]float64

type element = entities.Element

const (
	normal   = entities.ElementNormal
	fire     = entities.ElementFire
	water    = entities.ElementWater
	grass    = entities.ElementGrass
	electric = entities.ElementElectric
	ice      = entities.ElementIce
	fighting = entities.ElementFighting
	poison   = entities.ElementPoison
	ground   = entities.ElementGround
	flying   = entities.ElementFlying
	psychic  = entities.ElementPsychic
	bug      = entities.ElementBug
	rock     = entities.ElementRock
	ghost    = entities.ElementGhost
	dragon   = entities.ElementDragon
	dark     = entities.ElementDark
	steel    = entities.ElementSteel
	fairy    = entities.ElementFairy
)

// Standard is the eighteen-element chart
var Standard = Chart{
	normal:   {rock: 0.5, ghost: 0, steel: 0.5},
	fire:     {fire: 0.5, water: 0.5, grass: 2, ice: 2, bug: 2, rock: 0.5, dragon: 0.5, steel: 2},
	water:    {fire: 2, water: 0.5, grass: 0.5, ground: 2, rock: 2, dragon: 0.5},
	electric: {water: 2, electric: 0.5, grass: 0.5, ground: 0, flying: 2, dragon: 0.5},
	grass: {
		fire: 0.5, water: 2, grass: 0.5, poison: 0.5, ground: 2, flying: 0.5,
		bug: 0.5, rock: 2, dragon: 0.5, steel: 0.5,
	},
	ice: {fire: 0.5, water: 0.5, grass: 2, ice: 0.5, ground: 2, flying: 2, dragon: 2, steel: 0.5},
	fighting: {
		normal: 2, ice: 2, poison: 0.5, flying: 0.5, psychic: 0.5, bug: 0.5,
		rock: 2, ghost: 0, dark: 2, steel: 2, fairy: 0.5,
	},
	poison:  {grass: 2, poison: 0.5, ground: 0.5, rock: 0.5, ghost: 0.5, steel: 0, fairy: 2},
	ground:  {fire: 2, electric: 2, grass: 0.5, poison: 2, flying: 0, bug: 0.5, rock: 2, steel: 2},
	flying:  {electric: 0.5, grass: 2, fighting: 2, bug: 2, rock: 0.5, steel: 0.5},
	psychic: {fighting: 2, poison: 2, psychic: 0.5, dark: 0, steel: 0.5},
	bug: {
		fire: 0.5, grass: 2, fighting: 0.5, poison: 0.5, flying: 0.5, psychic: 2,
		ghost: 0.5, dark: 2, steel: 0.5, fairy: 0.5,
	},
	rock:   {fire: 2, ice: 2, fighting: 0.5, ground: 0.5, flying: 2, bug: 2, steel: 0.5},
	ghost:  {normal: 0, psychic: 2, ghost: 2, dark: 0.5},
	dragon: {dragon: 2, steel: 0.5, fairy: 0},
	dark:   {fighting: 0.5, psychic: 2, ghost: 2, dark: 0.5, fairy: 0.5},
	steel:  {fire: 0.5, water: 0.5, electric: 0.5, ice: 2, rock: 2, steel: 0.5, fairy: 2},
	fairy:  {fire: 0.5, fighting: 2, poison: 0.5, dragon: 2, dark: 2, steel: 0.5},
}

// Factor returns the single-type multiplier for one pairing
func (c Chart) Factor(attack, defend element) float64 {
	if row, ok := c[attack]; ok {
		if mult, ok := row[defend]; ok {
			return mult
		}
	}
	return 1.0
}

// Effectiveness multiplies the factor for each defending type, using at most
// two. Empty entries stand for an absent second type.
func (c Chart) Effectiveness(attack element, defend ...element) float64 {
	multiplier := 1.0
	used := 0
	for _, d := range defend {
		if d == "" {
			continue
		}
		if used == 2 {
			break
		}
		multiplier *= c.Factor(attack, d)
		used++
	}
	return multiplier
}

// Effectiveness looks up the Standard chart
func Effectiveness(attack element, defend ...element) float64 {
	return Standard.Effectiveness(attack, defend...)
}

// Categorize maps a multiplier onto its display category
func Categorize(multiplier float64) entities.Effectiveness {
	switch {
	case multiplier == 0:
		return entities.EffectivenessImmune
	case multiplier >= 2:
		return entities.EffectivenessSuper
	case multiplier < 1:
		return entities.EffectivenessNotVery
	default:
		return entities.EffectivenessNeutral
	}
}
