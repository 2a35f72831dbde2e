package entities

// Element is an elemental type shared by species and moves
type Element string

// Elements
const (
	ElementNormal   Element = "normal"
	ElementFire     Element = "fire"
	ElementWater    Element = "water"
	ElementGrass    Element = "grass"
	ElementElectric Element = "electric"
	ElementIce      Element = "ice"
	ElementFighting Element = "fighting"
	ElementPoison   Element = "poison"
	ElementGround   Element = "ground"
	ElementFlying   Element = "flying"
	ElementPsychic  Element = "psychic"
	ElementBug      Element = "bug"
	ElementRock     Element = "rock"
	ElementGhost    Element = "ghost"
	ElementDragon   Element = "dragon"
	ElementDark     Element = "dark"
	ElementSteel    Element = "steel"
	ElementFairy    Element = "fairy"
)

// Elements lists every known element in chart order
var Elements = []Element{
	ElementNormal, ElementFire, ElementWater, ElementGrass, ElementElectric, ElementIce,
	ElementFighting, ElementPoison, ElementGround, ElementFlying, ElementPsychic, ElementBug,
	ElementRock, ElementGhost, ElementDragon, ElementDark, ElementSteel, ElementFairy,
}

// Valid reports whether e is a known element
func (e Element) Valid() bool {
	for _, known := range Elements {
		if e == known {
			return true
		}
	}
	return false
}

// Effectiveness is the display category of a type multiplier
type Effectiveness string

// Effectiveness categories
const (
	EffectivenessSuper   Effectiveness = "super"
	EffectivenessNeutral Effectiveness = "neutral"
	EffectivenessNotVery Effectiveness = "not_very"
	EffectivenessImmune  Effectiveness = "immune"
)
