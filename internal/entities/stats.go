package entities

// Stats holds the six stat dimensions. The same shape is used for species
// base stats and for a combatant's derived stats.
type Stats struct {
	HP             int `json:"hp" yaml:"hp"`
	Attack         int `json:"attack" yaml:"attack"`
	Defense        int `json:"defense" yaml:"defense"`
	SpecialAttack  int `json:"special_attack" yaml:"special_attack"`
	SpecialDefense int `json:"special_defense" yaml:"special_defense"`
	Speed          int `json:"speed" yaml:"speed"`
}

// BestAttack returns the higher of the physical and special attack stats
func (s Stats) BestAttack() int {
	return max(s.Attack, s.SpecialAttack)
}

// BestDefense returns the higher of the physical and special defense stats
func (s Stats) BestDefense() int {
	return max(s.Defense, s.SpecialDefense)
}

// Move is a damaging move a combatant can use
type Move struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Type  Element `json:"type" yaml:"type"`
	Power int     `json:"power" yaml:"power"`
}

// Species is immutable reference data for a kind of creature
type Species struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Types          []Element `json:"types"`
	BaseStats      Stats     `json:"base_stats"`
	CaptureRate    int       `json:"capture_rate"`
	BaseExperience int       `json:"base_experience"`
	// Moves is a species-specific pool; empty means the default pool of the
	// primary element applies.
	Moves       []string `json:"moves,omitempty"`
	EvolvesTo   string   `json:"evolves_to,omitempty"`
	EvolveLevel int      `json:"evolve_level,omitempty"`
}

// PrimaryType returns the first elemental type
func (s *Species) PrimaryType() Element {
	if len(s.Types) == 0 {
		return ElementNormal
	}
	return s.Types[0]
}
