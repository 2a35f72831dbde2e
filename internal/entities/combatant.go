package entities

// Combatant is a battle snapshot of one creature. Sessions own their
// combatants outright; a combatant is never shared between sessions.
type Combatant struct {
	SpeciesID    string        `json:"species_id"`
	Name         string        `json:"name"`
	Level        int           `json:"level"`
	Types        []Element     `json:"types"`
	Stats        Stats         `json:"stats"`
	HP           int           `json:"hp"`
	MaxHP        int           `json:"max_hp"`
	HiddenValues *HiddenValues `json:"hidden_values,omitempty"`
	Shiny        bool          `json:"shiny,omitempty"`
	CaptureRate  int           `json:"capture_rate,omitempty"`
}

// Clone returns a deep copy
func (c *Combatant) Clone() *Combatant {
	if c == nil {
		return nil
	}
	out := *c
	out.Types = append([]Element(nil), c.Types...)
	if c.HiddenValues != nil {
		hv := *c.HiddenValues
		out.HiddenValues = &hv
	}
	return &out
}

// Heal restores HP to the maximum
func (c *Combatant) Heal() {
	c.HP = c.MaxHP
}

// Creature is a captured creature as handed to the persistence layer
type Creature struct {
	ID           string       `json:"id"`
	SpeciesID    string       `json:"species_id"`
	Name         string       `json:"name"`
	Level        int          `json:"level"`
	HiddenValues HiddenValues `json:"hidden_values"`
	Grade        Grade        `json:"grade"`
	Stats        Stats        `json:"stats"`
	Shiny        bool         `json:"shiny,omitempty"`
}
