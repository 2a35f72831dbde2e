package entities

// Zone is an area that spawns wild encounters
type Zone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Difficulty raises the hidden value floor of spawns, 0 to 5
	Difficulty int `json:"difficulty"`
	MinLevel   int `json:"min_level"`
	MaxLevel   int `json:"max_level"`
	// ShinyOdds is one in N; zero disables shinies
	ShinyOdds  int             `json:"shiny_odds"`
	Encounters []ZoneEncounter `json:"encounters"`
}

// ZoneEncounter is one weighted entry of a zone's spawn table
type ZoneEncounter struct {
	SpeciesID     string `json:"species_id"`
	Weight        int    `json:"weight"`
	EncounterType string `json:"encounter_type,omitempty"`
}

// TotalWeight sums the spawn weights
func (z *Zone) TotalWeight() int {
	total := 0
	for _, e := range z.Encounters {
		total += e.Weight
	}
	return total
}
