// Package gamedata loads the static species, move and zone tables that the
// engine and the encounter generator read.
package gamedata

import (
	"embed"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/idlemon-api/internal/engine/damage"
	"github.com/KirkDiggler/idlemon-api/internal/entities"
	"github.com/KirkDiggler/idlemon-api/internal/errors"
)

//go:embed data/*.yaml
var files embed.FS

const (
	maxCaptureRate = 255
	maxDifficulty  = 5
)

// Dex is the loaded reference data. It is read-only after Load and safe for
// concurrent use.
type Dex struct {
	species map[string]*entities.Species
	moves   map[string]entities.Move
	pools   map[entities.Element][]string
	zones   map[string]*entities.Zone
}

var _ damage.MoveBook = (*Dex)(nil)

type speciesFile struct {
	Species []speciesRecord `yaml:"species"`
}

type speciesRecord struct {
	ID             string             `yaml:"id"`
	Name           string             `yaml:"name"`
	Types          []entities.Element `yaml:"types"`
	BaseStats      entities.Stats     `yaml:"base_stats"`
	CaptureRate    int                `yaml:"capture_rate"`
	BaseExperience int                `yaml:"base_experience"`
	Moves          []string           `yaml:"moves"`
	EvolvesTo      string             `yaml:"evolves_to"`
	EvolveLevel    int                `yaml:"evolve_level"`
}

type movesFile struct {
	Moves        []entities.Move               `yaml:"moves"`
	DefaultPools map[entities.Element][]string `yaml:"default_pools"`
}

type zonesFile struct {
	Zones []zoneRecord `yaml:"zones"`
}

type zoneRecord struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Difficulty int    `yaml:"difficulty"`
	MinLevel   int    `yaml:"min_level"`
	MaxLevel   int    `yaml:"max_level"`
	ShinyOdds  int    `yaml:"shiny_odds"`
	Encounters []struct {
		Species       string `yaml:"species"`
		Weight        int    `yaml:"weight"`
		EncounterType string `yaml:"encounter_type"`
	} `yaml:"encounters"`
}

// Load parses the embedded tables
func Load() (*Dex, error) {
	read := func(name string) ([]byte, error) {
		data, err := files.ReadFile("data/" + name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}
		return data, nil
	}

	speciesData, err := read("species.yaml")
	if err != nil {
		return nil, err
	}
	movesData, err := read("moves.yaml")
	if err != nil {
		return nil, err
	}
	zonesData, err := read("zones.yaml")
	if err != nil {
		return nil, err
	}

	return Parse(speciesData, movesData, zonesData)
}

// Parse builds a Dex from raw YAML and checks every cross reference
func Parse(speciesData, movesData, zonesData []byte) (*Dex, error) {
	var sf speciesFile
	if err := yaml.Unmarshal(speciesData, &sf); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse species")
	}
	var mf movesFile
	if err := yaml.Unmarshal(movesData, &mf); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse moves")
	}
	var zf zonesFile
	if err := yaml.Unmarshal(zonesData, &zf); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse zones")
	}

	title := cases.Title(language.English)
	d := &Dex{
		species: make(map[string]*entities.Species, len(sf.Species)),
		moves:   make(map[string]entities.Move, len(mf.Moves)),
		pools:   make(map[entities.Element][]string, len(mf.DefaultPools)),
		zones:   make(map[string]*entities.Zone, len(zf.Zones)),
	}

	for _, m := range mf.Moves {
		m.Name = title.String(m.Name)
		d.moves[m.ID] = m
	}
	for element, pool := range mf.DefaultPools {
		d.pools[element] = append([]string(nil), pool...)
	}

	for _, r := range sf.Species {
		d.species[r.ID] = &entities.Species{
			ID:             r.ID,
			Name:           title.String(r.Name),
			Types:          r.Types,
			BaseStats:      r.BaseStats,
			CaptureRate:    r.CaptureRate,
			BaseExperience: r.BaseExperience,
			Moves:          r.Moves,
			EvolvesTo:      r.EvolvesTo,
			EvolveLevel:    r.EvolveLevel,
		}
	}

	for _, r := range zf.Zones {
		zone := &entities.Zone{
			ID:         r.ID,
			Name:       title.String(r.Name),
			Difficulty: r.Difficulty,
			MinLevel:   r.MinLevel,
			MaxLevel:   r.MaxLevel,
			ShinyOdds:  r.ShinyOdds,
		}
		for _, e := range r.Encounters {
			zone.Encounters = append(zone.Encounters, entities.ZoneEncounter{
				SpeciesID:     e.Species,
				Weight:        e.Weight,
				EncounterType: e.EncounterType,
			})
		}
		d.zones[r.ID] = zone
	}

	if err := d.validate(len(sf.Species), len(mf.Moves), len(zf.Zones)); err != nil {
		return nil, errors.Wrap(err, "invalid game data")
	}

	return d, nil
}

func (d *Dex) validate(speciesCount, moveCount, zoneCount int) error {
	vb := errors.NewValidationBuilder()

	if len(d.species) != speciesCount {
		vb.Field("species", "contains duplicate ids")
	}
	if len(d.moves) != moveCount {
		vb.Field("moves", "contains duplicate ids")
	}
	if len(d.zones) != zoneCount {
		vb.Field("zones", "contains duplicate ids")
	}
	if speciesCount == 0 {
		vb.Field("species", "must not be empty")
	}
	if zoneCount == 0 {
		vb.Field("zones", "must not be empty")
	}

	for id, m := range d.moves {
		field := "moves." + id
		if !m.Type.Valid() {
			vb.Fieldf(field, "unknown type %q", m.Type)
		}
		if m.Power < 0 {
			vb.Field(field, "power must not be negative")
		}
	}

	for element, pool := range d.pools {
		field := "default_pools." + string(element)
		if !element.Valid() {
			vb.Fieldf(field, "unknown type %q", element)
		}
		if len(pool) == 0 {
			vb.Field(field, "must not be empty")
		}
		d.checkMoves(vb, field, pool)
	}
	// species without their own moves fall back to these
	for _, element := range entities.Elements {
		if _, ok := d.pools[element]; !ok {
			vb.Fieldf("default_pools", "missing pool for %q", element)
		}
	}

	for id, s := range d.species {
		field := "species." + id
		if len(s.Types) == 0 || len(s.Types) > 2 {
			vb.Fieldf(field, "must have one or two types, got %d", len(s.Types))
		}
		for _, t := range s.Types {
			if !t.Valid() {
				vb.Fieldf(field, "unknown type %q", t)
			}
		}
		if s.CaptureRate < 1 || s.CaptureRate > maxCaptureRate {
			vb.Fieldf(field, "capture rate must be between 1 and %d", maxCaptureRate)
		}
		if s.EvolvesTo != "" {
			if _, ok := d.species[s.EvolvesTo]; !ok {
				vb.Fieldf(field, "evolves to unknown species %q", s.EvolvesTo)
			}
		}
		d.checkMoves(vb, field, s.Moves)
	}

	for id, z := range d.zones {
		field := "zones." + id
		if z.MinLevel < 1 || z.MaxLevel > 100 || z.MinLevel > z.MaxLevel {
			vb.Fieldf(field, "invalid level range %d-%d", z.MinLevel, z.MaxLevel)
		}
		if z.Difficulty < 0 || z.Difficulty > maxDifficulty {
			vb.Fieldf(field, "difficulty must be between 0 and %d", maxDifficulty)
		}
		if z.TotalWeight() <= 0 {
			vb.Field(field, "needs at least one weighted encounter")
		}
		for _, e := range z.Encounters {
			if _, ok := d.species[e.SpeciesID]; !ok {
				vb.Fieldf(field, "unknown species %q", e.SpeciesID)
			}
			if e.Weight < 0 {
				vb.Fieldf(field, "negative weight for %q", e.SpeciesID)
			}
		}
	}

	return vb.Build()
}

func (d *Dex) checkMoves(vb *errors.ValidationBuilder, field string, ids []string) {
	for _, id := range ids {
		if _, ok := d.moves[id]; !ok {
			vb.Fieldf(field, "unknown move %q", id)
		}
	}
}

// Species looks up a species by id
func (d *Dex) Species(id string) (*entities.Species, error) {
	species, ok := d.species[id]
	if !ok {
		return nil, errors.NotFoundf("species %s not found", id).
			WithReason(errors.ReasonUnknownSpecies).
			WithMeta("species_id", id)
	}
	return species, nil
}

// Pool returns the attacker's species pool, or the default pool of its
// primary element when the species has none.
func (d *Dex) Pool(attacker *entities.Combatant) []entities.Move {
	if attacker == nil {
		return nil
	}

	var ids []string
	if species, ok := d.species[attacker.SpeciesID]; ok && len(species.Moves) > 0 {
		ids = species.Moves
	} else if len(attacker.Types) > 0 {
		ids = d.pools[attacker.Types[0]]
	}

	pool := make([]entities.Move, 0, len(ids))
	for _, id := range ids {
		pool = append(pool, d.moves[id])
	}
	return pool
}

// Zone looks up a zone by id
func (d *Dex) Zone(id string) (*entities.Zone, error) {
	zone, ok := d.zones[id]
	if !ok {
		return nil, errors.NotFoundf("zone %s not found", id).
			WithReason(errors.ReasonUnknownZone).
			WithMeta("zone_id", id)
	}
	return zone, nil
}
