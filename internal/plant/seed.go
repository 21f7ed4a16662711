package plant

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/growmate/internal/errors"
)

// SeedFile is the on-disk layout of a seed file:
//
//	plants:
//	  - id: "1"
//	    name: Rosie
//	    species: Rosa
//	    type: flowering
//	    last_watered: 2024-05-01
type SeedFile struct {
	Plants []Plant `yaml:"plants"`
}

// DefaultSeed returns the plants shown on first launch when no seed file is set.
// Watering dates are relative to now.
func DefaultSeed(now time.Time) []Plant {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return []Plant{
		{
			ID:          "1",
			Name:        "Rosie",
			Species:     "Rosa",
			Type:        TypeFlowering,
			AgeMonths:   6,
			Leaves:      32,
			Buds:        5,
			Flowers:     2,
			Photo:       "https://picsum.photos/seed/rosie/400/400",
			LastWatered: today.AddDate(0, 0, -1),
		},
		{
			ID:          "2",
			Name:        "Spike",
			Species:     "Echinocactus grusonii",
			Type:        TypeSucculent,
			AgeMonths:   12,
			Photo:       "https://picsum.photos/seed/spike/400/400",
			LastWatered: today.AddDate(0, 0, -7),
		},
	}
}

// LoadSeed reads plants from a YAML seed file. Plants without an ID get a
// fresh one; every plant is validated and IDs must be unique.
func LoadSeed(path string) ([]Plant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.SeedLoadFailed(path, err)
	}
	return ParseSeed(path, data)
}

// ParseSeed decodes seed YAML. name is used only for error messages.
func ParseSeed(name string, data []byte) ([]Plant, error) {
	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.SeedLoadFailed(name, err)
	}

	seen := make(map[string]bool, len(f.Plants))
	for i := range f.Plants {
		p := &f.Plants[i]
		if p.ID == "" {
			p.ID = NewID()
		}
		if seen[p.ID] {
			return nil, errors.SeedLoadFailed(name, fmt.Errorf("duplicate plant id %q", p.ID))
		}
		seen[p.ID] = true
		if err := p.Validate(); err != nil {
			return nil, errors.SeedLoadFailed(name, fmt.Errorf("plant %d: %w", i+1, err))
		}
	}
	return f.Plants, nil
}
