// Package plant defines the Plant entity and the ordered in-memory repository
// that owns every plant for the lifetime of the process.
package plant

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/growmate/internal/errors"
)

// DateLayout is the calendar date format used for LastWatered in forms and seed files.
const DateLayout = "2006-01-02"

// Type is the categorical variant of a plant.
type Type string

const (
	TypeFlowering    Type = "flowering"
	TypeNonFlowering Type = "non-flowering"
	TypeSucculent    Type = "succulent"
	TypeFern         Type = "fern"
	TypeHerb         Type = "herb"
)

// Types lists every plant type in display order.
var Types = []Type{TypeFlowering, TypeNonFlowering, TypeSucculent, TypeFern, TypeHerb}

// Valid reports whether t is one of the known plant types.
func (t Type) Valid() bool {
	switch t {
	case TypeFlowering, TypeNonFlowering, TypeSucculent, TypeFern, TypeHerb:
		return true
	default:
		return false
	}
}

// Label returns a human-readable name for the type.
func (t Type) Label() string {
	switch t {
	case TypeFlowering:
		return "Flowering"
	case TypeNonFlowering:
		return "Non-flowering"
	case TypeSucculent:
		return "Succulent"
	case TypeFern:
		return "Fern"
	case TypeHerb:
		return "Herb"
	default:
		return string(t)
	}
}

// Plant is a single tracked plant. ID is immutable once the plant has been saved.
type Plant struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Species     string    `yaml:"species"`
	Type        Type      `yaml:"type"`
	AgeMonths   int       `yaml:"age_months"`
	Leaves      int       `yaml:"leaves"`
	Buds        int       `yaml:"buds"`
	Flowers     int       `yaml:"flowers"`
	Photo       string    `yaml:"photo,omitempty"`        // Opaque image reference, empty when absent
	LastWatered time.Time `yaml:"last_watered,omitempty"` // Zero when never recorded
}

// NewID returns a fresh plant identifier.
func NewID() string {
	return uuid.NewString()
}

// HasPhoto reports whether the plant carries an image reference.
func (p Plant) HasPhoto() bool {
	return p.Photo != ""
}

// Watered reports whether a watering date has been recorded.
func (p Plant) Watered() bool {
	return !p.LastWatered.IsZero()
}

// DaysSinceWatered returns whole calendar days between LastWatered and now.
// The second return is false when no watering date is recorded. Future dates
// yield a negative count.
func (p Plant) DaysSinceWatered(now time.Time) (int, bool) {
	if !p.Watered() {
		return 0, false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	wy, wm, wd := p.LastWatered.Date()
	watered := time.Date(wy, wm, wd, 0, 0, 0, 0, time.UTC)
	return int(today.Sub(watered).Hours() / 24), true
}

// NeedsWater reports whether the plant has gone at least thresholdDays without
// water. Plants with no recorded watering always need water.
func (p Plant) NeedsWater(now time.Time, thresholdDays int) bool {
	days, ok := p.DaysSinceWatered(now)
	if !ok {
		return true
	}
	return days >= thresholdDays
}

// LastWateredString formats LastWatered with DateLayout, or "" when unset.
func (p Plant) LastWateredString() string {
	if !p.Watered() {
		return ""
	}
	return p.LastWatered.Format(DateLayout)
}

// Summary returns a short multi-line description suitable for sharing.
func (p Plant) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", p.Name, p.Species)
	fmt.Fprintf(&b, "Type: %s, age %d months\n", p.Type.Label(), p.AgeMonths)
	fmt.Fprintf(&b, "Leaves: %d  Buds: %d  Flowers: %d\n", p.Leaves, p.Buds, p.Flowers)
	if p.Watered() {
		fmt.Fprintf(&b, "Last watered: %s\n", p.LastWateredString())
	}
	return b.String()
}

// Validate checks the field constraints of a plant.
func (p Plant) Validate() error {
	if p.ID == "" {
		return errors.PlantInvalid("id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.PlantInvalid("name is required")
	}
	if !p.Type.Valid() {
		return errors.PlantInvalid(fmt.Sprintf("unknown plant type %q", p.Type))
	}
	if p.AgeMonths < 0 {
		return errors.PlantInvalid("age must not be negative")
	}
	if p.Leaves < 0 || p.Buds < 0 || p.Flowers < 0 {
		return errors.PlantInvalid("leaf, bud and flower counts must not be negative")
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD string. An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.PlantInvalid(fmt.Sprintf("last watered %q is not a YYYY-MM-DD date", s))
	}
	return t, nil
}
