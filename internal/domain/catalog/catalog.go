package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/diegoclair/shift-reminder-bot/internal/domain"
	"github.com/diegoclair/shift-reminder-bot/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

const maxShiftNameLen = 32

// EntryDef is one entry as written in a catalog file
type EntryDef struct {
	Time  string `yaml:"time"`
	Label string `yaml:"label"`
}

// ShiftDef is one shift as written in a catalog file
type ShiftDef struct {
	Name    string     `yaml:"name"`
	Title   string     `yaml:"title"`
	Entries []EntryDef `yaml:"entries"`
}

type file struct {
	Shifts []ShiftDef `yaml:"shifts"`
}

// Catalog is the immutable table of reminder entries grouped by shift.
// Entries are kept in definition order and are not sorted by time.
type Catalog struct {
	order   []entity.Shift
	titles  map[entity.Shift]string
	entries map[entity.Shift][]entity.ScheduleEntry
}

// New validates the definitions and builds a catalog
func New(defs []ShiftDef) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog defines no shifts")
	}

	c := &Catalog{
		titles:  make(map[entity.Shift]string, len(defs)),
		entries: make(map[entity.Shift][]entity.ScheduleEntry, len(defs)),
	}

	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		if err := validateShiftName(name); err != nil {
			return nil, err
		}

		shift := entity.Shift(name)
		if _, exists := c.entries[shift]; exists {
			return nil, fmt.Errorf("shift %q is defined twice", name)
		}
		if len(def.Entries) == 0 {
			return nil, fmt.Errorf("shift %q has no entries", name)
		}

		entries := make([]entity.ScheduleEntry, 0, len(def.Entries))
		for i, e := range def.Entries {
			tod, err := entity.ParseTimeOfDay(e.Time)
			if err != nil {
				return nil, fmt.Errorf("shift %q entry %d: %w", name, i+1, err)
			}

			label := strings.TrimSpace(e.Label)
			if label == "" {
				return nil, fmt.Errorf("shift %q entry %d: label is empty", name, i+1)
			}

			entries = append(entries, entity.ScheduleEntry{
				Shift: shift,
				ID:    entity.EntryID(i),
				Time:  tod,
				Label: label,
			})
		}

		title := strings.TrimSpace(def.Title)
		if title == "" {
			title = name
		}

		c.order = append(c.order, shift)
		c.titles[shift] = title
		c.entries[shift] = entries
	}

	return c, nil
}

// Parse builds a catalog from its YAML form
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Shifts)
}

// Load reads a catalog file. An empty path selects the bundled catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Default returns the bundled pagi/siang/malam catalog
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Shifts returns every shift in definition order
func (c *Catalog) Shifts() []entity.Shift {
	shifts := make([]entity.Shift, len(c.order))
	copy(shifts, c.order)
	return shifts
}

// Has reports whether the shift is defined
func (c *Catalog) Has(shift entity.Shift) bool {
	_, ok := c.entries[shift]
	return ok
}

// Title returns the display title of a shift, or its name when unknown
func (c *Catalog) Title(shift entity.Shift) string {
	if title, ok := c.titles[shift]; ok {
		return title
	}
	return string(shift)
}

// Entries returns a copy of the shift's entries in definition order
func (c *Catalog) Entries(shift entity.Shift) ([]entity.ScheduleEntry, error) {
	entries, ok := c.entries[shift]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidShift, shift)
	}

	out := make([]entity.ScheduleEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Entry looks up a single entry by its position
func (c *Catalog) Entry(shift entity.Shift, id entity.EntryID) (entity.ScheduleEntry, error) {
	entries, ok := c.entries[shift]
	if !ok {
		return entity.ScheduleEntry{}, fmt.Errorf("%w: %q", domain.ErrInvalidShift, shift)
	}
	if id < 0 || int(id) >= len(entries) {
		return entity.ScheduleEntry{}, fmt.Errorf("%w: %s #%d", domain.ErrInvalidEntry, shift, id)
	}
	return entries[id], nil
}

func validateShiftName(name string) error {
	if name == "" {
		return fmt.Errorf("shift name is empty")
	}
	if len(name) > maxShiftNameLen {
		return fmt.Errorf("shift name %q is longer than %d characters", name, maxShiftNameLen)
	}
	if strings.ContainsAny(name, ": \t") || name != strings.ToLower(name) {
		return fmt.Errorf("shift name %q must be lowercase without spaces or colons", name)
	}
	return nil
}
