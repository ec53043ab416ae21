// Package world provides the tile-grid world model: campaigns, levels, and
// fields, with whole-object YAML persistence.
package world

import "fmt"

// FieldType determines the optical and physical properties of a field's ground.
type FieldType string

// The complete set of field types.
const (
	Dirt        FieldType = "dirt"
	Grass       FieldType = "grass"
	Hole        FieldType = "hole"
	Mud         FieldType = "mud"
	Quicksand   FieldType = "quicksand"
	Sand        FieldType = "sand"
	Stone       FieldType = "stone"
	StoneWall   FieldType = "stone_wall"
	SwampWater  FieldType = "swamp_water"
	Water       FieldType = "water"
	Wood        FieldType = "wood"
	WoodenFence FieldType = "wooden_fence"
)

// AllFieldTypes lists every legal field type.
var AllFieldTypes = []FieldType{
	Dirt, Grass, Hole, Mud, Quicksand, Sand,
	Stone, StoneWall, SwampWater, Water, Wood, WoodenFence,
}

// IsValid reports whether f is a known field type.
func (f FieldType) IsValid() bool {
	for _, known := range AllFieldTypes {
		if f == known {
			return true
		}
	}
	return false
}

// Field is a single tile of a level.
type Field struct {
	// Type determines the ground's properties.
	Type FieldType `yaml:"type"`
	// Height is used for collision detection.
	Height uint8 `yaml:"height"`
	// ContainedEntity is the ID of the entity standing on this field, if any.
	ContainedEntity *int `yaml:"contained_entity,omitempty"`
}

// Point is a (column, row) position on a level grid.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Level is a section of a campaign. The character spawns at StartingPoint and
// must reach EndPoint for the next level to begin.
type Level struct {
	// Name is the title of the level.
	Name string `yaml:"name"`
	// StartingPoint is the entry point of the character.
	StartingPoint Point `yaml:"starting_point"`
	// EndPoint is the point where the level is finished.
	EndPoint Point `yaml:"end_point"`
	// Fields holds the tile rows the level consists of, indexed [row][column].
	Fields [][]Field `yaml:"fields"`
}

// FieldAt returns the field at p.
//
// Postcondition: returns (field, true) when p lies inside the grid, or
// (Field{}, false) otherwise.
func (l *Level) FieldAt(p Point) (Field, bool) {
	if p.Y < 0 || p.Y >= len(l.Fields) {
		return Field{}, false
	}
	row := l.Fields[p.Y]
	if p.X < 0 || p.X >= len(row) {
		return Field{}, false
	}
	return row[p.X], true
}

// Validate checks level invariants: a non-empty name, a non-empty rectangular
// grid, valid field types, and start/end points inside the grid.
//
// Postcondition: returns nil if valid, or an error describing the first violation.
func (l *Level) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("level name must not be empty")
	}
	if len(l.Fields) == 0 {
		return fmt.Errorf("level %q: must contain at least one row", l.Name)
	}
	width := len(l.Fields[0])
	if width == 0 {
		return fmt.Errorf("level %q: rows must not be empty", l.Name)
	}
	for y, row := range l.Fields {
		if len(row) != width {
			return fmt.Errorf("level %q: row %d has width %d, want %d", l.Name, y, len(row), width)
		}
		for x, f := range row {
			if !f.Type.IsValid() {
				return fmt.Errorf("level %q: field (%d,%d) has unknown type %q", l.Name, x, y, f.Type)
			}
		}
	}
	if _, ok := l.FieldAt(l.StartingPoint); !ok {
		return fmt.Errorf("level %q: starting point (%d,%d) outside the grid",
			l.Name, l.StartingPoint.X, l.StartingPoint.Y)
	}
	if _, ok := l.FieldAt(l.EndPoint); !ok {
		return fmt.Errorf("level %q: end point (%d,%d) outside the grid",
			l.Name, l.EndPoint.X, l.EndPoint.Y)
	}
	return nil
}

// Campaign is an ordered collection of levels forming a larger adventure.
type Campaign struct {
	// Title is the display title of the campaign.
	Title string `yaml:"title"`
	// Levels holds the levels in play order.
	Levels []*Level `yaml:"levels"`
}

// NewCampaign creates an empty Campaign with the given title.
func NewCampaign(title string) *Campaign {
	return &Campaign{Title: title}
}

// AddLevel appends level to the campaign.
//
// Precondition: level must not be nil.
func (c *Campaign) AddLevel(level *Level) {
	if level == nil {
		panic("world: AddLevel called with nil level")
	}
	c.Levels = append(c.Levels, level)
}

// Level returns the level with the given name, if present.
//
// Postcondition: returns (level, true) if found, or (nil, false) otherwise.
func (c *Campaign) Level(name string) (*Level, bool) {
	for _, l := range c.Levels {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// Validate checks campaign invariants.
//
// Postcondition: returns nil if valid, or an error describing the first violation.
func (c *Campaign) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("campaign title must not be empty")
	}
	seen := make(map[string]bool, len(c.Levels))
	for i, l := range c.Levels {
		if l == nil {
			return fmt.Errorf("campaign %q: level %d is nil", c.Title, i)
		}
		if err := l.Validate(); err != nil {
			return fmt.Errorf("campaign %q: %w", c.Title, err)
		}
		if seen[l.Name] {
			return fmt.Errorf("campaign %q: duplicate level name %q", c.Title, l.Name)
		}
		seen[l.Name] = true
	}
	return nil
}
