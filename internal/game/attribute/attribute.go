// Package attribute defines the closed set of character attributes and the
// always-fully-populated store mapping each attribute to its current value.
package attribute

// Attribute identifies one of the ten character statistics.
type Attribute string

// The complete set of character attributes. No attribute may be added or
// removed at runtime.
const (
	Charisma     Attribute = "charisma"
	Constitution Attribute = "constitution"
	Defense      Attribute = "defense"
	Dexterity    Attribute = "dexterity"
	Intelligence Attribute = "intelligence"
	Luck         Attribute = "luck"
	Perception   Attribute = "perception"
	Strength     Attribute = "strength"
	Willpower    Attribute = "willpower"
	Wisdom       Attribute = "wisdom"
)

// All contains every attribute, in display order.
var All = []Attribute{
	Charisma, Constitution, Defense, Dexterity, Intelligence,
	Luck, Perception, Strength, Willpower, Wisdom,
}

// IsValid reports whether a is one of the ten known attributes.
func (a Attribute) IsValid() bool {
	for _, known := range All {
		if a == known {
			return true
		}
	}
	return false
}

// Defaults returns the canonical baseline values for a freshly created
// character. The returned map contains exactly the ten known attributes.
//
// Postcondition: len(result) == len(All); the map is a fresh copy on every call.
func Defaults() map[Attribute]int {
	return map[Attribute]int{
		Charisma:     5,
		Constitution: 30,
		Defense:      15,
		Dexterity:    10,
		Intelligence: 5,
		Luck:         0,
		Perception:   10,
		Strength:     20,
		Willpower:    15,
		Wisdom:       5,
	}
}
