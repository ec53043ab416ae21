// Package item defines equippable items, their categories, and the attribute
// influences they carry.
package item

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/rpg/internal/game/attribute"
)

// Category identifies what kind of gear an item is. Armor categories bind to
// exactly one armor slot; weapon categories fit either weapon hand.
type Category string

const (
	// ArmorHead fits the head armor slot.
	ArmorHead Category = "armor_head"
	// ArmorChest fits the chest armor slot.
	ArmorChest Category = "armor_chest"
	// ArmorLegs fits the legs armor slot.
	ArmorLegs Category = "armor_legs"
	// ArmorFeet fits the feet armor slot.
	ArmorFeet Category = "armor_feet"
	// WeaponSword is a one-handed blade.
	WeaponSword Category = "weapon_sword"
	// WeaponHammer is a blunt weapon.
	WeaponHammer Category = "weapon_hammer"
	// WeaponAxe is a hewing weapon.
	WeaponAxe Category = "weapon_axe"
	// WeaponDagger is a light stabbing weapon.
	WeaponDagger Category = "weapon_dagger"
)

// ArmorCategories lists the four armor categories, one per armor slot.
var ArmorCategories = []Category{ArmorHead, ArmorChest, ArmorLegs, ArmorFeet}

// WeaponCategories lists the weapon categories.
var WeaponCategories = []Category{WeaponSword, WeaponHammer, WeaponAxe, WeaponDagger}

// AllCategories lists every legal category.
var AllCategories = append(append([]Category{}, ArmorCategories...), WeaponCategories...)

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// IsArmor reports whether c is one of the four armor categories.
func (c Category) IsArmor() bool {
	for _, a := range ArmorCategories {
		if c == a {
			return true
		}
	}
	return false
}

// IsWeapon reports whether c is a weapon category.
func (c Category) IsWeapon() bool {
	return c.IsValid() && !c.IsArmor()
}

// Influence is an (attribute, magnitude) pair attached to an item. When the
// item sits in a weapon slot the influence feeds into attack damage.
type Influence struct {
	Attribute attribute.Attribute `yaml:"attribute"`
	Amount    int                 `yaml:"amount"`
}

// Item is a single piece of gear. Influence is nil for plain items.
type Item struct {
	Name      string     `yaml:"name"`
	Category  Category   `yaml:"category"`
	Influence *Influence `yaml:"influence"`
}

// Validate checks that the Item satisfies its invariants.
//
// Precondition: i is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (i *Item) Validate() error {
	var errs []error
	if i.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !i.Category.IsValid() {
		errs = append(errs, fmt.Errorf("Category %q is not a valid item category", i.Category))
	}
	if i.Influence != nil {
		if !i.Influence.Attribute.IsValid() {
			errs = append(errs, fmt.Errorf("Influence.Attribute %q is not a valid attribute", i.Influence.Attribute))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}
