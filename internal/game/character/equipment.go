package character

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/rpg/internal/game/item"
)

// ArmorSlot identifies one of the four category-constrained armor slots.
type ArmorSlot string

const (
	// SlotHead holds head armor.
	SlotHead ArmorSlot = "head"
	// SlotChest holds chest armor.
	SlotChest ArmorSlot = "chest"
	// SlotLegs holds legs armor.
	SlotLegs ArmorSlot = "legs"
	// SlotFeet holds feet armor.
	SlotFeet ArmorSlot = "feet"
)

// ArmorSlots lists the four armor slots.
var ArmorSlots = []ArmorSlot{SlotHead, SlotChest, SlotLegs, SlotFeet}

// WeaponSide identifies one of the two unconstrained weapon slots.
type WeaponSide string

const (
	// WeaponLeft is the left-hand weapon slot.
	WeaponLeft WeaponSide = "left"
	// WeaponRight is the right-hand weapon slot.
	WeaponRight WeaponSide = "right"
)

// WeaponSides lists both weapon slots.
var WeaponSides = []WeaponSide{WeaponLeft, WeaponRight}

// armorSlotCategories binds each armor slot to the one item category it accepts.
var armorSlotCategories = map[ArmorSlot]item.Category{
	SlotHead:  item.ArmorHead,
	SlotChest: item.ArmorChest,
	SlotLegs:  item.ArmorLegs,
	SlotFeet:  item.ArmorFeet,
}

// ErrSlotTypeMismatch is returned when an item's category does not match the
// armor slot it is being equipped into.
var ErrSlotTypeMismatch = errors.New("character: item category does not match slot")

// Equipment holds a character's six equipment slots.
//
// Invariant: each slot holds at most one exclusively-owned item; an armor
// slot only ever holds an item of its bound category. Weapon slots accept
// any category.
type Equipment struct {
	armor   map[ArmorSlot]*item.Item
	weapons map[WeaponSide]*item.Item
}

// NewEquipment returns an Equipment with all six slots empty.
func NewEquipment() *Equipment {
	return &Equipment{
		armor:   make(map[ArmorSlot]*item.Item),
		weapons: make(map[WeaponSide]*item.Item),
	}
}

// EquipArmor places it into the given armor slot and returns the displaced
// occupant, if any. Ownership of it moves into the slot; ownership of the
// previous occupant moves back to the caller. A nil item clears the slot and
// always succeeds.
//
// Precondition: slot must be one of the four armor slots.
// Postcondition: on success Armor(slot) == it; on error the slot is unchanged.
func (e *Equipment) EquipArmor(slot ArmorSlot, it *item.Item) (*item.Item, error) {
	bound, ok := armorSlotCategories[slot]
	if !ok {
		return nil, fmt.Errorf("character: unknown armor slot %q", slot)
	}
	if it != nil && it.Category != bound {
		return nil, fmt.Errorf("%w: slot %s requires %s, got %s",
			ErrSlotTypeMismatch, slot, bound, it.Category)
	}

	prev := e.armor[slot]
	if it == nil {
		delete(e.armor, slot)
	} else {
		e.armor[slot] = it
	}
	return prev, nil
}

// EquipWeapon places it into the given weapon slot and returns the displaced
// occupant, if any. Weapon slots are not category-constrained; a nil item
// clears the slot.
//
// Precondition: side must be WeaponLeft or WeaponRight.
// Postcondition: on success Weapon(side) == it.
func (e *Equipment) EquipWeapon(side WeaponSide, it *item.Item) (*item.Item, error) {
	if side != WeaponLeft && side != WeaponRight {
		return nil, fmt.Errorf("character: unknown weapon side %q", side)
	}

	prev := e.weapons[side]
	if it == nil {
		delete(e.weapons, side)
	} else {
		e.weapons[side] = it
	}
	return prev, nil
}

// Armor returns the item in the given armor slot, or nil if empty.
func (e *Equipment) Armor(slot ArmorSlot) *item.Item {
	return e.armor[slot]
}

// Weapon returns the item in the given weapon slot, or nil if empty.
func (e *Equipment) Weapon(side WeaponSide) *item.Item {
	return e.weapons[side]
}
