// Package character defines the player character: its attribute store, its
// equipment slots, and the attack damage derived from both.
package character

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/rpg/internal/game/attribute"
	"github.com/cory-johannsen/rpg/internal/game/inventory"
	"github.com/cory-johannsen/rpg/internal/game/item"
)

// Character represents the entity the player impersonates.
//
// A Character exclusively owns its attribute store, its six equipment slots,
// and its inventory. It is not safe for concurrent use; one character belongs
// to one game session.
type Character struct {
	name       string
	health     int
	attributes *attribute.Store
	equipment  *Equipment
	inventory  *inventory.Inventory
}

// New constructs a Character with the canonical default attributes, all six
// equipment slots empty, and an inventory of inventory.DefaultCapacity slots.
// Health is set to the initial Constitution value and is not revisited when
// Constitution changes later.
//
// Precondition: name must be non-empty.
func New(name string) (*Character, error) {
	if name == "" {
		return nil, errors.New("character: name must not be empty")
	}

	attrs := attribute.NewStore()
	inv, err := inventory.New(inventory.DefaultCapacity)
	if err != nil {
		return nil, fmt.Errorf("creating inventory: %w", err)
	}

	return &Character{
		name:       name,
		health:     attrs.Value(attribute.Constitution),
		attributes: attrs,
		equipment:  NewEquipment(),
		inventory:  inv,
	}, nil
}

// Restore rebuilds a Character from persisted state. Unlike New, health is
// taken as-is rather than derived from Constitution, since health is fixed at
// first creation and must survive a save/load cycle unchanged. Equipment
// starts empty; the caller re-equips persisted items through the equip
// operations.
//
// Precondition: name must be non-empty; attrs must contain every known
// attribute and nothing else.
func Restore(name string, health int, attrs map[attribute.Attribute]int) (*Character, error) {
	if name == "" {
		return nil, errors.New("character: name must not be empty")
	}

	store, err := attribute.NewStoreFrom(attrs)
	if err != nil {
		return nil, fmt.Errorf("restoring attributes: %w", err)
	}
	inv, err := inventory.New(inventory.DefaultCapacity)
	if err != nil {
		return nil, fmt.Errorf("creating inventory: %w", err)
	}

	return &Character{
		name:       name,
		health:     health,
		attributes: store,
		equipment:  NewEquipment(),
		inventory:  inv,
	}, nil
}

// Name returns the character's name.
func (c *Character) Name() string {
	return c.name
}

// Health returns the character's health, fixed at construction from the
// initial Constitution value.
func (c *Character) Health() int {
	return c.health
}

// UpdateAttribute overwrites the value of a. No bounds are enforced.
//
// Precondition: a must be one of the ten known attributes.
// Postcondition: AttributeValue(a) == v.
func (c *Character) UpdateAttribute(a attribute.Attribute, v int) error {
	if !a.IsValid() {
		return fmt.Errorf("character: unknown attribute %q", a)
	}
	c.attributes.Set(a, v)
	return nil
}

// AttributeValue returns the current value of a.
//
// Precondition: a must be one of the ten known attributes; every known
// attribute is present from construction onward.
func (c *Character) AttributeValue(a attribute.Attribute) int {
	return c.attributes.Value(a)
}

// EquipArmor places it into the given armor slot, returning the displaced
// occupant. The item category must match the slot; a mismatch is reported as
// ErrSlotTypeMismatch and leaves the slot unchanged. A nil item clears the
// slot and always succeeds.
func (c *Character) EquipArmor(slot ArmorSlot, it *item.Item) (*item.Item, error) {
	return c.equipment.EquipArmor(slot, it)
}

// EquipWeapon places it into the given weapon slot, returning the displaced
// occupant. Any item category is accepted; a nil item clears the slot.
func (c *Character) EquipWeapon(side WeaponSide, it *item.Item) (*item.Item, error) {
	return c.equipment.EquipWeapon(side, it)
}

// Armor returns the item in the given armor slot, or nil if empty.
func (c *Character) Armor(slot ArmorSlot) *item.Item {
	return c.equipment.Armor(slot)
}

// Weapon returns the item in the given weapon slot, or nil if empty.
func (c *Character) Weapon(side WeaponSide) *item.Item {
	return c.equipment.Weapon(side)
}

// Inventory returns the character's item container.
func (c *Character) Inventory() *inventory.Inventory {
	return c.inventory
}
