// Package inventory provides the bounded item container a character carries.
package inventory

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/rpg/internal/game/item"
)

// DefaultCapacity is the slot count of a freshly created character's inventory.
const DefaultCapacity = 30

// ErrInventoryFull is returned when adding to an inventory with no free slots.
var ErrInventoryFull = errors.New("inventory: no free slots")

// StoredItem is an item held in an inventory slot, addressable by instance ID.
type StoredItem struct {
	InstanceID string
	Item       *item.Item
}

// Inventory is a slot-bounded container. Each stored item occupies one slot.
//
// Invariant: UsedSlots() <= Capacity().
type Inventory struct {
	capacity int
	items    []StoredItem
}

// New creates an Inventory with the given slot capacity.
//
// Precondition: capacity >= 0.
// Postcondition: returned Inventory has zero items and the specified capacity.
func New(capacity int) (*Inventory, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("inventory: capacity must be >= 0, got %d", capacity)
	}
	return &Inventory{capacity: capacity}, nil
}

// Add places it into a free slot and returns the stored instance.
// Ownership of the item moves into the inventory.
//
// Precondition: it must not be nil.
// Postcondition: on success UsedSlots() grows by one; on error the inventory
// is unchanged.
func (inv *Inventory) Add(it *item.Item) (*StoredItem, error) {
	if it == nil {
		return nil, errors.New("inventory: Add: item must not be nil")
	}
	if len(inv.items) >= inv.capacity {
		return nil, ErrInventoryFull
	}
	inv.items = append(inv.items, StoredItem{
		InstanceID: uuid.New().String(),
		Item:       it,
	})
	return &inv.items[len(inv.items)-1], nil
}

// Remove takes the item with the given instance ID out of the inventory and
// returns it, transferring ownership back to the caller.
//
// Precondition: instanceID identifies a stored item.
func (inv *Inventory) Remove(instanceID string) (*item.Item, error) {
	for i := range inv.items {
		if inv.items[i].InstanceID == instanceID {
			it := inv.items[i].Item
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return it, nil
		}
	}
	return nil, fmt.Errorf("inventory: instance %q not found", instanceID)
}

// Items returns a snapshot copy of all stored items.
//
// Postcondition: mutating the returned slice does not affect the inventory.
func (inv *Inventory) Items() []StoredItem {
	out := make([]StoredItem, len(inv.items))
	copy(out, inv.items)
	return out
}

// UsedSlots returns the number of occupied slots.
//
// Postcondition: result >= 0 and <= Capacity().
func (inv *Inventory) UsedSlots() int {
	return len(inv.items)
}

// Capacity returns the total slot count.
func (inv *Inventory) Capacity() int {
	return inv.capacity
}
