package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/rpg/internal/game/inventory"
	"github.com/cory-johannsen/rpg/internal/game/item"
)

func sword() *item.Item {
	return &item.Item{Name: "Rusty Sword", Category: item.WeaponSword}
}

func TestNew_RejectsNegativeCapacity(t *testing.T) {
	_, err := inventory.New(-1)
	require.Error(t, err)
}

func TestInventory_AddAndRemove(t *testing.T) {
	inv, err := inventory.New(2)
	require.NoError(t, err)

	stored, err := inv.Add(sword())
	require.NoError(t, err)
	assert.NotEmpty(t, stored.InstanceID)
	assert.Equal(t, 1, inv.UsedSlots())

	got, err := inv.Remove(stored.InstanceID)
	require.NoError(t, err)
	assert.Equal(t, "Rusty Sword", got.Name)
	assert.Equal(t, 0, inv.UsedSlots())
}

func TestInventory_AddNilItemError(t *testing.T) {
	inv, err := inventory.New(1)
	require.NoError(t, err)

	_, err = inv.Add(nil)
	require.Error(t, err)
}

func TestInventory_FullRejectsAdd(t *testing.T) {
	inv, err := inventory.New(1)
	require.NoError(t, err)

	_, err = inv.Add(sword())
	require.NoError(t, err)

	_, err = inv.Add(sword())
	require.ErrorIs(t, err, inventory.ErrInventoryFull)
	assert.Equal(t, 1, inv.UsedSlots())
}

func TestInventory_RemoveUnknownInstance(t *testing.T) {
	inv, err := inventory.New(1)
	require.NoError(t, err)

	_, err = inv.Remove("missing")
	require.Error(t, err)
}

func TestInventory_ItemsIsASnapshot(t *testing.T) {
	inv, err := inventory.New(2)
	require.NoError(t, err)
	_, err = inv.Add(sword())
	require.NoError(t, err)

	items := inv.Items()
	items[0].Item = nil

	assert.NotNil(t, inv.Items()[0].Item)
}

// Property: used slots never exceed capacity no matter the add/remove sequence.
func TestProperty_UsedSlotsNeverExceedCapacity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		capacity := rapid.IntRange(0, 8).Draw(rt, "capacity")
		inv, err := inventory.New(capacity)
		if err != nil {
			rt.Fatal(err)
		}

		var ids []string
		ops := rapid.IntRange(1, 30).Draw(rt, "ops")
		for i := 0; i < ops; i++ {
			if len(ids) > 0 && rapid.Bool().Draw(rt, "remove") {
				idx := rapid.IntRange(0, len(ids)-1).Draw(rt, "idx")
				if _, err := inv.Remove(ids[idx]); err != nil {
					rt.Fatal(err)
				}
				ids = append(ids[:idx], ids[idx+1:]...)
				continue
			}
			stored, err := inv.Add(sword())
			if err != nil {
				continue
			}
			ids = append(ids, stored.InstanceID)
		}

		if inv.UsedSlots() > inv.Capacity() {
			rt.Fatalf("used %d > capacity %d", inv.UsedSlots(), inv.Capacity())
		}
		if inv.UsedSlots() != len(ids) {
			rt.Fatalf("used %d != tracked %d", inv.UsedSlots(), len(ids))
		}
	})
}
