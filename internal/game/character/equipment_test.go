package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/item"
)

var armorByCategory = map[character.ArmorSlot]*item.Item{
	character.SlotHead:  {Name: "Iron Helm", Category: item.ArmorHead},
	character.SlotChest: {Name: "Chainmail Shirt", Category: item.ArmorChest},
	character.SlotLegs:  {Name: "Studded Greaves", Category: item.ArmorLegs},
	character.SlotFeet:  {Name: "Worn Boots", Category: item.ArmorFeet},
}

func TestEquipment_ArmorSlotsAcceptMatchingCategory(t *testing.T) {
	eq := character.NewEquipment()

	for slot, piece := range armorByCategory {
		require.Nil(t, eq.Armor(slot))

		prev, err := eq.EquipArmor(slot, piece)
		require.NoError(t, err)
		assert.Nil(t, prev)
		assert.Equal(t, piece, eq.Armor(slot))
	}
}

func TestEquipment_ArmorSlotRejectsWrongCategory(t *testing.T) {
	eq := character.NewEquipment()
	boots := &item.Item{Name: "Worn Boots", Category: item.ArmorFeet}

	_, err := eq.EquipArmor(character.SlotHead, boots)
	require.ErrorIs(t, err, character.ErrSlotTypeMismatch)
	assert.Nil(t, eq.Armor(character.SlotHead))
}

func TestEquipment_ArmorSlotRejectsWeapon(t *testing.T) {
	eq := character.NewEquipment()
	sword := &item.Item{Name: "Rusty Sword", Category: item.WeaponSword}

	_, err := eq.EquipArmor(character.SlotChest, sword)
	require.ErrorIs(t, err, character.ErrSlotTypeMismatch)
}

func TestEquipment_MismatchLeavesOccupantInPlace(t *testing.T) {
	eq := character.NewEquipment()
	helm := armorByCategory[character.SlotHead]

	_, err := eq.EquipArmor(character.SlotHead, helm)
	require.NoError(t, err)

	_, err = eq.EquipArmor(character.SlotHead, &item.Item{Name: "Worn Boots", Category: item.ArmorFeet})
	require.ErrorIs(t, err, character.ErrSlotTypeMismatch)
	assert.Equal(t, helm, eq.Armor(character.SlotHead))
}

func TestEquipment_NilClearsArmorSlot(t *testing.T) {
	eq := character.NewEquipment()
	helm := armorByCategory[character.SlotHead]

	_, err := eq.EquipArmor(character.SlotHead, helm)
	require.NoError(t, err)

	prev, err := eq.EquipArmor(character.SlotHead, nil)
	require.NoError(t, err)
	assert.Equal(t, helm, prev, "displaced occupant must be handed back")
	assert.Nil(t, eq.Armor(character.SlotHead))
}

func TestEquipment_ReplacingArmorReturnsPrevious(t *testing.T) {
	eq := character.NewEquipment()
	cap := &item.Item{Name: "Leather Cap", Category: item.ArmorHead}
	helm := &item.Item{Name: "Iron Helm", Category: item.ArmorHead}

	_, err := eq.EquipArmor(character.SlotHead, cap)
	require.NoError(t, err)

	prev, err := eq.EquipArmor(character.SlotHead, helm)
	require.NoError(t, err)
	assert.Equal(t, cap, prev)
	assert.Equal(t, helm, eq.Armor(character.SlotHead))
}

func TestEquipment_UnknownArmorSlot(t *testing.T) {
	eq := character.NewEquipment()

	_, err := eq.EquipArmor("tail", armorByCategory[character.SlotHead])
	require.Error(t, err)
	require.NotErrorIs(t, err, character.ErrSlotTypeMismatch)
}

func TestEquipment_WeaponSlotsAcceptAnyCategory(t *testing.T) {
	eq := character.NewEquipment()

	// Armor in a weapon hand is legal; weapon slots are not sub-typed.
	boots := &item.Item{Name: "Worn Boots", Category: item.ArmorFeet}
	prev, err := eq.EquipWeapon(character.WeaponLeft, boots)
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, boots, eq.Weapon(character.WeaponLeft))

	hammer := &item.Item{Name: "War Hammer", Category: item.WeaponHammer}
	_, err = eq.EquipWeapon(character.WeaponRight, hammer)
	require.NoError(t, err)
	assert.Equal(t, hammer, eq.Weapon(character.WeaponRight))
}

func TestEquipment_NilClearsWeaponSlot(t *testing.T) {
	eq := character.NewEquipment()
	sword := &item.Item{Name: "Rusty Sword", Category: item.WeaponSword}

	_, err := eq.EquipWeapon(character.WeaponLeft, sword)
	require.NoError(t, err)

	prev, err := eq.EquipWeapon(character.WeaponLeft, nil)
	require.NoError(t, err)
	assert.Equal(t, sword, prev)
	assert.Nil(t, eq.Weapon(character.WeaponLeft))
}

func TestEquipment_UnknownWeaponSide(t *testing.T) {
	eq := character.NewEquipment()

	_, err := eq.EquipWeapon("middle", &item.Item{Name: "Shiv", Category: item.WeaponDagger})
	require.Error(t, err)
}

// Property: an armor slot accepts exactly its bound category and nothing else.
func TestProperty_ArmorSlotCategoryBinding(t *testing.T) {
	bindings := map[character.ArmorSlot]item.Category{
		character.SlotHead:  item.ArmorHead,
		character.SlotChest: item.ArmorChest,
		character.SlotLegs:  item.ArmorLegs,
		character.SlotFeet:  item.ArmorFeet,
	}

	rapid.Check(t, func(rt *rapid.T) {
		slot := rapid.SampledFrom(character.ArmorSlots).Draw(rt, "slot")
		cat := rapid.SampledFrom(item.AllCategories).Draw(rt, "category")

		eq := character.NewEquipment()
		_, err := eq.EquipArmor(slot, &item.Item{Name: "Piece", Category: cat})

		if cat == bindings[slot] && err != nil {
			rt.Fatalf("slot %s rejected its bound category %s: %v", slot, cat, err)
		}
		if cat != bindings[slot] && err == nil {
			rt.Fatalf("slot %s accepted category %s", slot, cat)
		}
	})
}
