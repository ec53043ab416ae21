package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/rpg/internal/game/attribute"
	"github.com/cory-johannsen/rpg/internal/game/dice"
	"github.com/cory-johannsen/rpg/internal/game/item"
)

func TestNewGenerator_NilSourceError(t *testing.T) {
	_, err := item.NewGenerator(nil)
	require.Error(t, err)
}

func TestGenerator_GenerateProducesValidItems(t *testing.T) {
	gen, err := item.NewGenerator(dice.NewSeededSource(7))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		it := gen.Generate()
		require.NoError(t, it.Validate())
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a, err := item.NewGenerator(dice.NewSeededSource(99))
	require.NoError(t, err)
	b, err := item.NewGenerator(dice.NewSeededSource(99))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Generate(), b.Generate(), "sequence diverged at item %d", i)
	}
}

func TestGenerator_GenerateCategory(t *testing.T) {
	gen, err := item.NewGenerator(dice.NewSeededSource(3))
	require.NoError(t, err)

	it, err := gen.GenerateCategory(item.ArmorFeet)
	require.NoError(t, err)
	assert.Equal(t, item.ArmorFeet, it.Category)
	require.NoError(t, it.Validate())
}

func TestGenerator_GenerateCategoryRejectsUnknown(t *testing.T) {
	gen, err := item.NewGenerator(dice.NewSeededSource(3))
	require.NoError(t, err)

	_, err = gen.GenerateCategory("crate")
	require.Error(t, err)
}

func TestGenerator_GenerateWithInfluence(t *testing.T) {
	gen, err := item.NewGenerator(dice.NewSeededSource(5))
	require.NoError(t, err)

	it, err := gen.GenerateWithInfluence(item.WeaponSword, item.Influence{
		Attribute: attribute.Strength,
		Amount:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, item.WeaponSword, it.Category)
	require.NotNil(t, it.Influence)
	assert.Equal(t, attribute.Strength, it.Influence.Attribute)
	assert.Equal(t, 10, it.Influence.Amount)
}

func TestGenerator_GenerateWithInfluenceRejectsUnknownAttribute(t *testing.T) {
	gen, err := item.NewGenerator(dice.NewSeededSource(5))
	require.NoError(t, err)

	_, err = gen.GenerateWithInfluence(item.WeaponSword, item.Influence{Attribute: "swagger"})
	require.Error(t, err)
}

// Property: GenerateCategory always honours the requested category and
// produces a valid item, for every category and seed.
func TestProperty_GenerateCategoryHonoursCategory(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64().Draw(rt, "seed")
		cat := rapid.SampledFrom(item.AllCategories).Draw(rt, "category")

		gen, err := item.NewGenerator(dice.NewSeededSource(seed))
		if err != nil {
			rt.Fatal(err)
		}
		it, err := gen.GenerateCategory(cat)
		if err != nil {
			rt.Fatal(err)
		}
		if it.Category != cat {
			rt.Fatalf("generated category %q, want %q", it.Category, cat)
		}
		if err := it.Validate(); err != nil {
			rt.Fatalf("generated item invalid: %v", err)
		}
	})
}
