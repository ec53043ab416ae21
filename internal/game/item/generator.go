package item

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/rpg/internal/game/attribute"
	"github.com/cory-johannsen/rpg/internal/game/dice"
)

// maxInfluenceAmount bounds the magnitude of a generated influence.
const maxInfluenceAmount = 10

// namesByCategory holds the flavour names the generator picks from.
var namesByCategory = map[Category][]string{
	ArmorHead:    {"Leather Cap", "Iron Helm", "Horned Helmet"},
	ArmorChest:   {"Padded Vest", "Chainmail Shirt", "Steel Breastplate"},
	ArmorLegs:    {"Cloth Trousers", "Studded Greaves", "Plate Leggings"},
	ArmorFeet:    {"Worn Boots", "Hobnailed Boots", "Sabatons"},
	WeaponSword:  {"Rusty Sword", "Longsword", "Runed Blade"},
	WeaponHammer: {"Mallet", "War Hammer", "Earthshaker"},
	WeaponAxe:    {"Hatchet", "Battle Axe", "Reaver"},
	WeaponDagger: {"Shiv", "Stiletto", "Fang"},
}

// Generator produces items from a randomness source.
//
// Generated items always satisfy Item.Validate.
type Generator struct {
	src dice.Source
}

// NewGenerator returns a Generator drawing from src.
//
// Precondition: src must not be nil.
func NewGenerator(src dice.Source) (*Generator, error) {
	if src == nil {
		return nil, errors.New("item: NewGenerator: src must not be nil")
	}
	return &Generator{src: src}, nil
}

// Generate produces a random item: any category, and an influence on half of
// the draws.
//
// Postcondition: the returned item passes Validate.
func (g *Generator) Generate() *Item {
	cat := AllCategories[g.src.Intn(len(AllCategories))]
	it := g.generate(cat)
	if g.src.Intn(2) == 0 {
		it.Influence = g.randomInfluence()
	}
	return it
}

// GenerateCategory produces a random item of the given category with an
// influence on half of the draws.
//
// Precondition: cat must be a valid category.
// Postcondition: the returned item has Category == cat and passes Validate.
func (g *Generator) GenerateCategory(cat Category) (*Item, error) {
	if !cat.IsValid() {
		return nil, fmt.Errorf("item: GenerateCategory: invalid category %q", cat)
	}
	it := g.generate(cat)
	if g.src.Intn(2) == 0 {
		it.Influence = g.randomInfluence()
	}
	return it, nil
}

// GenerateWithInfluence produces a random item of the given category carrying
// exactly the given influence.
//
// Precondition: cat must be valid; inf.Attribute must be a known attribute.
func (g *Generator) GenerateWithInfluence(cat Category, inf Influence) (*Item, error) {
	if !cat.IsValid() {
		return nil, fmt.Errorf("item: GenerateWithInfluence: invalid category %q", cat)
	}
	if !inf.Attribute.IsValid() {
		return nil, fmt.Errorf("item: GenerateWithInfluence: invalid attribute %q", inf.Attribute)
	}
	it := g.generate(cat)
	it.Influence = &Influence{Attribute: inf.Attribute, Amount: inf.Amount}
	return it, nil
}

func (g *Generator) generate(cat Category) *Item {
	names := namesByCategory[cat]
	return &Item{
		Name:     names[g.src.Intn(len(names))],
		Category: cat,
	}
}

func (g *Generator) randomInfluence() *Influence {
	return &Influence{
		Attribute: attribute.All[g.src.Intn(len(attribute.All))],
		Amount:    1 + g.src.Intn(maxInfluenceAmount),
	}
}
