package character

import "github.com/cory-johannsen/rpg/internal/game/attribute"

// dexterityInfluence is the factor applied to every Dexterity contribution to
// attack damage: the base Dexterity component and any Dexterity-tagged weapon
// influence. Both computations must share this one constant.
const dexterityInfluence = 0.2

// AttackDamage computes the character's current attack damage:
//
//	Strength + trunc(Dexterity * 0.2) + Σ weapon influences
//
// where a weapon influence tagged Dexterity is damped by the same 0.2 factor
// and every other attribute's influence passes through at full magnitude.
// Each product is truncated toward zero before summing. Empty slots and
// items without an influence contribute nothing.
//
// The result is recomputed from the current attribute values and slot
// contents on every call; nothing is cached.
func (c *Character) AttackDamage() int {
	dex := c.attributes.Value(attribute.Dexterity)
	dexComponent := int(float64(dex) * dexterityInfluence)

	str := c.attributes.Value(attribute.Strength)

	additional := 0
	for _, side := range WeaponSides {
		weapon := c.equipment.Weapon(side)
		if weapon == nil || weapon.Influence == nil {
			continue
		}
		factor := 1.0
		if weapon.Influence.Attribute == attribute.Dexterity {
			factor = dexterityInfluence
		}
		additional += int(float64(weapon.Influence.Amount) * factor)
	}

	return str + dexComponent + additional
}
