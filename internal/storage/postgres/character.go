package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/rpg/internal/game/attribute"
	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/item"
)

// ErrCharacterNotFound is returned when a character lookup yields no results.
var ErrCharacterNotFound = errors.New("character not found")

// ErrCharacterNameTaken is returned when creating a character with a name that
// is already in use.
var ErrCharacterNameTaken = errors.New("character name already taken")

// slot column values for the character_items table.
const (
	slotWeaponLeft  = "weapon_left"
	slotWeaponRight = "weapon_right"
)

// weaponSlotColumns maps each weapon side to its slot column value.
var weaponSlotColumns = map[character.WeaponSide]string{
	character.WeaponLeft:  slotWeaponLeft,
	character.WeaponRight: slotWeaponRight,
}

// CharacterRepository provides character persistence operations.
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a CharacterRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// Create inserts a new character together with its equipped items and returns
// the generated ID.
//
// Precondition: c must be non-nil.
// Postcondition: Returns the new ID, or ErrCharacterNameTaken on duplicate name.
func (r *CharacterRepository) Create(ctx context.Context, c *character.Character) (int64, error) {
	if c == nil {
		return 0, errors.New("postgres: Create: character must not be nil")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO characters
			(name, health,
			 charisma, constitution, defense, dexterity, intelligence,
			 luck, perception, strength, willpower, wisdom)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id`,
		c.Name(), c.Health(),
		c.AttributeValue(attribute.Charisma), c.AttributeValue(attribute.Constitution),
		c.AttributeValue(attribute.Defense), c.AttributeValue(attribute.Dexterity),
		c.AttributeValue(attribute.Intelligence), c.AttributeValue(attribute.Luck),
		c.AttributeValue(attribute.Perception), c.AttributeValue(attribute.Strength),
		c.AttributeValue(attribute.Willpower), c.AttributeValue(attribute.Wisdom),
	).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrCharacterNameTaken
		}
		return 0, fmt.Errorf("inserting character: %w", err)
	}

	if err := insertEquipment(ctx, tx, id, c); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return id, nil
}

// GetByID rebuilds a character, including its equipped items, by primary key.
//
// Precondition: id must be > 0.
// Postcondition: Returns the Character or ErrCharacterNotFound.
func (r *CharacterRepository) GetByID(ctx context.Context, id int64) (*character.Character, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

// GetByName rebuilds a character, including its equipped items, by its unique name.
//
// Precondition: name must be non-empty.
// Postcondition: Returns the Character or ErrCharacterNotFound.
func (r *CharacterRepository) GetByName(ctx context.Context, name string) (*character.Character, error) {
	return r.get(ctx, `WHERE name = $1`, name)
}

func (r *CharacterRepository) get(ctx context.Context, where string, arg any) (*character.Character, error) {
	var (
		id     int64
		name   string
		health int
		attrs  = make(map[attribute.Attribute]int, len(attribute.All))
		values [10]int
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, health,
		       charisma, constitution, defense, dexterity, intelligence,
		       luck, perception, strength, willpower, wisdom
		FROM characters `+where,
		arg,
	).Scan(
		&id, &name, &health,
		&values[0], &values[1], &values[2], &values[3], &values[4],
		&values[5], &values[6], &values[7], &values[8], &values[9],
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("querying character: %w", err)
	}

	for i, a := range []attribute.Attribute{
		attribute.Charisma, attribute.Constitution, attribute.Defense,
		attribute.Dexterity, attribute.Intelligence, attribute.Luck,
		attribute.Perception, attribute.Strength, attribute.Willpower,
		attribute.Wisdom,
	} {
		attrs[a] = values[i]
	}

	c, err := character.Restore(name, health, attrs)
	if err != nil {
		return nil, fmt.Errorf("restoring character: %w", err)
	}
	if err := r.loadEquipment(ctx, id, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Save persists the character's current attributes and equipment under the
// given ID. Health is written once at Create and never updated here.
//
// Precondition: id must reference an existing character row.
// Postcondition: Returns nil on success, ErrCharacterNotFound if no row matched.
func (r *CharacterRepository) Save(ctx context.Context, id int64, c *character.Character) error {
	if c == nil {
		return errors.New("postgres: Save: character must not be nil")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE characters SET
			charisma = $2, constitution = $3, defense = $4, dexterity = $5,
			intelligence = $6, luck = $7, perception = $8, strength = $9,
			willpower = $10, wisdom = $11, updated_at = NOW()
		WHERE id = $1`,
		id,
		c.AttributeValue(attribute.Charisma), c.AttributeValue(attribute.Constitution),
		c.AttributeValue(attribute.Defense), c.AttributeValue(attribute.Dexterity),
		c.AttributeValue(attribute.Intelligence), c.AttributeValue(attribute.Luck),
		c.AttributeValue(attribute.Perception), c.AttributeValue(attribute.Strength),
		c.AttributeValue(attribute.Willpower), c.AttributeValue(attribute.Wisdom),
	)
	if err != nil {
		return fmt.Errorf("updating character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCharacterNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM character_items WHERE character_id = $1`, id); err != nil {
		return fmt.Errorf("clearing equipment: %w", err)
	}
	if err := insertEquipment(ctx, tx, id, c); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// insertEquipment writes one character_items row per occupied slot.
func insertEquipment(ctx context.Context, tx pgx.Tx, id int64, c *character.Character) error {
	write := func(slot string, it *item.Item) error {
		if it == nil {
			return nil
		}
		var (
			infAttr   *string
			infAmount *int
		)
		if it.Influence != nil {
			a := string(it.Influence.Attribute)
			n := it.Influence.Amount
			infAttr, infAmount = &a, &n
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO character_items
				(character_id, slot, item_name, item_category, influence_attribute, influence_amount)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			id, slot, it.Name, string(it.Category), infAttr, infAmount,
		)
		if err != nil {
			return fmt.Errorf("inserting equipment row %s: %w", slot, err)
		}
		return nil
	}

	for _, slot := range character.ArmorSlots {
		if err := write(string(slot), c.Armor(slot)); err != nil {
			return err
		}
	}
	for _, side := range character.WeaponSides {
		if err := write(weaponSlotColumns[side], c.Weapon(side)); err != nil {
			return err
		}
	}
	return nil
}

// loadEquipment reads the character_items rows for id and equips them onto c.
func (r *CharacterRepository) loadEquipment(ctx context.Context, id int64, c *character.Character) error {
	rows, err := r.db.Query(ctx, `
		SELECT slot, item_name, item_category, influence_attribute, influence_amount
		FROM character_items WHERE character_id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("querying equipment: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			slot, name, category string
			infAttr              *string
			infAmount            *int
		)
		if err := rows.Scan(&slot, &name, &category, &infAttr, &infAmount); err != nil {
			return fmt.Errorf("scanning equipment row: %w", err)
		}

		it := &item.Item{Name: name, Category: item.Category(category)}
		if infAttr != nil && infAmount != nil {
			it.Influence = &item.Influence{
				Attribute: attribute.Attribute(*infAttr),
				Amount:    *infAmount,
			}
		}

		switch slot {
		case slotWeaponLeft:
			_, err = c.EquipWeapon(character.WeaponLeft, it)
		case slotWeaponRight:
			_, err = c.EquipWeapon(character.WeaponRight, it)
		default:
			_, err = c.EquipArmor(character.ArmorSlot(slot), it)
		}
		if err != nil {
			return fmt.Errorf("equipping persisted item from slot %s: %w", slot, err)
		}
	}
	return rows.Err()
}
