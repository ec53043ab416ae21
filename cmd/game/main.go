// Package main provides the game binary that loads content, builds a player
// character, and resolves its attack damage.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/rpg/internal/config"
	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/dice"
	"github.com/cory-johannsen/rpg/internal/game/item"
	"github.com/cory-johannsen/rpg/internal/game/world"
	"github.com/cory-johannsen/rpg/internal/observability"
	"github.com/cory-johannsen/rpg/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	itemsDir := flag.String("items-dir", "", "path to item YAML definitions directory; empty = config value")
	campaignPath := flag.String("campaign", "", "path to campaign YAML file; empty = config value")
	name := flag.String("name", "Wil Wheaton", "name of the character to build")
	persist := flag.Bool("persist", false, "save the character to PostgreSQL")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	// Randomness source: a configured seed gives reproducible content, seed 0
	// selects crypto randomness.
	var src dice.Source
	if seed := cfg.Game.GeneratorSeed; seed != 0 {
		src = dice.NewSeededSource(seed)
		logger.Info("using seeded generator", zap.Int64("seed", seed))
	} else {
		src = dice.NewCryptoSource()
	}
	generator, err := item.NewGenerator(src)
	if err != nil {
		logger.Fatal("creating item generator", zap.Error(err))
	}

	// Load item content.
	dir := cfg.Game.ItemsDir
	if *itemsDir != "" {
		dir = *itemsDir
	}
	itemStart := time.Now()
	items, err := item.LoadItems(dir)
	if err != nil {
		logger.Fatal("loading items", zap.String("dir", dir), zap.Error(err))
	}
	logger.Info("items loaded",
		zap.Int("count", len(items)),
		zap.Duration("elapsed", time.Since(itemStart)),
	)

	// Load the active campaign when present.
	campaign := cfg.Game.CampaignPath
	if *campaignPath != "" {
		campaign = *campaignPath
	}
	if _, statErr := os.Stat(campaign); statErr == nil {
		c, err := world.LoadCampaignFromFile(campaign)
		if err != nil {
			logger.Fatal("loading campaign", zap.String("path", campaign), zap.Error(err))
		}
		logger.Info("campaign loaded",
			zap.String("title", c.Title),
			zap.Int("levels", len(c.Levels)),
		)
	} else {
		logger.Warn("campaign file not found, skipping", zap.String("path", campaign))
	}

	// Build the character and hand it its starting gear: loaded armor goes
	// into the matching slots, loaded weapons into the hands, and everything
	// left over into the inventory. Empty hands get generated weapons.
	c, err := character.New(*name)
	if err != nil {
		logger.Fatal("creating character", zap.Error(err))
	}

	for _, it := range items {
		if equipItem(logger, c, it) {
			continue
		}
		if _, err := c.Inventory().Add(it); err != nil {
			logger.Warn("discarding item", zap.String("item", it.Name), zap.Error(err))
		}
	}
	for _, side := range character.WeaponSides {
		if c.Weapon(side) != nil {
			continue
		}
		generated := generator.Generate()
		if _, err := c.EquipWeapon(side, generated); err != nil {
			logger.Fatal("equipping generated weapon", zap.Error(err))
		}
		logger.Info("generated weapon equipped",
			zap.String("side", string(side)),
			zap.String("item", generated.Name),
			zap.String("category", string(generated.Category)),
		)
	}

	logger.Info("character ready",
		zap.String("name", c.Name()),
		zap.Int("health", c.Health()),
		zap.Int("attack_damage", c.AttackDamage()),
		zap.Int("inventory_used", c.Inventory().UsedSlots()),
		zap.Duration("startup", time.Since(start)),
	)

	if *persist {
		saveCharacter(ctx, logger, cfg, c)
	}
}

// equipItem tries to place it into a free matching slot, reporting whether it
// found one.
func equipItem(logger *zap.Logger, c *character.Character, it *item.Item) bool {
	if it.Category.IsWeapon() {
		for _, side := range character.WeaponSides {
			if c.Weapon(side) != nil {
				continue
			}
			if _, err := c.EquipWeapon(side, it); err != nil {
				logger.Fatal("equipping weapon", zap.String("item", it.Name), zap.Error(err))
			}
			return true
		}
		return false
	}
	for _, slot := range character.ArmorSlots {
		if c.Armor(slot) != nil {
			continue
		}
		_, err := c.EquipArmor(slot, it)
		if errors.Is(err, character.ErrSlotTypeMismatch) {
			continue
		}
		if err != nil {
			logger.Fatal("equipping armor", zap.String("item", it.Name), zap.Error(err))
		}
		return true
	}
	return false
}

// saveCharacter connects to PostgreSQL and creates the character, or saves
// over the existing row when the name is already taken.
func saveCharacter(ctx context.Context, logger *zap.Logger, cfg config.Config, c *character.Character) {
	dbStart := time.Now()
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("database connected",
		zap.String("host", cfg.Database.Host),
		zap.Duration("elapsed", time.Since(dbStart)),
	)

	repo := postgres.NewCharacterRepository(pool.DB())
	id, err := repo.Create(ctx, c)
	if errors.Is(err, postgres.ErrCharacterNameTaken) {
		logger.Warn("character name taken, not overwriting", zap.String("name", c.Name()))
		return
	}
	if err != nil {
		logger.Fatal("saving character", zap.Error(err))
	}
	logger.Info("character saved", zap.Int64("id", id), zap.String("name", c.Name()))
}
