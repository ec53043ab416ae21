package world_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/rpg/internal/game/world"
)

func TestCampaign_SaveAndLoadRoundTrips(t *testing.T) {
	entity := 7
	level := validLevel("Meadow")
	level.Fields[1][2] = world.Field{Type: world.StoneWall, Height: 3, ContainedEntity: &entity}

	campaign := world.NewCampaign("Adventure Time!")
	campaign.AddLevel(level)

	path := filepath.Join(t.TempDir(), "campaign.yaml")
	require.NoError(t, campaign.SaveToFile(path))

	loaded, err := world.LoadCampaignFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Adventure Time!", loaded.Title)
	require.Len(t, loaded.Levels, 1)

	got := loaded.Levels[0]
	assert.Equal(t, "Meadow", got.Name)
	assert.Equal(t, world.Point{X: 0, Y: 0}, got.StartingPoint)
	assert.Equal(t, world.Point{X: 2, Y: 1}, got.EndPoint)

	f, ok := got.FieldAt(world.Point{X: 2, Y: 1})
	require.True(t, ok)
	assert.Equal(t, world.StoneWall, f.Type)
	assert.Equal(t, uint8(3), f.Height)
	require.NotNil(t, f.ContainedEntity)
	assert.Equal(t, 7, *f.ContainedEntity)
}

func TestCampaign_SaveAndLoadEmptyCampaign(t *testing.T) {
	campaign := world.NewCampaign("Adventure Time!")

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, campaign.SaveToFile(path))

	loaded, err := world.LoadCampaignFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, campaign.Title, loaded.Title)
	assert.Empty(t, loaded.Levels)
}

func TestCampaign_SaveRejectsInvalidCampaign(t *testing.T) {
	campaign := world.NewCampaign("")

	err := campaign.SaveToFile(filepath.Join(t.TempDir(), "bad.yaml"))
	require.Error(t, err)
}

func TestLoadCampaignFromFile_MissingFile(t *testing.T) {
	_, err := world.LoadCampaignFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadCampaignFromBytes_RejectsMalformedYAML(t *testing.T) {
	_, err := world.LoadCampaignFromBytes([]byte("title: [unclosed"))
	require.Error(t, err)
}

func TestLoadCampaignFromBytes_RejectsInvalidCampaign(t *testing.T) {
	data := []byte(`
title: Broken
levels:
  - name: ""
    starting_point: {x: 0, y: 0}
    end_point: {x: 0, y: 0}
    fields: [[{type: grass, height: 1}]]
`)
	_, err := world.LoadCampaignFromBytes(data)
	require.Error(t, err)
}

func TestLoadCampaignFromFile_ReadsHandWrittenYAML(t *testing.T) {
	data := []byte(`
title: Hand Written
levels:
  - name: Bog
    starting_point: {x: 0, y: 0}
    end_point: {x: 1, y: 0}
    fields:
      - [{type: mud, height: 1}, {type: swamp_water, height: 0}]
`)
	path := filepath.Join(t.TempDir(), "hand.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := world.LoadCampaignFromFile(path)
	require.NoError(t, err)

	level, ok := loaded.Level("Bog")
	require.True(t, ok)
	f, ok := level.FieldAt(world.Point{X: 1, Y: 0})
	require.True(t, ok)
	assert.Equal(t, world.SwampWater, f.Type)
}
