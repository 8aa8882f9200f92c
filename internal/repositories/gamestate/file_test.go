package gamestate_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castaway-games/angler/internal/entities"
	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/gametime"
	"github.com/castaway-games/angler/internal/pkg/clock"
	"github.com/castaway-games/angler/internal/repositories/gamestate"
)

func sampleState() *entities.GameState {
	state := entities.NewGameState()
	state.Balance = 1234.56
	state.Level = 7
	state.XP = 350
	state.Clock = gametime.State{Hour: 21, Day: 9, Event: gametime.FullMoon}
	state.Unlocks = entities.Unlocks{Boat: true, Torch: true}
	state.Inventory = []entities.CaughtItem{
		{ID: "catch_1", Name: "Carp", Rarity: entities.RarityCommon,
			Price: 10, Weight: 1.5, Zone: entities.ZoneLake},
		{ID: "catch_2", Name: "Tuna", Rarity: entities.RarityRare,
			Price: 80, Weight: 12.3, Zone: entities.ZoneSea},
	}
	state.Discovery.Record(entities.ZoneLake, "Carp", 1.5, 15.0)
	state.Quests[entities.ZoneLake] = []entities.Quest{
		{ID: "quest_1", Zone: entities.ZoneLake, Kind: entities.QuestExactCreature,
			TargetName: "Carp", TargetRarity: entities.RarityCommon,
			Amount: 3, Progress: 1, Reward: 300},
	}
	return state
}

func newFileRepo(t *testing.T) (gamestate.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "save.json")
	repo, err := gamestate.NewFile(&gamestate.FileConfig{Path: path})
	require.NoError(t, err)
	return repo, path
}

func TestFile_SaveThenLoadRoundTrips(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()
	state := sampleState()

	saveOut, err := repo.Save(ctx, gamestate.SaveInput{State: state})
	require.NoError(t, err)
	assert.NotEmpty(t, saveOut.Checksum)

	loadOut, err := repo.Load(ctx, gamestate.LoadInput{})
	require.NoError(t, err)

	restored := loadOut.State
	assert.Equal(t, state.Balance, restored.Balance)
	assert.Equal(t, state.Inventory, restored.Inventory)
	assert.Equal(t, state.Unlocks, restored.Unlocks)
	assert.Equal(t, state.Level, restored.Level)
	assert.Equal(t, state.XP, restored.XP)
	assert.Equal(t, state.Clock, restored.Clock)
	assert.Equal(t, state.Discovery, restored.Discovery)
	assert.Equal(t, state.Quests, restored.Quests)
	assert.Equal(t, entities.ZoneLake, restored.CurrentZone)
}

func TestFile_LoadMissingIsNotFound(t *testing.T) {
	repo, _ := newFileRepo(t)

	_, err := repo.Load(context.Background(), gamestate.LoadInput{})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestFile_TamperedSaveIsFatal(t *testing.T) {
	repo, path := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Save(ctx, gamestate.SaveInput{State: sampleState()})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	tampered := strings.Replace(string(data), "1234.56", "9999999", 1)
	require.NotEqual(t, string(data), tampered)
	require.NoError(t, os.WriteFile(path, []byte(tampered), 0o644))

	_, err = repo.Load(ctx, gamestate.LoadInput{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataLoss, errors.GetCode(err))
	assert.True(t, errors.GetCode(err).Fatal())
}

func TestFile_CorruptJSONIsFatal(t *testing.T) {
	repo, path := newFileRepo(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := repo.Load(context.Background(), gamestate.LoadInput{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataLoss, errors.GetCode(err))
}

func TestFile_SaveOverwritesAtomically(t *testing.T) {
	repo, path := newFileRepo(t)
	ctx := context.Background()

	first := sampleState()
	_, err := repo.Save(ctx, gamestate.SaveInput{State: first})
	require.NoError(t, err)

	second := sampleState()
	second.Balance = 42.0
	_, err = repo.Save(ctx, gamestate.SaveInput{State: second})
	require.NoError(t, err)

	out, err := repo.Load(ctx, gamestate.LoadInput{})
	require.NoError(t, err)
	assert.Equal(t, 42.0, out.State.Balance)

	// no stray temp files linger next to the save
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFile_StampsSaveTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	instant := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	repo, err := gamestate.NewFile(&gamestate.FileConfig{
		Path:  path,
		Clock: &clock.Fixed{Instant: instant},
	})
	require.NoError(t, err)

	_, err = repo.Save(context.Background(), gamestate.SaveInput{State: sampleState()})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc gamestate.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2026-03-14T15:09:26Z", doc.SavedAt)
}

func TestChecksum_IgnoresStoredChecksumField(t *testing.T) {
	doc := gamestate.ToDocument(sampleState())

	bare, err := gamestate.ComputeChecksum(doc)
	require.NoError(t, err)

	doc.Checksum = bare
	again, err := gamestate.ComputeChecksum(doc)
	require.NoError(t, err)
	assert.Equal(t, bare, again)
}

func TestFromDocument_OlderSchemaGetsDefaults(t *testing.T) {
	// a minimal document from before discovery and quests existed
	var doc gamestate.Document
	require.NoError(t, json.Unmarshal([]byte(`{"balance": 500, "level": 2}`), &doc))

	state := gamestate.FromDocument(&doc)
	assert.Equal(t, 500.0, state.Balance)
	assert.Equal(t, 2, state.Level)
	assert.Equal(t, gametime.Nothing, state.Clock.Event)
	assert.NotNil(t, state.Discovery)
	assert.NotNil(t, state.Quests)
	assert.Equal(t, entities.ZoneLake, state.CurrentZone)
}
