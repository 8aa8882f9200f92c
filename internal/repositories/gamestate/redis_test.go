package gamestate_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castaway-games/angler/internal/entities"
	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/repositories/gamestate"
	"github.com/castaway-games/angler/internal/testutils"
)

func TestRedis_SaveThenLoadRoundTrips(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	repo, err := gamestate.NewRedis(&gamestate.RedisConfig{Client: client})
	require.NoError(t, err)

	ctx := context.Background()
	state := sampleState()

	saveOut, err := repo.Save(ctx, gamestate.SaveInput{State: state})
	require.NoError(t, err)
	assert.NotEmpty(t, saveOut.Checksum)

	loadOut, err := repo.Load(ctx, gamestate.LoadInput{})
	require.NoError(t, err)
	assert.Equal(t, state.Balance, loadOut.State.Balance)
	assert.Equal(t, state.Inventory, loadOut.State.Inventory)
	assert.Equal(t, state.Quests, loadOut.State.Quests)
}

func TestRedis_LoadMissingIsNotFound(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	repo, err := gamestate.NewRedis(&gamestate.RedisConfig{Client: client})
	require.NoError(t, err)

	_, err = repo.Load(context.Background(), gamestate.LoadInput{})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRedis_TamperedSaveIsFatal(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisClientWithServer(t)
	defer cleanup()

	repo, err := gamestate.NewRedis(&gamestate.RedisConfig{Client: client, SaveKey: "save:slot1"})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = repo.Save(ctx, gamestate.SaveInput{State: sampleState()})
	require.NoError(t, err)

	stored, err := mr.Get("save:slot1")
	require.NoError(t, err)
	tampered := strings.Replace(stored, `"level":7`, `"level":99`, 1)
	require.NotEqual(t, stored, tampered)
	require.NoError(t, mr.Set("save:slot1", tampered))

	_, err = repo.Load(ctx, gamestate.LoadInput{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataLoss, errors.GetCode(err))
}

func TestRedis_SlotsAreIndependent(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	slotA, err := gamestate.NewRedis(&gamestate.RedisConfig{Client: client, SaveKey: "save:a"})
	require.NoError(t, err)
	slotB, err := gamestate.NewRedis(&gamestate.RedisConfig{Client: client, SaveKey: "save:b"})
	require.NoError(t, err)

	ctx := context.Background()
	stateA := sampleState()
	stateA.Balance = 1
	_, err = slotA.Save(ctx, gamestate.SaveInput{State: stateA})
	require.NoError(t, err)

	_, err = slotB.Load(ctx, gamestate.LoadInput{})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	out, err := slotA.Load(ctx, gamestate.LoadInput{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, out.State.Balance)

	var unlocked entities.Unlocks
	assert.Equal(t, unlocked, out.State.Unlocks)
}
