package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castaway-games/angler/internal/catalog"
	"github.com/castaway-games/angler/internal/entities"
	"github.com/castaway-games/angler/internal/errors"
	"github.com/castaway-games/angler/internal/orchestrators/progression"
)

func newService(t *testing.T) progression.Service {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)

	svc, err := progression.New(&progression.Config{Catalog: cat})
	require.NoError(t, err)
	return svc
}

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, 100, progression.XPForLevel(0))
	assert.Equal(t, 200, progression.XPForLevel(1))
	assert.Equal(t, 10000, progression.XPForLevel(99))
}

func TestAddExperience_SingleLevelWithSurplus(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()

	gained := svc.AddExperience(state, 150)
	assert.Equal(t, 1, gained)
	assert.Equal(t, 1, state.Level)
	assert.Equal(t, 50, state.XP)
}

func TestAddExperience_MultiLevelChain(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()

	// 100 + 200 + 300 = 600 clears levels 0..2 exactly
	gained := svc.AddExperience(state, 600)
	assert.Equal(t, 3, gained)
	assert.Equal(t, 3, state.Level)
	assert.Equal(t, 0, state.XP)
}

func TestAddExperience_BelowThresholdAccrues(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()

	gained := svc.AddExperience(state, 99)
	assert.Equal(t, 0, gained)
	assert.Equal(t, 0, state.Level)
	assert.Equal(t, 99, state.XP)
}

func TestAddExperience_CapZeroesSurplus(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()
	state.Level = 99
	state.XP = 0

	gained := svc.AddExperience(state, progression.XPForLevel(99)+5000)
	assert.Equal(t, 1, gained)
	assert.Equal(t, entities.MaxLevel, state.Level)
	assert.Equal(t, 0, state.XP)

	// further gains are discarded at the cap
	gained = svc.AddExperience(state, 1_000_000)
	assert.Equal(t, 0, gained)
	assert.Equal(t, entities.MaxLevel, state.Level)
	assert.Equal(t, 0, state.XP)
}

func TestRecordCatch_ThenSellAll(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()
	require.Equal(t, 100.0, state.Balance)

	out := svc.RecordCatch(state, &progression.CatchResult{
		Item: entities.CaughtItem{
			ID: "catch_1", Name: "Carp", Rarity: entities.RarityCommon,
			Price: 1, Weight: 2.0, Zone: entities.ZoneLake,
		},
		XP: 5,
	})
	assert.Equal(t, 0, out.LevelsGained)

	require.Len(t, state.Inventory, 1)
	entry, ok := state.Discovery.Entry(entities.ZoneLake, "Carp")
	require.True(t, ok)
	assert.Equal(t, entities.DiscoveryEntry{Count: 1, MaxWeight: 2.0, MaxValue: 2.0}, entry)

	sold, err := svc.Sell(state, &progression.SellInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, sold.Sold)
	assert.Equal(t, 2.0, sold.Credit)
	assert.Equal(t, 102.0, state.Balance)
	assert.Empty(t, state.Inventory)
}

func TestRecordCatch_GrantsUnlocks(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()

	svc.RecordCatch(state, &progression.CatchResult{
		Item: entities.CaughtItem{
			ID: "catch_1", Name: "Ancient Key", Rarity: entities.RarityLegendary,
			Price: 25, Weight: 120.0, Zone: entities.ZoneAbyssTrench,
		},
		XP:     50,
		Grants: []entities.UnlockItem{entities.UnlockAncientKey},
	})

	assert.True(t, state.Unlocks.AncientKey)
}

func TestSell_PredicateAndLimit(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()
	state.Inventory = []entities.CaughtItem{
		{ID: "1", Name: "Carp", Rarity: entities.RarityCommon, Price: 10, Weight: 1.0, Zone: entities.ZoneLake},
		{ID: "2", Name: "Tuna", Rarity: entities.RarityRare, Price: 80, Weight: 3.0, Zone: entities.ZoneSea},
		{ID: "3", Name: "Carp", Rarity: entities.RarityCommon, Price: 10, Weight: 2.0, Zone: entities.ZoneLake},
		{ID: "4", Name: "Carp", Rarity: entities.RarityCommon, Price: 10, Weight: 1.5, Zone: entities.ZoneLake},
	}

	out, err := svc.Sell(state, &progression.SellInput{
		Match: func(i entities.CaughtItem) bool { return i.Name == "Carp" },
		Limit: 2,
	})
	require.NoError(t, err)

	// front-to-back: entries 1 and 3 go, entry 4 survives the limit
	assert.Equal(t, 2, out.Sold)
	assert.Equal(t, 30.0, out.Credit)
	assert.Equal(t, 130.0, state.Balance)
	require.Len(t, state.Inventory, 2)
	assert.Equal(t, "2", state.Inventory[0].ID)
	assert.Equal(t, "4", state.Inventory[1].ID)
}

func TestSell_RoundsSumNotTerms(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()
	state.Balance = 0
	state.Inventory = []entities.CaughtItem{
		{ID: "1", Name: "Sardine", Rarity: entities.RarityCommon, Price: 0.333, Weight: 1.0, Zone: entities.ZoneSea},
		{ID: "2", Name: "Sardine", Rarity: entities.RarityCommon, Price: 0.333, Weight: 1.0, Zone: entities.ZoneSea},
		{ID: "3", Name: "Sardine", Rarity: entities.RarityCommon, Price: 0.333, Weight: 1.0, Zone: entities.ZoneSea},
	}

	out, err := svc.Sell(state, &progression.SellInput{})
	require.NoError(t, err)

	// 3 × 0.333 = 0.999 rounds once, to 1.00, not term by term to 0.99
	assert.Equal(t, 1.0, out.Credit)
	assert.Equal(t, 1.0, state.Balance)
}

func TestSell_NoMatchesIsANoOp(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()
	state.Inventory = []entities.CaughtItem{
		{ID: "1", Name: "Carp", Rarity: entities.RarityCommon, Price: 10, Weight: 1.0, Zone: entities.ZoneLake},
	}

	out, err := svc.Sell(state, &progression.SellInput{
		Match: func(i entities.CaughtItem) bool { return i.Name == "Whale" },
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Sold)
	assert.Equal(t, 0.0, out.Credit)
	assert.Equal(t, 100.0, state.Balance)
	assert.Len(t, state.Inventory, 1)
}

func TestPurchase_Boat(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()
	state.Balance = 30000

	out, err := svc.Purchase(state, "Boat")
	require.NoError(t, err)

	assert.Equal(t, 5000.0, out.Balance)
	assert.True(t, state.Unlocks.Boat)
}

func TestPurchase_InsufficientBalance(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()

	_, err := svc.Purchase(state, "Boat")
	require.Error(t, err)
	assert.Equal(t, errors.CodeFailedPrecondition, errors.GetCode(err))
	assert.Equal(t, 100.0, state.Balance)
	assert.False(t, state.Unlocks.Boat)
}

func TestPurchase_AlreadyOwned(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()
	state.Balance = 100000
	state.Unlocks.Boat = true

	_, err := svc.Purchase(state, "Boat")
	require.Error(t, err)
	assert.Equal(t, errors.CodeFailedPrecondition, errors.GetCode(err))
	assert.Equal(t, 100000.0, state.Balance)
}

func TestPurchase_FinalUpgradeNeedsTheKey(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()
	state.Balance = 200_000_000
	state.Unlocks.SubUpgrade1 = true

	_, err := svc.Purchase(state, "Submarine Upgrade 02")
	require.Error(t, err)
	assert.Equal(t, errors.CodeFailedPrecondition, errors.GetCode(err))

	state.Unlocks.AncientKey = true
	out, err := svc.Purchase(state, "Submarine Upgrade 02")
	require.NoError(t, err)
	assert.Equal(t, 100_000_000.0, out.Balance)
	assert.True(t, state.Unlocks.SubUpgrade2)
}

func TestPurchase_UnknownItem(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()

	_, err := svc.Purchase(state, "Jetpack")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestGrantCredit(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()

	balance := svc.GrantCredit(state)
	assert.Equal(t, 10_000_100.0, balance)
	assert.Equal(t, 10_000_100.0, state.Balance)
}

func TestUnlockedZones_FreshSession(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()

	zones := svc.UnlockedZones(state)
	require.Len(t, zones, 1)
	assert.Equal(t, entities.ZoneLake, zones[0].ID)
}

func TestUnlockedZones_Progression(t *testing.T) {
	svc := newService(t)
	state := entities.NewGameState()
	state.Unlocks = entities.Unlocks{Boat: true, Submarine: true}

	zones := svc.UnlockedZones(state)
	ids := make([]entities.ZoneID, 0, len(zones))
	for _, z := range zones {
		ids = append(ids, z.ID)
	}
	assert.Equal(t, []entities.ZoneID{entities.ZoneLake, entities.ZoneSea, entities.ZoneBathyal}, ids)

	// the spring needs both the torch and the moonlit key
	state.Unlocks.Torch = true
	assert.Len(t, svc.UnlockedZones(state), 3)
	state.Unlocks.MoonlitKey = true
	assert.Len(t, svc.UnlockedZones(state), 4)
}
