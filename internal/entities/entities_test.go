package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/castaway-games/angler/internal/entities"
	"github.com/castaway-games/angler/internal/gametime"
)

func TestCaughtItem_Value(t *testing.T) {
	item := entities.CaughtItem{Name: "Carp", Price: 1, Weight: 2.0}
	assert.Equal(t, 2.0, item.Value())

	item = entities.CaughtItem{Name: "Tilapia", Price: 1.25, Weight: 1.3}
	assert.Equal(t, 1.63, item.Value())
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 1.63, entities.RoundMoney(1.625))
	assert.Equal(t, 2.5, entities.RoundWeight(2.45))
	assert.Equal(t, 0.0, entities.RoundMoney(0.004))
}

func TestDiscovery_MaximaAreMonotonic(t *testing.T) {
	d := make(entities.Discovery)

	d.Record(entities.ZoneLake, "Carp", 2.0, 2.0)
	d.Record(entities.ZoneLake, "Carp", 1.0, 1.0)
	d.Record(entities.ZoneLake, "Carp", 3.5, 3.5)

	entry, ok := d.Entry(entities.ZoneLake, "Carp")
	assert.True(t, ok)
	assert.Equal(t, 3, entry.Count)
	assert.Equal(t, 3.5, entry.MaxWeight)
	assert.Equal(t, 3.5, entry.MaxValue)
}

func TestDiscovery_ZonesAreIndependent(t *testing.T) {
	d := make(entities.Discovery)
	d.Record(entities.ZoneLake, "Lanternfish", 5, 75)
	d.Record(entities.ZoneAbyssTrench, "Lanternfish", 10, 150)

	lake, _ := d.Entry(entities.ZoneLake, "Lanternfish")
	trench, _ := d.Entry(entities.ZoneAbyssTrench, "Lanternfish")
	assert.Equal(t, 5.0, lake.MaxWeight)
	assert.Equal(t, 10.0, trench.MaxWeight)

	_, ok := d.Entry(entities.ZoneSea, "Lanternfish")
	assert.False(t, ok)
}

func TestCreatureDef_Gating(t *testing.T) {
	anytime := entities.CreatureDef{Name: "Carp"}
	assert.True(t, anytime.BitesAt(gametime.Day))
	assert.True(t, anytime.InSeason(gametime.Winter))

	nocturnal := entities.CreatureDef{
		Name:    "Moonbeam Bass",
		Times:   []gametime.TimeOfDay{gametime.Night},
		Seasons: []gametime.Season{gametime.Summer, gametime.Autumn},
	}
	assert.False(t, nocturnal.BitesAt(gametime.Day))
	assert.True(t, nocturnal.BitesAt(gametime.Night))
	assert.True(t, nocturnal.InSeason(gametime.Summer))
	assert.False(t, nocturnal.InSeason(gametime.Spring))
}

func TestZone_Unlocked(t *testing.T) {
	lake := entities.Zone{ID: entities.ZoneLake}
	sea := entities.Zone{ID: entities.ZoneSea, Requires: []entities.UnlockItem{entities.UnlockBoat}}
	spring := entities.Zone{
		ID:       entities.ZoneMysticSpring,
		Requires: []entities.UnlockItem{entities.UnlockTorch, entities.UnlockMoonlitKey},
	}

	var u entities.Unlocks
	assert.True(t, lake.Unlocked(u))
	assert.False(t, sea.Unlocked(u))

	u.Grant(entities.UnlockBoat)
	assert.True(t, sea.Unlocked(u))

	u.Grant(entities.UnlockTorch)
	assert.False(t, spring.Unlocked(u), "both torch and key are needed")
	u.Grant(entities.UnlockMoonlitKey)
	assert.True(t, spring.Unlocked(u))
}

func TestQuest_Matches(t *testing.T) {
	exact := entities.Quest{Kind: entities.QuestExactCreature, TargetName: "Carp"}
	assert.True(t, exact.Matches("Carp", entities.RarityCommon))
	assert.False(t, exact.Matches("Tilapia", entities.RarityCommon))

	byRarity := entities.Quest{Kind: entities.QuestRarityClass, TargetRarity: entities.RarityRare}
	assert.True(t, byRarity.Matches("Catfish", entities.RarityRare))
	assert.False(t, byRarity.Matches("Carp", entities.RarityCommon))
}

func TestQuest_Completed(t *testing.T) {
	q := entities.Quest{Amount: 3, Progress: 2}
	assert.False(t, q.Completed())
	q.Progress = 3
	assert.True(t, q.Completed())
}
