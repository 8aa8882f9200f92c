package catalog

import (
	"github.com/castaway-games/angler/internal/entities"
)

// Draw weights per rarity for the weighted catch draw. Exotic is zero:
// exotics only come from the full-moon pool.
var drawWeights = map[entities.Rarity]int{
	entities.RarityCommon:    5,
	entities.RarityUncommon:  3,
	entities.RarityRare:      2,
	entities.RarityEpic:      1,
	entities.RarityLegendary: 1,
	entities.RarityMythical:  1,
	entities.RarityExotic:    0,
}

// DrawWeight returns the draw weight for a rarity. Unknown rarities
// draw like Uncommon.
func DrawWeight(r entities.Rarity) int {
	if w, ok := drawWeights[r]; ok {
		return w
	}
	return 3
}

var rarityXP = map[entities.Rarity]int{
	entities.RarityCommon:    5,
	entities.RarityUncommon:  10,
	entities.RarityRare:      30,
	entities.RarityEpic:      100,
	entities.RarityLegendary: 1000,
	entities.RarityMythical:  1000,
	entities.RarityExotic:    100000,
}

// XPForRarity returns the default experience yield for a rarity
func XPForRarity(r entities.Rarity) int {
	return rarityXP[r]
}

var questRewardBase = map[entities.Rarity]float64{
	entities.RarityCommon:    100,
	entities.RarityUncommon:  200,
	entities.RarityRare:      3000,
	entities.RarityEpic:      5000,
	entities.RarityLegendary: 10000,
	entities.RarityMythical:  15000,
	entities.RarityExotic:    50000,
}

// QuestRewardBase returns the per-unit quest reward for a rarity
func QuestRewardBase(r entities.Rarity) float64 {
	if base, ok := questRewardBase[r]; ok {
		return base
	}
	return 100
}

var seaMultipliers = map[entities.Rarity]float64{
	entities.RarityUncommon:  1.25,
	entities.RarityRare:      2,
	entities.RarityEpic:      3,
	entities.RarityLegendary: 5,
	entities.RarityMythical:  7,
}

// PriceMultiplier returns the rarity multiplier used by zones with
// multiplier pricing. Rarities without one sell at base price.
func PriceMultiplier(r entities.Rarity) float64 {
	if m, ok := seaMultipliers[r]; ok {
		return m
	}
	return 1
}

var fallbackWeights = map[entities.Rarity]entities.WeightRange{
	entities.RarityCommon:    {Low: 0.5, High: 2.5},
	entities.RarityUncommon:  {Low: 1.0, High: 4.0},
	entities.RarityRare:      {Low: 2.0, High: 6.0},
	entities.RarityEpic:      {Low: 3.0, High: 8.0},
	entities.RarityLegendary: {Low: 5.0, High: 12.0},
	entities.RarityMythical:  {Low: 8.0, High: 20.0},
}

// FallbackWeightRange returns the weight range for creatures without a
// bespoke one
func FallbackWeightRange(r entities.Rarity) entities.WeightRange {
	if wr, ok := fallbackWeights[r]; ok {
		return wr
	}
	return entities.WeightRange{Low: 1.0, High: 3.0}
}
