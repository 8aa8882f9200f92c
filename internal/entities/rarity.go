package entities

// Rarity classifies a creature, driving draw weight, experience yield,
// and quest reward scale
type Rarity string

// Rarity values, rarest last. Boss sits outside the normal draw order:
// boss entries never appear in weighted draws or quest generation.
const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMythical  Rarity = "Mythical"
	RarityExotic    Rarity = "Exotic"
	RarityBoss      Rarity = "Boss"
)

// Rarities lists the normal rarities in ascending order, Boss excluded
var Rarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythical,
	RarityExotic,
}

// Valid reports whether the rarity is a known value
func (r Rarity) Valid() bool {
	if r == RarityBoss {
		return true
	}
	for _, known := range Rarities {
		if r == known {
			return true
		}
	}
	return false
}
