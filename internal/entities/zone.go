package entities

// ZoneID identifies a fishing zone
type ZoneID string

// Zone identifiers
const (
	ZoneLake         ZoneID = "Lake"
	ZoneSea          ZoneID = "Sea"
	ZoneBathyal      ZoneID = "Bathyal"
	ZoneMysticSpring ZoneID = "Mystic Spring"
	ZoneAbyssTrench  ZoneID = "Abyss Trench"
	ZoneAncientSea   ZoneID = "Ancient Sea"
)

// PricingMode selects how a zone turns a catalog price into a sale price
type PricingMode string

// Pricing modes
const (
	// PricingFlat uses the catalog price as-is
	PricingFlat PricingMode = "flat"

	// PricingMultiplier scales the catalog price by a rarity multiplier
	PricingMultiplier PricingMode = "multiplier"

	// PricingBase uses the catalog base price directly, with no multiplier
	PricingBase PricingMode = "base"
)

// UnlockItem is a purchasable or catchable unlock flag
type UnlockItem string

// Unlock items. The first five are shop purchases; the keys are obtained
// from catches.
const (
	UnlockBoat        UnlockItem = "Boat"
	UnlockSubmarine   UnlockItem = "Submarine"
	UnlockTorch       UnlockItem = "Torch"
	UnlockSubUpgrade1 UnlockItem = "Submarine Upgrade 01"
	UnlockSubUpgrade2 UnlockItem = "Submarine Upgrade 02"
	UnlockAncientKey  UnlockItem = "Ancient Key"
	UnlockMoonlitKey  UnlockItem = "Moonlit Key"
)

// Zone is a fishing location with its own roster, difficulty, pricing,
// and unlock gate
type Zone struct {
	ID   ZoneID
	Name string

	// CatchWindow is the width of the skill-check target window
	CatchWindow int

	// SpeedDivisor divides the base sweep interval; deeper zones sweep faster
	SpeedDivisor int

	Pricing PricingMode

	// Requires lists the unlock items needed to fish here. Empty means
	// always available.
	Requires []UnlockItem

	// Creatures is the ordered catalog roster for this zone
	Creatures []CreatureDef

	// Boss is the zone's boss encounter, if any
	Boss *CreatureDef
}

// Unlocked reports whether the zone is accessible with the given unlocks
func (z *Zone) Unlocked(u Unlocks) bool {
	for _, req := range z.Requires {
		if !u.Has(req) {
			return false
		}
	}
	return true
}

// Creature returns the catalog entry with the given name, if present
func (z *Zone) Creature(name string) (*CreatureDef, bool) {
	for i := range z.Creatures {
		if z.Creatures[i].Name == name {
			return &z.Creatures[i], true
		}
	}
	return nil, false
}
