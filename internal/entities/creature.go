package entities

import (
	"github.com/castaway-games/angler/internal/gametime"
)

// WeightRange bounds the generated weight for a catch, in kilograms
type WeightRange struct {
	Low  float64
	High float64
}

// CreatureDef is an immutable catalog entry. Definitions are loaded once
// at process start and shared read-only across the engine.
type CreatureDef struct {
	Name string

	Rarity Rarity

	// Price per kilogram. Zones with multiplier pricing treat this as a
	// base price and scale it by rarity at catch time.
	Price float64

	// XP awarded on catch. Zero means the per-rarity default applies.
	XP int

	// Times restricts when the creature bites. Empty means any time.
	Times []gametime.TimeOfDay

	// Seasons restricts which seasons the creature appears in. Empty
	// means all year.
	Seasons []gametime.Season

	// Weights is the bespoke weight range for this creature. Nil means
	// the per-rarity fallback range applies.
	Weights *WeightRange

	// Grants is the unlock flag set when this creature is caught, for
	// key items pulled out of the water. Empty means none.
	Grants UnlockItem
}

// BitesAt reports whether the creature is eligible at the given time of day
func (c *CreatureDef) BitesAt(tod gametime.TimeOfDay) bool {
	if len(c.Times) == 0 {
		return true
	}
	for _, t := range c.Times {
		if t == tod {
			return true
		}
	}
	return false
}

// InSeason reports whether the creature is eligible in the given season
func (c *CreatureDef) InSeason(season gametime.Season) bool {
	if len(c.Seasons) == 0 {
		return true
	}
	for _, s := range c.Seasons {
		if s == season {
			return true
		}
	}
	return false
}
