package entities

import (
	"github.com/castaway-games/angler/internal/gametime"
)

// StartingBalance is the balance of a fresh session
const StartingBalance = 100

// MaxLevel caps progression; experience is zeroed once reached
const MaxLevel = 100

// Unlocks holds the boolean unlock flags
type Unlocks struct {
	Boat        bool `json:"hasBoat"`
	Submarine   bool `json:"hasSubmarine"`
	Torch       bool `json:"hasTorch"`
	SubUpgrade1 bool `json:"hasAbyssTrenchAccess"`
	SubUpgrade2 bool `json:"hasAncientSeaAccess"`
	AncientKey  bool `json:"hasAncientKey"`
	MoonlitKey  bool `json:"hasMoonlitKey"`
}

// Has reports whether the given unlock item is held
func (u Unlocks) Has(item UnlockItem) bool {
	switch item {
	case UnlockBoat:
		return u.Boat
	case UnlockSubmarine:
		return u.Submarine
	case UnlockTorch:
		return u.Torch
	case UnlockSubUpgrade1:
		return u.SubUpgrade1
	case UnlockSubUpgrade2:
		return u.SubUpgrade2
	case UnlockAncientKey:
		return u.AncientKey
	case UnlockMoonlitKey:
		return u.MoonlitKey
	default:
		return false
	}
}

// Grant sets the given unlock flag
func (u *Unlocks) Grant(item UnlockItem) {
	switch item {
	case UnlockBoat:
		u.Boat = true
	case UnlockSubmarine:
		u.Submarine = true
	case UnlockTorch:
		u.Torch = true
	case UnlockSubUpgrade1:
		u.SubUpgrade1 = true
	case UnlockSubUpgrade2:
		u.SubUpgrade2 = true
	case UnlockAncientKey:
		u.AncientKey = true
	case UnlockMoonlitKey:
		u.MoonlitKey = true
	}
}

// GameState is the complete mutable session state. It is owned by a
// single in-process session; nothing here is safe for concurrent use.
type GameState struct {
	Balance   float64
	Inventory []CaughtItem
	Unlocks   Unlocks
	Level     int
	XP        int
	Clock     gametime.State
	Discovery Discovery
	Quests    map[ZoneID][]Quest

	// CurrentZone is where the next cast happens. Not persisted; a
	// fresh session always starts at the Lake.
	CurrentZone ZoneID
}

// NewGameState returns the default state of a fresh session
func NewGameState() *GameState {
	return &GameState{
		Balance:     StartingBalance,
		Inventory:   nil,
		Level:       0,
		XP:          0,
		Clock:       gametime.NewState(),
		Discovery:   make(Discovery),
		Quests:      make(map[ZoneID][]Quest),
		CurrentZone: ZoneLake,
	}
}
