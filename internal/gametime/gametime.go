// Package gametime tracks the in-game hour, day, and nightly event.
// One hour passes per cast; seasons turn weekly.
package gametime

import (
	"github.com/castaway-games/angler/internal/pkg/dice"
)

// TimeOfDay is the band the current hour falls into
type TimeOfDay string

// Time-of-day bands
const (
	Day    TimeOfDay = "Day"    // 06:00-18:00
	Sunset TimeOfDay = "Sunset" // 18:00-22:00
	Night  TimeOfDay = "Night"  // otherwise
)

// Season is the quarter of the four-week cycle
type Season string

// Seasons, one per in-game week
const (
	Spring Season = "Spring"
	Summer Season = "Summer"
	Autumn Season = "Autumn"
	Winter Season = "Winter"
)

// Event is the nightly random event
type Event string

// Nightly events
const (
	Nothing  Event = "Nothing"
	FullMoon Event = "Full Moon"
)

const (
	hoursPerDay    = 24
	daysPerSeason  = 7
	nightBandStart = 20
	fullMoonPct    = 20
)

// State is the persisted clock state
type State struct {
	Hour  int
	Day   int
	Event Event
}

// NewState returns a clock at midnight of day zero
func NewState() State {
	return State{Hour: 0, Day: 0, Event: Nothing}
}

// Advance moves the clock forward one hour, wrapping at midnight and
// bumping the day counter on wraparound. Outside the night band the
// nightly event resets; inside it, an undecided night rolls for a full
// moon at each hour until one lands or morning comes.
func (s *State) Advance(roller dice.Roller) {
	s.Hour = (s.Hour + 1) % hoursPerDay
	if s.Hour == 0 {
		s.Day++
	}

	if s.Hour < nightBandStart {
		s.Event = Nothing
		return
	}
	if s.Event == Nothing && roller.Percent() <= fullMoonPct {
		s.Event = FullMoon
	}
}

// TimeOfDay maps the current hour to its band
func (s State) TimeOfDay() TimeOfDay {
	switch {
	case s.Hour >= 6 && s.Hour < 18:
		return Day
	case s.Hour >= 18 && s.Hour < 22:
		return Sunset
	default:
		return Night
	}
}

// Season maps the day counter to the current season
func (s State) Season() Season {
	switch (s.Day / daysPerSeason) % 4 {
	case 0:
		return Spring
	case 1:
		return Summer
	case 2:
		return Autumn
	default:
		return Winter
	}
}
