package gametime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/castaway-games/angler/internal/gametime"
	dicemock "github.com/castaway-games/angler/internal/pkg/dice/mock"
)

func TestState_TimeOfDay(t *testing.T) {
	testCases := []struct {
		hour     int
		expected gametime.TimeOfDay
	}{
		{0, gametime.Night},
		{5, gametime.Night},
		{6, gametime.Day},
		{12, gametime.Day},
		{17, gametime.Day},
		{18, gametime.Sunset},
		{21, gametime.Sunset},
		{22, gametime.Night},
		{23, gametime.Night},
	}

	for _, tc := range testCases {
		s := gametime.State{Hour: tc.hour}
		assert.Equal(t, tc.expected, s.TimeOfDay(), "hour %d", tc.hour)
	}
}

func TestState_Season(t *testing.T) {
	testCases := []struct {
		day      int
		expected gametime.Season
	}{
		{0, gametime.Spring},
		{6, gametime.Spring},
		{7, gametime.Summer},
		{14, gametime.Autumn},
		{21, gametime.Winter},
		{28, gametime.Spring},
	}

	for _, tc := range testCases {
		s := gametime.State{Day: tc.day}
		assert.Equal(t, tc.expected, s.Season(), "day %d", tc.day)
	}
}

func TestState_Advance_WrapsAndCountsDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := dicemock.NewMockRoller(ctrl)
	roller.EXPECT().Percent().Return(100).AnyTimes()

	s := gametime.State{Hour: 23, Day: 3}
	s.Advance(roller)

	assert.Equal(t, 0, s.Hour)
	assert.Equal(t, 4, s.Day)
}

func TestState_Advance_ResetsEventInDaytime(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := dicemock.NewMockRoller(ctrl)

	s := gametime.State{Hour: 5, Event: gametime.FullMoon}
	s.Advance(roller)

	assert.Equal(t, gametime.Nothing, s.Event)
}

func TestState_Advance_RollsFullMoonAtNight(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := dicemock.NewMockRoller(ctrl)
	roller.EXPECT().Percent().Return(20)

	s := gametime.State{Hour: 19, Event: gametime.Nothing}
	s.Advance(roller)

	assert.Equal(t, 20, s.Hour)
	assert.Equal(t, gametime.FullMoon, s.Event)
}

func TestState_Advance_FullMoonPersistsThroughNight(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no Percent expectation: a decided night must not reroll
	roller := dicemock.NewMockRoller(ctrl)

	s := gametime.State{Hour: 20, Event: gametime.FullMoon}
	s.Advance(roller)

	assert.Equal(t, 21, s.Hour)
	assert.Equal(t, gametime.FullMoon, s.Event)
}

func TestState_Advance_MissedRollRetriesNextHour(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := dicemock.NewMockRoller(ctrl)
	gomock.InOrder(
		roller.EXPECT().Percent().Return(90),
		roller.EXPECT().Percent().Return(10),
	)

	s := gametime.State{Hour: 19, Event: gametime.Nothing}
	s.Advance(roller)
	assert.Equal(t, gametime.Nothing, s.Event)

	s.Advance(roller)
	assert.Equal(t, gametime.FullMoon, s.Event)
}
