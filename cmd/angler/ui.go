package main

import (
	"fmt"
	"strings"

	"github.com/castaway-games/angler/internal/entities"
	"github.com/castaway-games/angler/internal/gametime"
	"github.com/castaway-games/angler/internal/orchestrators/skillcheck"
)

const (
	ansiReset   = "\033[0m"
	ansiBold    = "\033[1m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
	ansiWhite   = "\033[37m"
)

var rarityColors = map[entities.Rarity]string{
	entities.RarityCommon:    ansiWhite,
	entities.RarityUncommon:  ansiGreen,
	entities.RarityRare:      ansiCyan,
	entities.RarityEpic:      ansiMagenta,
	entities.RarityLegendary: ansiYellow,
	entities.RarityMythical:  ansiRed,
	entities.RarityExotic:    ansiBold + ansiCyan,
	entities.RarityBoss:      ansiBold + ansiRed,
}

func colorize(rarity entities.Rarity, text string) string {
	color, ok := rarityColors[rarity]
	if !ok {
		return text
	}
	return color + text + ansiReset
}

// renderFrame draws one skill check tick in place. The window is dashes,
// the marker a caret.
func renderFrame(f skillcheck.Frame) {
	var sb strings.Builder
	sb.WriteString("\r[")
	for pos := 0; pos < f.TrackLength; pos++ {
		switch {
		case pos == f.Marker:
			sb.WriteString(ansiBold + "^" + ansiReset)
		case pos >= f.TargetStart && pos <= f.TargetEnd:
			sb.WriteString(ansiGreen + "-" + ansiReset)
		default:
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	fmt.Print(sb.String())
}

func describeClock(clock gametime.State) string {
	desc := fmt.Sprintf("Day %d, %02d:00 (%s, %s)",
		clock.Day, clock.Hour, clock.TimeOfDay(), clock.Season())
	if clock.Event != gametime.Nothing {
		desc += " " + ansiBold + ansiYellow + string(clock.Event) + ansiReset
	}
	return desc
}
