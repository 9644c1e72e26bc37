package ui

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// ElapsedTime renders seconds as HH:MM:SS. Hours are not wrapped at 24.
func ElapsedTime(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds%60)
}

// FormatMemory renders a kB token from the status record in binary units.
// Tokens that are not numbers are returned unchanged.
func FormatMemory(kb string) string {
	v, err := strconv.ParseUint(kb, 10, 64)
	if err != nil {
		return kb
	}
	return humanize.IBytes(v * 1024)
}

// Percent renders a [0,1] fraction as a percentage.
func Percent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// truncateString cuts s to at most maxLen terminal cells, never inside a
// character.
func truncateString(s string, maxLen int) string {
	tail := "..."
	if maxLen < 4 {
		tail = ""
	}
	return runewidth.Truncate(s, maxLen, tail)
}
