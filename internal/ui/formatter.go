package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

func PadRight(str string, width int) string {
	w := runewidth.StringWidth(str)
	if w < width {
		return str + strings.Repeat(" ", width-w)
	}
	return str
}

// Frame draws a box around lines without wrapping them
func Frame(lines []string) []string {
	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	border := "+" + strings.Repeat("-", width+2) + "+"
	framed := make([]string, 0, len(lines)+2)
	framed = append(framed, border)
	for _, line := range lines {
		framed = append(framed, "| "+PadRight(line, width)+" |")
	}
	framed = append(framed, border)
	return framed
}
