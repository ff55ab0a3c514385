// Package overlay composites one rendered block on top of another.
package overlay

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/ansi"
)

const resetStyle = "\x1b[0m"

// PlaceOverlay draws fg over bg with its top-left corner at column x, row y.
// Both may contain ANSI styling. Parts of fg outside bg are dropped.
func PlaceOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	for i, fgLine := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLine := bgLines[row]
		bgWidth := ansi.PrintableRuneWidth(bgLine)
		fgWidth := ansi.PrintableRuneWidth(fgLine)

		var b strings.Builder
		if bgWidth >= x {
			b.WriteString(xansi.Truncate(bgLine, x, ""))
		} else {
			b.WriteString(bgLine)
			b.WriteString(strings.Repeat(" ", x-bgWidth))
		}
		b.WriteString(resetStyle)
		b.WriteString(fgLine)
		b.WriteString(resetStyle)
		if end := x + fgWidth; end < bgWidth {
			b.WriteString(xansi.Cut(bgLine, end, bgWidth))
		}
		bgLines[row] = b.String()
	}

	return strings.Join(bgLines, "\n")
}

// Center returns the position that centers a w by h block on a width by
// height surface.
func Center(width, height, w, h int) (x, y int) {
	x = (width - w) / 2
	y = (height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
