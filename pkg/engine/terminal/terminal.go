// Package terminal probes the controlling terminal so previews can size
// themselves to the visible area.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// FitViewport clamps a map viewport to the current terminal, reserving
// the given number of rows for legends and prompts.
func FitViewport(mapWidth, mapHeight, reservedRows int) (width, height int) {
	termWidth, termHeight := GetSize()
	return Clamp(mapWidth, mapHeight, termWidth, termHeight-reservedRows)
}

// Clamp limits a viewport to the available width and height, never
// returning less than one cell in either dimension.
func Clamp(mapWidth, mapHeight, availWidth, availHeight int) (width, height int) {
	width = mapWidth
	if width > availWidth {
		width = availWidth
	}
	if width < 1 {
		width = 1
	}
	height = mapHeight
	if height > availHeight {
		height = availHeight
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
