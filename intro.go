package main

// Handles drawing the welcome line that appears when the document is empty.

import "fmt"

// welcomeText returns the banner shown on an empty document.
func welcomeText() string {
	return fmt.Sprintf("MOOSE EDITOR -- VERSION %s", Version)
}

// drawWelcome draws the centered banner on screen row y. The row keeps its
// '~' marker when there is room left of the text.
func (e *Editor) drawWelcome(y, width int) {
	msg := welcomeText()
	if len(msg) > width {
		msg = msg[:width]
	}

	padding := (width - len(msg)) / 2
	if padding > 0 {
		e.screen.SetCell(0, y, '~', GetThemeColor(ColorEmptyLine))
	}

	st := GetThemeColor(ColorWelcome)
	for i := 0; i < len(msg); i++ {
		e.screen.SetCell(padding+i, y, rune(msg[i]), st)
	}
}
