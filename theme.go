package main

// Color palette used by the editor. Maps semantic color names to the styles the
// terminal backends understand. Syntax colors come from the highlight tags.

import (
	"moose/internal/buffer"
	"moose/internal/terminal"
)

// To see the highlight colors execute `moose colors`.

// ColorName is an enum-like type for semantic color identifiers.
type ColorName int

const (
	ColorDefault     ColorName = iota // Default terminal colors.
	ColorStatusBar                    // Status bar above the message line.
	ColorControlChar                  // Control bytes drawn as ^X style symbols.
	ColorEmptyLine                    // The '~' marker for lines beyond EOF.
	ColorWelcome
	ColorMessage
)

// Theme maps each ColorName to its style.
var Theme = map[ColorName]terminal.Style{
	ColorDefault:     {},
	ColorStatusBar:   {Reverse: true},
	ColorControlChar: {Reverse: true},
	ColorEmptyLine:   {},
	ColorWelcome:     {},
	ColorMessage:     {},
}

// GetThemeColor returns the style for a color name, falling back to the
// default.
func GetThemeColor(name ColorName) terminal.Style {
	if st, ok := Theme[name]; ok {
		return st
	}
	return Theme[ColorDefault]
}

// tagStyle returns the style a highlight tag is drawn with.
func tagStyle(t buffer.Tag) terminal.Style {
	if t == buffer.HLNormal {
		return GetThemeColor(ColorDefault)
	}
	return terminal.Style{FG: t.Color()}
}
