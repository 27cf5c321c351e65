package main

// Prints every highlight class in the color the drawer uses for it. This is
// useful for checking how a terminal theme renders the palette.

import (
	"fmt"
	"io"

	"moose/internal/buffer"
)

// PrintColors writes one line per highlight tag: its SGR code and its name
// drawn in that color.
func PrintColors(w io.Writer) error {
	for _, t := range buffer.Tags() {
		st := tagStyle(t)
		code := st.FG
		if code == 0 {
			code = t.Color()
		}
		if _, err := fmt.Fprintf(w, "%3d  \x1b[%dm%-14s\x1b[0m\n", code, code, t); err != nil {
			return err
		}
	}
	return nil
}
