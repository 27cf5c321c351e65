package main

// Provides a way to view all syntax profiles, the files they apply to and
// whether a grammar backs the post-save syntax check.

import (
	"fmt"
	"io"
	"strings"

	"moose/internal/buffer"
	"moose/internal/syntaxcheck"
)

// PrintProfiles prints a summary table of the registered syntax profiles in
// match order.
func PrintProfiles(w io.Writer, reg *buffer.Registry) error {
	// Table header.
	if _, err := fmt.Fprintf(w, "%-12s %-8s %-8s %s\n", "Name", "Comment", "Check", "Files"); err != nil {
		return err
	}
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, p := range reg.Profiles() {
		syn := p.Syntax()

		comment := syn.LineComment
		if comment == "" {
			comment = "-"
		}
		check := "no"
		if syntaxcheck.Supported(p.Name()) {
			check = "yes"
		}

		if _, err := fmt.Fprintf(w, "%-12s %-8s %-8s %s\n", p.Name(), comment, check, strings.Join(syn.FileMatch, " ")); err != nil {
			return err
		}
	}
	return nil
}
