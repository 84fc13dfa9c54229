// Package ui defines the presentation vocabulary of the shell: colors and
// the styles applied to spans of text when they are rendered.
package ui

import "strings"

// Style specifies how a piece of text shall be displayed: a foreground
// color, an optional background color, and whether it is rendered bold.
// The zero value is the terminal's default rendition. Equality is
// structural.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
}

// SGR returns the SGR sequence for the style.
func (s Style) SGR() string {
	var sgr []string
	if s.Bold {
		sgr = append(sgr, "1")
	}
	if s.Foreground != nil {
		sgr = append(sgr, s.Foreground.fgSGR())
	}
	if s.Background != nil {
		sgr = append(sgr, s.Background.bgSGR())
	}
	return strings.Join(sgr, ";")
}
