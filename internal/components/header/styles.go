package header

import _ "embed"

// Breakpoint is the widest viewport, in CSS pixels, that uses the collapsible
// panel. Wider viewports always show the navigation inline.
const Breakpoint = 720

//go:embed header.css
var stylesheet []byte

// Stylesheet returns the header's presentation rules.
func Stylesheet() []byte {
	return stylesheet
}
