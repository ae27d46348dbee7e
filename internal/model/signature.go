// Package model defines the data structures shared by the detection engine
// and the CLI layers.
package model

import "fmt"

// Style is the letter of a detected indentation convention.
type Style byte

const (
	// StyleSpaces marks indentation built from spaces only.
	StyleSpaces Style = 's'
	// StyleTabs marks indentation built from tabs only.
	StyleTabs Style = 't'
	// StyleMixed marks indentation built from tabs padded with 0-7 spaces.
	StyleMixed Style = 'm'
	// StyleUnknown marks input without usable indentation evidence.
	StyleUnknown Style = 'u'
)

// Signature is the outcome of indentation detection: a style letter plus the
// column width of one indentation level. For StyleTabs the width is the
// tab-stop width; for StyleUnknown it is zero.
type Signature struct {
	Style Style
	Width int
}

// Spaces returns a spaces signature with the given level width.
func Spaces(width int) Signature {
	return Signature{Style: StyleSpaces, Width: width}
}

// Tabs returns a tabs signature with the given tab-stop width.
func Tabs(width int) Signature {
	return Signature{Style: StyleTabs, Width: width}
}

// Mixed returns a mixed tabs-plus-spaces signature with the given level width.
func Mixed(width int) Signature {
	return Signature{Style: StyleMixed, Width: width}
}

// Unknown returns the signature for input carrying no indentation evidence.
func Unknown() Signature {
	return Signature{Style: StyleUnknown}
}

// String renders the compact form consumed by editor integrations:
// "s4" (spaces), "t8" (tabs), "m4" (mixed) or "u" (unknown).
func (s Signature) String() string {
	if s.Style == StyleUnknown {
		return "u"
	}

	return fmt.Sprintf("%c%d", s.Style, s.Width)
}
