// Package flf loads FIGlet-format (flf2a) font definitions into glyph tables.
package flf

import (
	"errors"
	"slices"
)

// Errors reported by Load and Parse. They are always wrapped with context;
// use errors.Is to test for them.
var (
	ErrBadMagic  = errors.New("flf: missing flf2a signature")
	ErrBadHeader = errors.New("flf: malformed header")
	ErrIO        = errors.New("flf: read failed")
	ErrParse     = errors.New("flf: unusable font data")
)

// Printable ASCII range covered by every loaded font.
const (
	FirstCode rune = 32
	LastCode  rune = 126
)

// Header holds the numeric metadata of the first font line.
type Header struct {
	Hardblank      rune `json:"hardblank"`
	Height         int  `json:"height"`
	Baseline       int  `json:"baseline"`
	MaxLength      int  `json:"maxLength"`
	OldLayout      int  `json:"oldLayout"`
	CommentLines   int  `json:"commentLines"`
	PrintDirection int  `json:"printDirection"`
	NumChars       int  `json:"numChars"`
	CodetagCount   int  `json:"codetagCount"`
}

// Font is a parsed glyph table. A Font returned by Load or Parse is complete
// and is never modified afterwards.
type Font struct {
	header Header
	glyphs map[rune][]string
}

// Header returns a copy of the font metadata.
func (f *Font) Header() Header { return f.header }

// Height is the number of rows of every glyph.
func (f *Font) Height() int { return f.header.Height }

// SmushingRules is old_layout clamped at zero. Renderers only test it for
// zero vs nonzero.
func (f *Font) SmushingRules() int { return max(f.header.OldLayout, 0) }

// Len reports the number of glyphs in the table.
func (f *Font) Len() int {
	if f == nil {
		return 0
	}
	return len(f.glyphs)
}

// Glyph returns a copy of the rows for r. Rows beyond the glyph's own length
// should be treated as empty strings.
func (f *Font) Glyph(r rune) ([]string, bool) {
	if f == nil {
		return nil, false
	}
	rows, ok := f.glyphs[r]
	if !ok {
		return nil, false
	}
	return slices.Clone(rows), true
}
