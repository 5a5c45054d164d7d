// Package compose turns text into banner rows using a loaded flf font.
package compose

import (
	"strings"

	"github.com/ByLCY/figbanner/ansi"
	"github.com/ByLCY/figbanner/flf"
)

// Options controls a single Render call. Colors must already be resolved
// through the ansi palette; the zero Code leaves rows untinted.
type Options struct {
	Kerning    bool
	Color      ansi.Code
	Background ansi.Code
}

// Render composes text with font. Each "\n"-separated paragraph contributes
// font.Height() rows, in order, with no separator between paragraphs. Runes
// the font does not define are drawn with the space glyph.
func Render(text string, font *flf.Font, opts Options) []string {
	if text == "" || font.Len() == 0 {
		return nil
	}

	space, _ := font.Glyph(' ')
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		if paragraph == "" {
			continue
		}
		var blocks [][]string
		for _, r := range paragraph {
			rows, ok := font.Glyph(r)
			if !ok {
				rows = space
			}
			blocks = append(blocks, rows)
		}

		smush := opts.Kerning && font.SmushingRules() != 0 && len(blocks) > 1
		parts := make([]string, len(blocks))
		for i := range font.Height() {
			for j, rows := range blocks {
				parts[j] = ""
				if i < len(rows) {
					parts[j] = rows[i]
				}
			}
			var row string
			if smush {
				row = parts[0]
				for _, part := range parts[1:] {
					row = Smush(row, part)
				}
			} else {
				row = strings.Join(parts, "")
			}
			out = append(out, ansi.Wrap(row, opts.Color, opts.Background))
		}
	}
	return out
}

// Smush joins two row fragments with a one-column overlap:
//
//   - a space at the end of left is dropped in favor of right;
//   - otherwise a space at the start of right is dropped;
//   - two equal boundary characters collapse into one;
//   - distinct boundary characters are kept side by side.
func Smush(left, right string) string {
	if left == "" || right == "" {
		return left + right
	}
	l, r := []rune(left), []rune(right)
	base, last, first := string(l[:len(l)-1]), l[len(l)-1], r[0]

	switch {
	case last == ' ':
		return base + right
	case first == ' ', last == first:
		return base + string(last) + string(r[1:])
	default:
		return left + right
	}
}
