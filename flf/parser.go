package flf

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Endmark terminates every glyph row; doubled, it terminates the glyph.
// Fonts that pick a different endmark character are not supported.
const Endmark = "@"

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Load reads and parses the font file at path.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}
	font, err := parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return font, nil
}

// Parse reads a complete font definition from r.
func Parse(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return parse(string(data))
}

// ParseString parses a font definition held in memory.
func ParseString(input string) (*Font, error) {
	return parse(input)
}

func parse(content string) (*Font, error) {
	content = strings.ToValidUTF8(content, "�")
	lines := strings.Split(lineEndings.Replace(content), "\n")

	if !strings.HasPrefix(lines[0], Signature) {
		return nil, ErrBadMagic
	}
	hdr, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}
	if hdr.Height < 0 || hdr.MaxLength < 0 {
		return nil, fmt.Errorf("%w: height %d, max_length %d", ErrParse, hdr.Height, hdr.MaxLength)
	}

	skip := 1 + max(hdr.CommentLines, 0)
	if skip > len(lines) {
		skip = len(lines)
	}

	glyphs := readGlyphs(lines[skip:], hdr)
	blank := make([]string, hdr.Height)
	for i := range blank {
		blank[i] = strings.Repeat(" ", hdr.MaxLength)
	}
	for c := FirstCode; c <= LastCode; c++ {
		if _, ok := glyphs[c]; !ok {
			glyphs[c] = blank
		}
	}

	return &Font{header: hdr, glyphs: glyphs}, nil
}

// readGlyphs consumes glyph rows starting at FirstCode. Glyphs past LastCode
// still advance the code but are dropped.
func readGlyphs(lines []string, hdr Header) map[rune][]string {
	unblank := func(s string) string {
		if hdr.Hardblank == ' ' {
			return s
		}
		return strings.ReplaceAll(s, string(hdr.Hardblank), " ")
	}

	glyphs := make(map[rune][]string, LastCode-FirstCode+1)
	code := FirstCode
	var rows []string
	for _, line := range lines {
		if line == "" {
			continue
		}
		switch {
		case strings.HasSuffix(line, Endmark+Endmark):
			if code <= LastCode {
				rows = append(rows, unblank(strings.TrimSuffix(line, Endmark+Endmark)))
				if len(rows) > hdr.Height {
					rows = rows[:hdr.Height]
				}
				glyphs[code] = rows
			}
			rows = nil
			code++
		case strings.HasSuffix(line, Endmark):
			if code <= LastCode {
				rows = append(rows, unblank(strings.TrimSuffix(line, Endmark)))
			}
		default:
			// unterminated rows only continue a glyph already in progress
			if len(rows) > 0 && code <= LastCode {
				rows = append(rows, unblank(line))
			}
		}
	}
	return glyphs
}
