package flf

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Signature is the magic prefix of the first line of every font file.
const Signature = "flf2a"

var (
	headerLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Field", Pattern: `\S+`},
	})

	headerParser = participle.MustBuild[headerLine](
		participle.Lexer(headerLexer),
		participle.Elide("Whitespace"),
	)
)

// headerLine is the grammar of the first font line:
//
//	flf2a<hardblank> height baseline max_length old_layout comment_lines [print_direction [num_chars [codetag_count]]]
type headerLine struct {
	Signature    string    `parser:"@Field"`
	Height       headerInt `parser:"@Field"`
	Baseline     headerInt `parser:"@Field"`
	MaxLength    headerInt `parser:"@Field"`
	OldLayout    headerInt `parser:"@Field"`
	CommentLines headerInt `parser:"@Field"`
	Optional     []string  `parser:"@Field*"`
}

// headerInt converts a header field on capture so a non-numeric mandatory
// field fails the parse.
type headerInt int

// Capture implements participle.Capture.
func (n *headerInt) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("header field requires value")
	}
	v, err := strconv.Atoi(values[0])
	if err != nil {
		return err
	}
	*n = headerInt(v)
	return nil
}

// optional header fields and their defaults, in file order.
var optionalDefaults = []struct {
	name string
	def  int
}{
	{"print_direction", 0},
	{"num_chars", 256},
	{"codetag_count", 0},
}

// parseHeader decodes the first font line. The caller has already checked
// the signature prefix.
func parseHeader(line string) (Header, error) {
	hl, err := headerParser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	rest := hl.Signature[len(Signature):]
	hardblank, size := utf8.DecodeRuneInString(rest)
	if size == 0 {
		return Header{}, fmt.Errorf("%w: no hardblank after %q", ErrBadHeader, Signature)
	}

	opt := make([]int, len(optionalDefaults))
	for i, field := range optionalDefaults {
		opt[i] = field.def
		if i >= len(hl.Optional) {
			continue
		}
		v, err := strconv.Atoi(hl.Optional[i])
		if err != nil {
			return Header{}, fmt.Errorf("%w: %s %q is not an integer", ErrBadHeader, field.name, hl.Optional[i])
		}
		opt[i] = v
	}

	return Header{
		Hardblank:      hardblank,
		Height:         int(hl.Height),
		Baseline:       int(hl.Baseline),
		MaxLength:      int(hl.MaxLength),
		OldLayout:      int(hl.OldLayout),
		CommentLines:   int(hl.CommentLines),
		PrintDirection: opt[0],
		NumChars:       opt[1],
		CodetagCount:   opt[2],
	}, nil
}
