// Package banner ties font lookup, composition, wrapping and alignment into
// one renderer session.
package banner

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ByLCY/figbanner/ansi"
	"github.com/ByLCY/figbanner/compose"
	"github.com/ByLCY/figbanner/flf"
	"github.com/ByLCY/figbanner/fontdir"
	"github.com/ByLCY/figbanner/fonts"
	"github.com/ByLCY/figbanner/layout"
)

// DefaultFont is used when Options.DefaultFont is empty.
const DefaultFont = "standard"

const embedPrefix = "embed:"

// ErrNoFont is returned when neither the requested font, the default font
// nor the embedded fallback could be loaded.
var ErrNoFont = errors.New("banner: no usable font")

// Options configures a Banner.
type Options struct {
	Resolver    *fontdir.Resolver // nil: fontdir.NewResolver()
	Logger      *slog.Logger      // nil: discard
	DefaultFont string
}

// Banner owns a font cache keyed by requested name. Entries are loaded on
// first use and kept for the life of the Banner. A Banner is safe for
// concurrent use; separate Banners share nothing.
type Banner struct {
	resolver    *fontdir.Resolver
	logger      *slog.Logger
	defaultFont string

	mu    sync.Mutex
	cache map[string]cachedFont
}

type cachedFont struct {
	font *flf.Font
	info layout.FontInfo
}

// New creates a Banner.
func New(opts Options) *Banner {
	b := &Banner{
		resolver:    opts.Resolver,
		logger:      opts.Logger,
		defaultFont: opts.DefaultFont,
		cache:       map[string]cachedFont{},
	}
	if b.resolver == nil {
		b.resolver = fontdir.NewResolver()
	}
	if b.logger == nil {
		b.logger = newNopLogger()
	}
	if b.defaultFont == "" {
		b.defaultFont = DefaultFont
	}
	return b
}

// FontDir is the directory fonts are resolved in.
func (b *Banner) FontDir() string { return b.resolver.Dir() }

// ListFonts lists the fonts available in FontDir.
func (b *Banner) ListFonts() ([]string, error) { return b.resolver.List() }

// LoadFont returns the named font, loading it on first request. Names with
// the "embed:" prefix refer to fonts compiled into the binary. Candidate
// files that exist but fail to parse are skipped with a warning.
func (b *Banner) LoadFont(name string) (*flf.Font, layout.FontInfo, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if c, ok := b.cache[name]; ok {
		b.logger.Debug("font cache hit", "font", name)
		return c.font, c.info, nil
	}

	var (
		font *flf.Font
		path string
	)
	if builtin, ok := strings.CutPrefix(name, embedPrefix); ok {
		f, err := fonts.Load(builtin)
		if err != nil {
			return nil, layout.FontInfo{}, err
		}
		font = f
	} else {
		paths, err := b.resolver.Resolve(name)
		if err != nil {
			return nil, layout.FontInfo{}, err
		}
		var errs []error
		for _, p := range paths {
			f, err := flf.Load(p)
			if err != nil {
				b.logger.Warn("found but failed to load font", "path", p, "err", err)
				errs = append(errs, err)
				continue
			}
			font, path = f, p
			break
		}
		if font == nil {
			return nil, layout.FontInfo{}, fmt.Errorf("加载字体 %q 失败: %w", name, errors.Join(errs...))
		}
	}

	hdr := font.Header()
	info := layout.FontInfo{
		Name:          name,
		Path:          path,
		Builtin:       path == "",
		Height:        hdr.Height,
		MaxLength:     hdr.MaxLength,
		Glyphs:        font.Len(),
		SmushingRules: font.SmushingRules(),
	}
	b.cache[name] = cachedFont{font: font, info: info}
	b.logger.Debug("font loaded", "font", name, "path", path, "height", hdr.Height)
	return font, info, nil
}

// Font loads name, falling back to the default font and then to the
// embedded fallback font.
func (b *Banner) Font(name string) (*flf.Font, layout.FontInfo, error) {
	font, info, err := b.LoadFont(name)
	if err == nil {
		return font, info, nil
	}
	errs := []error{err}
	for _, fallback := range []string{b.defaultFont, embedPrefix + fonts.Fallback} {
		if fallback == name {
			continue
		}
		b.logger.Warn("falling back to another font", "requested", name, "fallback", fallback, "err", err)
		font, info, err = b.LoadFont(fallback)
		if err == nil {
			return font, info, nil
		}
		errs = append(errs, err)
	}
	return nil, layout.FontInfo{}, fmt.Errorf("%w: %w", ErrNoFont, errors.Join(errs...))
}

// RenderOptions configures Render. Color and Background are palette names;
// unknown names render without color.
type RenderOptions struct {
	Font       string
	Width      int
	Align      layout.Align
	Kerning    bool
	Color      string
	Background string
}

// Render composes text, wraps it at Width and aligns it within Width.
func (b *Banner) Render(text string, opts RenderOptions) (*layout.Result, error) {
	name := opts.Font
	if name == "" {
		name = b.defaultFont
	}
	font, info, err := b.Font(name)
	if err != nil {
		return nil, err
	}

	style := b.resolveStyle(opts)
	fg, _ := ansi.Lookup(style.Color)
	bg, _ := ansi.LookupBackground(style.Background)

	lines := compose.Render(text, font, compose.Options{
		Kerning:    opts.Kerning,
		Color:      fg,
		Background: bg,
	})
	lines = layout.Wrap(lines, opts.Width)
	lines = layout.AlignLines(lines, opts.Width, opts.Align)

	align := opts.Align
	if align == "" {
		align = layout.AlignLeft
	}
	return &layout.Result{
		Lines: lines,
		Width: opts.Width,
		Align: align,
		Font:  info,
		Style: style,
	}, nil
}

// resolveStyle drops color names the palette does not know.
func (b *Banner) resolveStyle(opts RenderOptions) layout.Style {
	style := layout.Style{Kerning: opts.Kerning}
	if opts.Color != "" {
		if _, ok := ansi.Lookup(opts.Color); ok {
			style.Color = strings.ToLower(opts.Color)
		} else {
			b.logger.Warn("invalid color, rendering without it", "color", opts.Color, "available", ansi.Names())
		}
	}
	if opts.Background != "" {
		if _, ok := ansi.LookupBackground(opts.Background); ok {
			style.Background = strings.ToLower(opts.Background)
		} else {
			b.logger.Warn("invalid background color, rendering without it", "color", opts.Background, "available", ansi.BackgroundNames())
		}
	}
	return style
}
