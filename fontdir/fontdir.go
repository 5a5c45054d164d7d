// Package fontdir finds flf font files on disk by name.
package fontdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNotFound is returned by Resolve when no candidate file exists.
var ErrNotFound = errors.New("fontdir: font not found")

// EnvFontDir, when set, is searched before the built-in locations.
const EnvFontDir = "FIGBANNER_FONT_DIR"

const termuxPrefix = "/data/data/com.termux/files/usr"

// aliases map lower-cased names to the file names shipped by common font packs.
var aliases = map[string]string{
	"bloody":    "Bloody",
	"tickslant": "tickslant",
	"slant":     "slant",
	"standard":  "standard",
	"block":     "block",
}

var titleCase = cases.Title(language.Und)

// Resolver searches a list of directories for font files.
type Resolver struct {
	Dirs []string
}

// DefaultDirs returns the search order, highest priority first.
func DefaultDirs() []string {
	prefix := os.Getenv("PREFIX")
	if prefix == "" {
		prefix = termuxPrefix
	}
	home := os.Getenv("HOME")
	var dirs []string
	if d := os.Getenv(EnvFontDir); d != "" {
		dirs = append(dirs, d)
	}
	return append(dirs,
		filepath.Join(prefix, "share", "asciibanner", "fonts"),
		filepath.Join(home, ".local", "share", "asciibanner", "fonts"),
		filepath.Join(home, "fonts"),
		filepath.Join(termuxPrefix, "share", "figlet"),
	)
}

// NewResolver uses DefaultDirs when dirs is empty.
func NewResolver(dirs ...string) *Resolver {
	if len(dirs) == 0 {
		dirs = DefaultDirs()
	}
	return &Resolver{Dirs: dirs}
}

// Dir returns the first configured directory that exists, or the first
// candidate when none does.
func (r *Resolver) Dir() string {
	for _, d := range r.Dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			return d
		}
	}
	if len(r.Dirs) == 0 {
		return ""
	}
	return r.Dirs[0]
}

// Candidates lists the file names tried for name, in order and without
// duplicates. A candidate ending in ".flf" is followed by its base name.
func Candidates(name string) []string {
	variations := []string{
		name,
		name + ".flf",
		strings.ToLower(name),
		strings.ToUpper(name),
		titleCase.String(name),
		strings.ReplaceAll(name, " ", ""),
		strings.ReplaceAll(name, " ", "_"),
	}
	if alias, ok := aliases[strings.ToLower(name)]; ok {
		variations = slices.Insert(variations, 0, alias)
	}

	var out []string
	seen := map[string]bool{}
	add := func(v string) {
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}
	for _, v := range variations {
		add(v)
		if base, ok := strings.CutSuffix(v, ".flf"); ok {
			add(base)
		}
	}
	return out
}

// Resolve returns the paths of every existing regular file matching name in
// Dir, best candidate first. The caller tries them in order.
func (r *Resolver) Resolve(name string) ([]string, error) {
	dir := r.Dir()
	var paths []string
	for _, c := range Candidates(name) {
		p := filepath.Join(dir, c)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrNotFound, name, dir)
	}
	return paths, nil
}

// List returns the sorted, unique names of fonts in Dir: files ending in
// ".flf" or without any extension. A missing directory yields no fonts.
func (r *Resolver) List() ([]string, error) {
	entries, err := os.ReadDir(r.Dir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("读取字体目录失败: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".flf" || ext == "" {
			names = append(names, strings.TrimSuffix(e.Name(), ext))
		}
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}
