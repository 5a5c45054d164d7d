// Package ansi holds the terminal color palette used to tint rendered banners.
package ansi

import (
	"image/color"
	"math/rand/v2"
	"strings"
)

// Code is an ANSI SGR escape sequence. The zero value means "no color".
type Code string

// Reset clears every attribute.
const Reset Code = "\x1b[0m"

type entry struct {
	name string
	code Code
	rgb  color.RGBA // approximate screen color, used when drawing to files
}

var foreground = []entry{
	{"black", "\x1b[30m", color.RGBA{0, 0, 0, 0xff}},
	{"red", "\x1b[31m", color.RGBA{205, 49, 49, 0xff}},
	{"green", "\x1b[32m", color.RGBA{13, 188, 121, 0xff}},
	{"yellow", "\x1b[33m", color.RGBA{229, 229, 16, 0xff}},
	{"blue", "\x1b[34m", color.RGBA{36, 114, 200, 0xff}},
	{"magenta", "\x1b[35m", color.RGBA{188, 63, 188, 0xff}},
	{"cyan", "\x1b[36m", color.RGBA{17, 168, 205, 0xff}},
	{"white", "\x1b[37m", color.RGBA{229, 229, 229, 0xff}},
	{"bright_black", "\x1b[90m", color.RGBA{102, 102, 102, 0xff}},
	{"bright_red", "\x1b[91m", color.RGBA{241, 76, 76, 0xff}},
	{"bright_green", "\x1b[92m", color.RGBA{35, 209, 139, 0xff}},
	{"bright_yellow", "\x1b[93m", color.RGBA{245, 245, 67, 0xff}},
	{"bright_blue", "\x1b[94m", color.RGBA{59, 142, 234, 0xff}},
	{"bright_magenta", "\x1b[95m", color.RGBA{214, 112, 214, 0xff}},
	{"bright_cyan", "\x1b[96m", color.RGBA{41, 184, 219, 0xff}},
	{"bright_white", "\x1b[97m", color.RGBA{255, 255, 255, 0xff}},
	{"reset", Reset, color.RGBA{}},
}

var background = []entry{
	{"black", "\x1b[40m", color.RGBA{0, 0, 0, 0xff}},
	{"red", "\x1b[41m", color.RGBA{205, 49, 49, 0xff}},
	{"green", "\x1b[42m", color.RGBA{13, 188, 121, 0xff}},
	{"yellow", "\x1b[43m", color.RGBA{229, 229, 16, 0xff}},
	{"blue", "\x1b[44m", color.RGBA{36, 114, 200, 0xff}},
	{"magenta", "\x1b[45m", color.RGBA{188, 63, 188, 0xff}},
	{"cyan", "\x1b[46m", color.RGBA{17, 168, 205, 0xff}},
	{"white", "\x1b[47m", color.RGBA{229, 229, 229, 0xff}},
	{"bright_black", "\x1b[100m", color.RGBA{102, 102, 102, 0xff}},
	{"bright_red", "\x1b[101m", color.RGBA{241, 76, 76, 0xff}},
	{"bright_green", "\x1b[102m", color.RGBA{35, 209, 139, 0xff}},
	{"bright_yellow", "\x1b[103m", color.RGBA{245, 245, 67, 0xff}},
	{"bright_blue", "\x1b[104m", color.RGBA{59, 142, 234, 0xff}},
	{"bright_magenta", "\x1b[105m", color.RGBA{214, 112, 214, 0xff}},
	{"bright_cyan", "\x1b[106m", color.RGBA{41, 184, 219, 0xff}},
	{"bright_white", "\x1b[107m", color.RGBA{255, 255, 255, 0xff}},
}

func lookup(table []entry, name string) (Code, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range table {
		if e.name == name {
			return e.code, true
		}
	}
	return "", false
}

func names(table []entry) []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.name
	}
	return out
}

// Lookup resolves a foreground color name, case-insensitively.
func Lookup(name string) (Code, bool) { return lookup(foreground, name) }

// LookupBackground resolves a background color name, case-insensitively.
func LookupBackground(name string) (Code, bool) { return lookup(background, name) }

// RGB returns the approximate screen color of a palette name. "reset" and
// unknown names report false.
func RGB(name string) (color.RGBA, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range background {
		if e.name == name {
			return e.rgb, true
		}
	}
	return color.RGBA{}, false
}

// Names lists the foreground color names in palette order.
func Names() []string { return names(foreground) }

// BackgroundNames lists the background color names in palette order.
func BackgroundNames() []string { return names(background) }

// Random picks any foreground name, reset included.
func Random(r *rand.Rand) string {
	return foreground[r.IntN(len(foreground))].name
}

// Wrap tints s with the given foreground and background codes and appends a
// reset. s is returned unchanged when both codes are empty.
func Wrap(s string, fg, bg Code) string {
	if fg == "" && bg == "" {
		return s
	}
	return string(fg) + string(bg) + s + string(Reset)
}

// Strip removes SGR escape sequences from s.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
