package banner

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ByLCY/figbanner/flf"
	"github.com/ByLCY/figbanner/fontdir"
	"github.com/ByLCY/figbanner/layout"
)

// writeFont 在 dir 下写入一个两行高的测试字体：每个字符画成 "<c><c>" / "<c> "。
func writeFont(t *testing.T, dir, file string, oldLayout int) string {
	t.Helper()
	var b strings.Builder
	fmt.Fprintf(&b, "flf2a$ 2 2 2 %d 1\ncomment line\n", oldLayout)
	for c := flf.FirstCode; c <= flf.LastCode; c++ {
		s := string(c)
		if c == '@' {
			s = "o"
		}
		b.WriteString(s + s + "@\n")
		b.WriteString(s + "$@@\n")
	}
	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestBanner(t *testing.T, dir string) (*Banner, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(Options{Resolver: fontdir.NewResolver(dir), Logger: logger}), &logs
}

func TestLoadFontCaches(t *testing.T) {
	dir := t.TempDir()
	path := writeFont(t, dir, "standard.flf", 0)
	b, logs := newTestBanner(t, dir)

	font, info, err := b.LoadFont("standard")
	if err != nil {
		t.Fatalf("加载字体失败: %v", err)
	}
	if info.Path != path || info.Builtin || info.Height != 2 || info.Glyphs != 95 {
		t.Fatalf("unexpected font info: %+v", info)
	}

	// 缓存命中后即使文件被删除也能拿到同一个字体
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	again, _, err := b.LoadFont("standard")
	if err != nil {
		t.Fatalf("cached load failed: %v", err)
	}
	if again != font {
		t.Fatalf("expected the cached font instance")
	}
	if !strings.Contains(logs.String(), "font cache hit") {
		t.Fatalf("cache hit not logged: %s", logs.String())
	}

	// 另一个 Banner 不共享缓存
	other, _ := newTestBanner(t, dir)
	if _, _, err := other.LoadFont("standard"); !errors.Is(err, fontdir.ErrNotFound) {
		t.Fatalf("independent banner should miss, got %v", err)
	}
}

func TestLoadFontSkipsBrokenCandidate(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "block"), []byte("not a font\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	writeFont(t, dir, "block.flf", 0)
	b, logs := newTestBanner(t, dir)

	_, info, err := b.LoadFont("block")
	if err != nil {
		t.Fatalf("加载字体失败: %v", err)
	}
	if filepath.Base(info.Path) != "block.flf" {
		t.Fatalf("expected block.flf, got %s", info.Path)
	}
	if !strings.Contains(logs.String(), "found but failed to load font") {
		t.Fatalf("broken candidate not logged: %s", logs.String())
	}
}

func TestFontFallsBackToEmbedded(t *testing.T) {
	b, logs := newTestBanner(t, t.TempDir())
	_, info, err := b.Font("missing")
	if err != nil {
		t.Fatalf("fallback failed: %v", err)
	}
	if !info.Builtin || info.Name != "embed:term" {
		t.Fatalf("expected embedded fallback, got %+v", info)
	}
	if !strings.Contains(logs.String(), "falling back") {
		t.Fatalf("fallback not logged: %s", logs.String())
	}
}

func TestFontFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "standard.flf", 0)
	b, _ := newTestBanner(t, dir)
	_, info, err := b.Font("missing")
	if err != nil {
		t.Fatalf("fallback failed: %v", err)
	}
	if info.Name != DefaultFont {
		t.Fatalf("expected default font, got %+v", info)
	}
}

func TestRenderPipeline(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "standard.flf", 0)
	b, _ := newTestBanner(t, dir)

	res, err := b.Render("AB", RenderOptions{Width: 6, Align: layout.AlignRight})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := []string{"  AABB", "  A B "}
	if diff := cmp.Diff(want, res.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if res.Align != layout.AlignRight || res.Width != 6 || res.Font.Name != DefaultFont {
		t.Fatalf("unexpected result metadata: %+v", res)
	}
}

func TestRenderWrapsBeforeAligning(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "standard.flf", 0)
	b, _ := newTestBanner(t, dir)

	res, err := b.Render("ABC", RenderOptions{Width: 4, Align: layout.AlignCenter})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := []string{"AABB", " CC ", "A B ", " C  "}
	if diff := cmp.Diff(want, res.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderKerning(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "smush.flf", 1)
	b, _ := newTestBanner(t, dir)

	res, err := b.Render("AA", RenderOptions{Font: "smush", Kerning: true})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// "AA"+"AA" 交界处相同字符合并；"A "+"A " 左侧空格让位
	if diff := cmp.Diff([]string{"AAA", "AA "}, res.Lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if !res.Style.Kerning {
		t.Fatalf("style should record kerning")
	}
}

func TestRenderInvalidColorIsDropped(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "standard.flf", 0)
	b, logs := newTestBanner(t, dir)

	res, err := b.Render("A", RenderOptions{Color: "purple", Background: "Blue"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if res.Style.Color != "" || res.Style.Background != "blue" {
		t.Fatalf("unexpected style: %+v", res.Style)
	}
	if res.Lines[0] != "\x1b[44mAA\x1b[0m" {
		t.Fatalf("unexpected first line %q", res.Lines[0])
	}
	if !strings.Contains(logs.String(), "invalid color") {
		t.Fatalf("invalid color not logged: %s", logs.String())
	}
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "Slant.flf", 3)
	b, _ := newTestBanner(t, dir)

	res, err := b.Preview("SLANT", 0, "", "")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	// 7 行样例，每行两行高
	if len(res.Lines) != 14 {
		t.Fatalf("expected 14 lines, got %d", len(res.Lines))
	}
	if res.Style.Kerning {
		t.Fatalf("preview must not kern")
	}
	if !strings.HasPrefix(res.Lines[12], "FFoonntt::") {
		t.Fatalf("unexpected name line %q", res.Lines[12])
	}
	if res.Font.SmushingRules != 3 {
		t.Fatalf("unexpected font info %+v", res.Font)
	}

	if _, err := b.Preview("nothing", 0, "", ""); !errors.Is(err, fontdir.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
