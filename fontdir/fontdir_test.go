package fontdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("flf2a$ 1 1 1 0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCandidates(t *testing.T) {
	got := Candidates("my font")
	want := []string{
		"my font",
		"my font.flf",
		"MY FONT",
		"My Font",
		"myfont",
		"my_font",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidatesAlias(t *testing.T) {
	got := Candidates("BLOODY")
	if got[0] != "Bloody" {
		t.Fatalf("alias should come first, got %v", got)
	}
}

func TestCandidatesStripsExtension(t *testing.T) {
	got := Candidates("slant.flf")
	want := []string{"slant.flf", "slant", "slant.flf.flf", "SLANT.FLF"}
	if diff := cmp.Diff(want, got[:len(want)]); diff != "" {
		t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "standard.flf"))
	touch(t, filepath.Join(dir, "Bloody"))
	r := NewResolver(filepath.Join(dir, "missing"), dir)

	if r.Dir() != dir {
		t.Fatalf("Dir() = %q, want %q", r.Dir(), dir)
	}
	paths, err := r.Resolve("standard")
	if err != nil {
		t.Fatalf("resolve standard: %v", err)
	}
	if diff := cmp.Diff([]string{filepath.Join(dir, "standard.flf")}, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	paths, err = r.Resolve("bloody")
	if err != nil || paths[0] != filepath.Join(dir, "Bloody") {
		t.Fatalf("resolve bloody = %v, %v", paths, err)
	}
	if _, err := r.Resolve("nothing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "standard.flf"))
	touch(t, filepath.Join(dir, "standard"))
	touch(t, filepath.Join(dir, "slant.flf"))
	touch(t, filepath.Join(dir, "README.md"))
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := NewResolver(dir).List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"slant", "standard"}, got); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	none, err := NewResolver(filepath.Join(dir, "missing")).List()
	if err != nil || len(none) != 0 {
		t.Fatalf("missing dir should list nothing, got %v, %v", none, err)
	}
}

func TestDefaultDirsHonorsEnv(t *testing.T) {
	t.Setenv(EnvFontDir, "/opt/fonts")
	t.Setenv("PREFIX", "/usr")
	t.Setenv("HOME", "/home/u")
	want := []string{
		"/opt/fonts",
		"/usr/share/asciibanner/fonts",
		"/home/u/.local/share/asciibanner/fonts",
		"/home/u/fonts",
		"/data/data/com.termux/files/usr/share/figlet",
	}
	if diff := cmp.Diff(want, DefaultDirs()); diff != "" {
		t.Fatalf("dirs mismatch (-want +got):\n%s", diff)
	}
}
