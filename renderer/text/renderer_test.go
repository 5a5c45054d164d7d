package textrenderer

import (
	"testing"

	"github.com/ByLCY/figbanner/layout"
)

func TestRenderJoinsLines(t *testing.T) {
	res := &layout.Result{Lines: []string{"\x1b[31m/\\\x1b[0m", "||"}}

	out, err := (&Renderer{}).Render(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "\x1b[31m/\\\x1b[0m\n||" {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = (&Renderer{StripColor: true}).Render(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "/\\\n||" {
		t.Fatalf("unexpected stripped output %q", out)
	}
}

func TestRenderNil(t *testing.T) {
	if _, err := (&Renderer{}).Render(nil); err == nil {
		t.Fatalf("nil result should fail")
	}
}
