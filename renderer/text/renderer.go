// Package textrenderer writes banner lines as plain text.
package textrenderer

import (
	"fmt"
	"strings"

	"github.com/ByLCY/figbanner/ansi"
	"github.com/ByLCY/figbanner/layout"
	"github.com/ByLCY/figbanner/renderer"
)

// Renderer joins lines with "\n". With StripColor set, ANSI escapes are
// removed so the file reads cleanly in editors.
type Renderer struct {
	StripColor bool
}

var _ renderer.Renderer = (*Renderer)(nil)

// Render implements renderer.Renderer.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	lines := result.Lines
	if r.StripColor {
		lines = make([]string, len(result.Lines))
		for i, line := range result.Lines {
			lines[i] = ansi.Strip(line)
		}
	}
	return []byte(strings.Join(lines, "\n")), nil
}
