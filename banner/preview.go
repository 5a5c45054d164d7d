package banner

import (
	"fmt"
	"strings"

	"github.com/ByLCY/figbanner/fontdir"
	"github.com/ByLCY/figbanner/layout"
)

// previewSample is rendered by Preview; the last line names the font.
const previewSample = `ABCDEFGHIJKLM
NOPQRSTUVWXYZ
abcdefghijklm
nopqrstuvwxyz
1234567890
!@#$%^&*()_+
Font: `

// Preview renders the sample block in the named font without kerning and
// without falling back to another font. When the name does not resolve
// directly, a case-insensitive match among the listed fonts is tried.
func (b *Banner) Preview(name string, width int, color, background string) (*layout.Result, error) {
	target := name
	if _, _, err := b.LoadFont(name); err != nil {
		target = ""
		available, _ := b.ListFonts()
		for _, f := range available {
			if strings.EqualFold(f, name) {
				target = f
				break
			}
		}
		if target == "" {
			return nil, fmt.Errorf("%w: %q", fontdir.ErrNotFound, name)
		}
		if _, _, err := b.LoadFont(target); err != nil {
			return nil, err
		}
	}
	return b.Render(previewSample+name, RenderOptions{
		Font:       target,
		Width:      width,
		Color:      color,
		Background: background,
	})
}
