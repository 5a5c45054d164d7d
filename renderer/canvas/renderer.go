package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/figbanner/ansi"
	"github.com/ByLCY/figbanner/layout"
	"github.com/ByLCY/figbanner/renderer"
)

// Format 是输出文件格式。
type Format string

const (
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// 默认单元格尺寸（mm），宽高比接近终端字符。
const (
	defaultCellWidth  = 2.0
	defaultCellHeight = 4.0
	defaultMargin     = 4.0
	defaultDPMM       = 8.0
)

// FormatFromPath 根据扩展名判断输出格式；不支持的扩展名返回 false。
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "pdf":
		return FormatPDF, true
	case "svg":
		return FormatSVG, true
	case "png":
		return FormatPNG, true
	default:
		return "", false
	}
}

// Renderer draws every non-blank cell of a banner as a filled block via
// github.com/tdewolff/canvas.
type Renderer struct {
	format     Format
	cellWidth  float64
	cellHeight float64
	margin     float64
	dpmm       float64
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer. Zero values take the defaults.
type Options struct {
	Format     Format
	CellWidth  float64 // mm
	CellHeight float64 // mm
	Margin     float64 // mm，负数表示不留边
	DPMM       float64 // PNG 分辨率，像素/毫米
}

// NewRenderer creates a renderer for format with default cell sizes.
func NewRenderer(format Format) *Renderer { return NewRendererWithOptions(Options{Format: format}) }

// NewRendererWithOptions creates a renderer from opts.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		format:     opts.Format,
		cellWidth:  opts.CellWidth,
		cellHeight: opts.CellHeight,
		margin:     opts.Margin,
		dpmm:       opts.DPMM,
	}
	if r.format == "" {
		r.format = FormatPDF
	}
	if r.cellWidth <= 0 {
		r.cellWidth = defaultCellWidth
	}
	if r.cellHeight <= 0 {
		r.cellHeight = defaultCellHeight
	}
	if r.margin < 0 {
		r.margin = 0
	} else if opts.Margin == 0 {
		r.margin = defaultMargin
	}
	if r.dpmm <= 0 {
		r.dpmm = defaultDPMM
	}
	return r
}

// Render 将横幅绘制到画布并按 format 编码。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	grid := cells(result.Lines)
	if len(grid) == 0 {
		return nil, fmt.Errorf("缺少可渲染的行")
	}
	columns := 0
	for _, row := range grid {
		columns = max(columns, len(row))
	}

	width := float64(columns)*r.cellWidth + 2*r.margin
	height := float64(len(grid))*r.cellHeight + 2*r.margin
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 左上角为原点，与行序一致
	r.draw(ctx, grid, result.Style, width, height)

	var buf bytes.Buffer
	switch r.format {
	case FormatPDF:
		writer := pdf.New(&buf, width, height, nil)
		writer.SetInfo("figbanner", "", "", "", "figbanner")
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 PDF 失败: %w", err)
		}
	case FormatSVG:
		writer := svg.New(&buf, width, height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 SVG 失败: %w", err)
		}
	case FormatPNG:
		img := rasterizer.Draw(c, canvas.DPMM(r.dpmm), canvas.DefaultColorSpace)
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("写入 PNG 失败: %w", err)
		}
	default:
		return nil, fmt.Errorf("不支持的输出格式 %q", r.format)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) draw(ctx *canvas.Context, grid [][]bool, style layout.Style, width, height float64) {
	ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeWidth(0)

	if bg, ok := ansi.RGB(style.Background); ok {
		ctx.SetFillColor(bg)
		ctx.DrawPath(0, 0, canvas.Rectangle(width, height))
	}

	fg, ok := ansi.RGB(style.Color)
	if !ok {
		fg = color.RGBA{0, 0, 0, 0xff}
	}
	ctx.SetFillColor(fg)
	for y, row := range grid {
		for x, on := range row {
			if !on {
				continue
			}
			ctx.DrawPath(r.margin+float64(x)*r.cellWidth, r.margin+float64(y)*r.cellHeight,
				canvas.Rectangle(r.cellWidth, r.cellHeight))
		}
	}
}

// cells 去掉颜色转义后，把每一行的非空格字符标记为需要填充的单元格。
func cells(lines []string) [][]bool {
	grid := make([][]bool, 0, len(lines))
	for _, line := range lines {
		runes := []rune(ansi.Strip(line))
		row := make([]bool, len(runes))
		for i, ch := range runes {
			row[i] = ch != ' '
		}
		grid = append(grid, row)
	}
	return grid
}
