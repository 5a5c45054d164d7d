package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/ByLCY/figbanner/ansi"
	"github.com/ByLCY/figbanner/banner"
	"github.com/ByLCY/figbanner/binding"
	"github.com/ByLCY/figbanner/fontdir"
	"github.com/ByLCY/figbanner/layout"
	"github.com/ByLCY/figbanner/renderer"
	canvasrenderer "github.com/ByLCY/figbanner/renderer/canvas"
	textrenderer "github.com/ByLCY/figbanner/renderer/text"
)

const defaultTerminalWidth = 80

// config 汇总命令行参数。
type config struct {
	font        string
	center      bool
	right       bool
	width       int
	output      string
	kerning     bool
	color       string
	bg          string
	randomColor bool
	listColors  bool
	listFonts   bool
	preview     string
	data        string
	debug       string
	verbose     bool
}

func newFlagSet(cfg *config) *flag.FlagSet {
	fs := flag.NewFlagSet("figbanner", flag.ContinueOnError)
	fs.StringVar(&cfg.font, "f", banner.DefaultFont, "字体名称")
	fs.StringVar(&cfg.font, "font", banner.DefaultFont, "字体名称")
	fs.BoolVar(&cfg.center, "c", false, "居中对齐")
	fs.BoolVar(&cfg.center, "center", false, "居中对齐")
	fs.BoolVar(&cfg.right, "r", false, "右对齐")
	fs.BoolVar(&cfg.right, "right", false, "右对齐")
	fs.IntVar(&cfg.width, "w", 0, "输出宽度（默认取终端宽度）")
	fs.IntVar(&cfg.width, "width", 0, "输出宽度（默认取终端宽度）")
	fs.StringVar(&cfg.output, "o", "", "保存到文件（.pdf/.svg/.png 绘制为图形，其余为文本）")
	fs.StringVar(&cfg.output, "output", "", "保存到文件（.pdf/.svg/.png 绘制为图形，其余为文本）")
	fs.BoolVar(&cfg.kerning, "k", false, "启用字距合并")
	fs.BoolVar(&cfg.kerning, "kerning", false, "启用字距合并")
	fs.StringVar(&cfg.color, "color", "", "文字颜色（black, red, ..., bright_*）")
	fs.StringVar(&cfg.bg, "bg", "", "背景颜色（同 -color）")
	fs.BoolVar(&cfg.randomColor, "random-color", false, "随机文字颜色")
	fs.BoolVar(&cfg.listColors, "list-colors", false, "列出可用颜色")
	fs.BoolVar(&cfg.listFonts, "list-fonts", false, "列出可用字体")
	fs.StringVar(&cfg.preview, "preview", "", "预览指定字体")
	fs.StringVar(&cfg.data, "data", "", "绑定到 ${...} 占位符的 JSON 数据")
	fs.StringVar(&cfg.debug, "debug", "", "渲染结果调试 JSON 输出路径")
	fs.BoolVar(&cfg.verbose, "v", false, "输出调试日志")
	return fs
}

func main() {
	var cfg config
	fs := newFlagSet(&cfg)
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	b := banner.New(banner.Options{Resolver: fontdir.NewResolver(), Logger: logger})

	text := strings.Join(fs.Args(), " ")
	if text == "" && !term.IsTerminal(int(os.Stdin.Fd())) {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("读取标准输入失败: %v", err)
		}
		text = strings.TrimSpace(string(in))
	}

	if err := run(&cfg, text, os.Stdout, b); err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
			return
		}
		log.Fatalf("生成横幅失败: %v", err)
	}
}

// errUsage 表示没有输入文本，调用方应打印帮助。
var errUsage = errors.New("missing text")

// run 串联字体加载、渲染与输出。
func run(cfg *config, text string, stdout io.Writer, b *banner.Banner) error {
	if cfg.listColors {
		fmt.Fprintln(stdout, "Available text colors:")
		fmt.Fprintln(stdout, strings.Join(ansi.Names(), ", "))
		fmt.Fprintln(stdout, "\nAvailable background colors:")
		fmt.Fprintln(stdout, strings.Join(ansi.BackgroundNames(), ", "))
		return nil
	}

	if cfg.listFonts {
		return listFonts(stdout, b)
	}

	color := cfg.color
	if cfg.randomColor {
		color = ansi.Random(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}

	if cfg.preview != "" {
		return preview(cfg, color, stdout, b)
	}

	if text == "" {
		return errUsage
	}

	align := layout.AlignLeft
	if cfg.center {
		align = layout.AlignCenter
	} else if cfg.right {
		align = layout.AlignRight
	}

	sources := []binding.Source{binding.Env()}
	if cfg.data != "" {
		var data any
		if err := json.Unmarshal([]byte(cfg.data), &data); err != nil {
			return fmt.Errorf("解析 data JSON 失败: %w", err)
		}
		sources = append(sources, binding.Data(data))
	}
	text = binding.Interpolate(text, sources...)

	result, err := b.Render(text, banner.RenderOptions{
		Font:       cfg.font,
		Width:      outputWidth(cfg.width),
		Align:      align,
		Kerning:    cfg.kerning,
		Color:      color,
		Background: cfg.bg,
	})
	if err != nil {
		return err
	}

	if cfg.debug != "" {
		if err := writeDebug(result, cfg.debug); err != nil {
			return err
		}
	}

	if cfg.output == "" {
		_, err := fmt.Fprintln(stdout, strings.Join(result.Lines, "\n"))
		return err
	}
	return save(result, cfg.output, stdout)
}

func listFonts(stdout io.Writer, b *banner.Banner) error {
	names, err := b.ListFonts()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(stdout, "No fonts found in: %s\n", b.FontDir())
		return nil
	}
	fmt.Fprintln(stdout, "Available fonts:")
	for _, name := range names {
		fmt.Fprintf(stdout, "  %s\n", name)
	}
	return nil
}

func preview(cfg *config, color string, stdout io.Writer, b *banner.Banner) error {
	result, err := b.Preview(cfg.preview, outputWidth(cfg.width), color, cfg.bg)
	if err != nil {
		if errors.Is(err, fontdir.ErrNotFound) {
			fmt.Fprintf(stdout, "\nFont '%s' not found. Available fonts:\n", cfg.preview)
			names, _ := b.ListFonts()
			for _, name := range names {
				fmt.Fprintf(stdout, "  %s\n", name)
			}
		}
		return err
	}

	fmt.Fprintf(stdout, "\nPreview of font '%s':\n\n", cfg.preview)
	fmt.Fprintln(stdout, strings.Join(result.Lines, "\n"))

	info := result.Font
	path := info.Path
	if path == "" {
		path = "Not found"
	}
	fmt.Fprintln(stdout, "\nFont information:")
	fmt.Fprintf(stdout, "  Path: %s\n", path)
	fmt.Fprintf(stdout, "  Height: %d lines\n", info.Height)
	fmt.Fprintf(stdout, "  Max width: %d chars\n", info.MaxLength)
	fmt.Fprintf(stdout, "  Defined chars: %d\n", info.Glyphs)
	fmt.Fprintf(stdout, "  Smushing rules: 0b%b\n\n", info.SmushingRules)
	return nil
}

// outputWidth 优先使用命令行宽度，否则探测终端宽度。
func outputWidth(flagWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTerminalWidth
}

func save(result *layout.Result, path string, stdout io.Writer) error {
	var r renderer.Renderer = &textrenderer.Renderer{}
	if format, ok := canvasrenderer.FormatFromPath(path); ok {
		r = canvasrenderer.NewRenderer(format)
	}
	data, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染输出文件失败: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入输出文件失败: %w", err)
	}
	fmt.Fprintf(stdout, "Output saved to %s\n", path)
	return nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
