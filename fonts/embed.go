package fonts

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/ByLCY/figbanner/flf"
)

//go:embed *.flf
var fontFS embed.FS

// Fallback 是在字体目录中找不到任何可用字体时使用的内置字体。
const Fallback = "term"

// Load 解析内置字体，name 可写为 "embed:term"、"term" 或 "term.flf"。
func Load(name string) (*flf.Font, error) {
	name = strings.TrimSuffix(strings.TrimPrefix(name, "embed:"), ".flf")
	target := name + ".flf"
	data, err := fontFS.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("读取内置字体 %s 失败: %w", target, err)
	}
	font, err := flf.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("解析内置字体 %s 失败: %w", target, err)
	}
	return font, nil
}

// Names 列出全部内置字体名（不含扩展名）。
func Names() []string {
	entries, err := fontFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	return names
}
