package layout

// 该文件定义横幅排版结果，供终端输出、文件渲染与调试 JSON 共用。

// Result 保存一次渲染得到的最终行以及产生这些行的参数。
type Result struct {
	Lines []string `json:"lines"`
	Width int      `json:"width"`
	Align Align    `json:"align"`
	Font  FontInfo `json:"font"`
	Style Style    `json:"style"`
}

// FontInfo 记录所用字体的来源与度量。
type FontInfo struct {
	Name          string `json:"name"`
	Path          string `json:"path,omitempty"` // 内置字体为空
	Builtin       bool   `json:"builtin"`
	Height        int    `json:"height"`
	MaxLength     int    `json:"maxLength"`
	Glyphs        int    `json:"glyphs"`
	SmushingRules int    `json:"smushingRules"`
}

// Style 记录颜色名称（已通过调色板校验）与是否启用字距合并。
type Style struct {
	Color      string `json:"color,omitempty"`
	Background string `json:"background,omitempty"`
	Kerning    bool   `json:"kerning"`
}
