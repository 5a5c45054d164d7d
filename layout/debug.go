package layout

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ByLCY/figbanner/ansi"
)

// debugDump 在结果之外附带去掉 ANSI 颜色后的行，便于直接比对字形。
type debugDump struct {
	*Result
	Plain []string `json:"plain"`
}

// WriteDebugJSON 将渲染结果输出为 JSON，便于调试或对比字体效果。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil {
		return nil
	}
	dump := debugDump{Result: res, Plain: make([]string, len(res.Lines))}
	for i, line := range res.Lines {
		dump.Plain[i] = ansi.Strip(line)
	}
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化调试 JSON 失败: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
