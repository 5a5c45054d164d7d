package renderer

import "github.com/ByLCY/figbanner/layout"

// Renderer 将横幅结果编码为最终文件内容，例如纯文本、PDF 或图像。
// Render 返回生成的字节数据以及可能的错误。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
