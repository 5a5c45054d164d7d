package layout

import (
	"fmt"
	"strings"
)

// Align 描述横幅行在目标宽度内的水平对齐方式。
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ParseAlign 解析对齐方式，支持 start/middle/end 别名；空串视为 left。
func ParseAlign(v string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "left", "start":
		return AlignLeft, nil
	case "center", "middle":
		return AlignCenter, nil
	case "right", "end":
		return AlignRight, nil
	default:
		return "", fmt.Errorf("未知的对齐方式 %q（可选 left/center/right）", v)
	}
}
