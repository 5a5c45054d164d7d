package layout

import (
	"strings"
	"unicode/utf8"
)

// AlignLines 用空格把每一行补齐到 width。
// 已经达到或超过 width 的行保持不变，这里不做截断（截断属于 Wrap）。
func AlignLines(lines []string, width int, align Align) []string {
	if align == AlignLeft || align == "" {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		left, right := padding(utf8.RuneCountInString(line), width, align)
		out[i] = strings.Repeat(" ", left) + line + strings.Repeat(" ", right)
	}
	return out
}

// padding 返回左右两侧需要补的空格数；居中时奇数的那一格放在右侧。
func padding(length, width int, align Align) (int, int) {
	if length >= width {
		return 0, 0
	}
	gap := width - length
	switch align {
	case AlignCenter:
		return gap / 2, gap - gap/2
	case AlignRight:
		return gap, 0
	default:
		return 0, 0
	}
}
