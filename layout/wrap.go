package layout

import "unicode/utf8"

// Wrap 按字符数将超出 width 的行切成等宽片段，不考虑单词边界。
// 最后剩余的部分（可能为空串）单独成行；width <= 0 时原样返回。
func Wrap(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= width {
			out = append(out, line)
			continue
		}
		rest := []rune(line)
		for len(rest) > width {
			out = append(out, string(rest[:width]))
			rest = rest[width:]
		}
		out = append(out, string(rest))
	}
	return out
}
