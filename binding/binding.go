package binding

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

const envPrefix = "env:"

// Source 根据占位符中的表达式取值；ok 为 false 时占位符原样保留。
type Source func(expr string) (val any, ok bool)

// Interpolate 将横幅文本中的 ${...} 占位符依次交给 sources 解析，
// 第一个能给出值的 source 胜出。
func Interpolate(text string, sources ...Source) string {
	if len(sources) == 0 || !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		expr := strings.TrimSpace(match[2 : len(match)-1])
		if expr == "" {
			return match
		}
		for _, src := range sources {
			if val, ok := src(expr); ok {
				return fmt.Sprint(val)
			}
		}
		return match
	})
}

// Env 解析 ${env:NAME}，未设置的变量保留占位符。
func Env() Source {
	return func(expr string) (any, bool) {
		name, ok := strings.CutPrefix(expr, envPrefix)
		if !ok {
			return nil, false
		}
		return os.LookupEnv(strings.TrimSpace(name))
	}
}

// Data 在 JSON 解码后的数据中按 a.b[0].c 形式的路径取值。
func Data(data any) Source {
	return func(expr string) (any, bool) {
		if data == nil || strings.HasPrefix(expr, envPrefix) {
			return nil, false
		}
		return resolvePath(data, expr)
	}
}

func resolvePath(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes, ok := parseSegment(segment)
		if !ok {
			return nil, false
		}
		if name != "" {
			obj, isMap := current.(map[string]any)
			if !isMap {
				return nil, false
			}
			if current, ok = obj[name]; !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			arr, isArr := current.([]any)
			if !isArr || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			current = arr[idx]
		}
	}
	return current, true
}

// parseSegment 拆分 "items[1][0]" 为名称与下标列表。
func parseSegment(segment string) (string, []int, bool) {
	name, rest, found := strings.Cut(segment, "[")
	if !found {
		return name, nil, true
	}
	rest = "[" + rest
	var indexes []int
	for rest != "" {
		end := strings.IndexByte(rest, ']')
		if rest[0] != '[' || end == -1 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[end+1:]
	}
	return name, indexes, true
}
