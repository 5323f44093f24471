package ui

import (
	"fmt"
	"sort"
	"strings"
)

// PrintSuccess renders a completed operation.
func PrintSuccess(message string) {
	fmt.Println(SuccessStyle.Render("✓ ") + ValueStyle.Render(message))
}

// PrintError renders a failed operation.
func PrintError(message string) {
	fmt.Println(ErrorStyle.Render("✗ ") + ValueStyle.Render(message))
}

// PrintHint renders a secondary advice line.
func PrintHint(message string) {
	fmt.Println(MutedStyle.Render("  " + message))
}

// RenderObject renders a JSON object as an aligned, alphabetically
// sorted key/value listing. Nested values fall back to their default
// formatting; plug responses are flat enough for that to read well.
func RenderObject(title string, obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	width := 0
	for k := range obj {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	if title != "" {
		b.WriteString(TitleStyle.Render(title))
		b.WriteString("\n")
	}
	for _, k := range keys {
		label := fmt.Sprintf("%-*s", width+2, k+":")
		b.WriteString("  ")
		b.WriteString(LabelStyle.Render(label))
		b.WriteString(ValueStyle.Render(formatValue(obj[k])))
		b.WriteString("\n")
	}
	return b.String()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case float64:
		// JSON numbers decode as float64; render integers without a
		// fractional part.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", v)
	}
}
