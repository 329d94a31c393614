package cmd

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// unifiedDiff returns the changes from before to after in unified format.
func unifiedDiff(name, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: name,
		ToFile:   name + " (rewritten)",
		Context:  3,
	})
}

const (
	colorAdd   = "\033[32m"
	colorDel   = "\033[31m"
	colorHunk  = "\033[36m"
	colorReset = "\033[0m"
)

func colorize(diff string) string {
	lines := strings.SplitAfter(diff, "\n")
	var sb strings.Builder
	for _, line := range lines {
		color := ""
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			color = colorAdd
		case strings.HasPrefix(line, "-"):
			color = colorDel
		case strings.HasPrefix(line, "@@"):
			color = colorHunk
		}
		if color == "" {
			sb.WriteString(line)
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		sb.WriteString(color + body + colorReset)
		if len(body) < len(line) {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
