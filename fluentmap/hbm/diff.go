package hbm

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/krew-solutions/fluent-mapping-go/fluentmap/model"
)

// Diff renders both documents and returns a line diff of the XML, with
// removed lines prefixed by "- ", added lines by "+ " and unchanged lines
// by two spaces. It returns "" when the documents render identically.
func Diff(a, b *model.HibernateMapping) (string, error) {
	left, err := Marshal(a)
	if err != nil {
		return "", err
	}
	right, err := Marshal(b)
	if err != nil {
		return "", err
	}
	return DiffText(string(left), string(right)), nil
}

func DiffText(left, right string) string {
	if left == right {
		return ""
	}
	dmp := diffpatch.New()
	l, r, lines := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(l, r, false), lines)

	var sb strings.Builder
	changed := false
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
			changed = true
		case diffpatch.DiffInsert:
			prefix = "+ "
			changed = true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	if !changed {
		return ""
	}
	return sb.String()
}
