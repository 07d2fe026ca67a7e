package report

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/corp-summary/internal/hierarchy"
)

const columnSeparator = " | "

// Widths returns, per column, the longest of the header and every cell,
// measured in characters.
func Widths(t *Table) []int {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// Render writes the table with every cell centered in its column: the header,
// a rule of '-' as wide as the header, then one line per row.
// It returns ErrNoData without writing anything when the table is empty.
func Render(w io.Writer, t *Table) error {
	if t.Empty() {
		return ErrNoData
	}

	widths := Widths(t)
	total := 0
	for _, width := range widths {
		total += width
	}
	total += len(columnSeparator) * (len(widths) - 1)

	bw := bufio.NewWriter(w)
	bw.WriteString(joinCentered(t.Header, widths))
	bw.WriteString("\n")
	bw.WriteString(strings.Repeat("-", total))
	bw.WriteString("\n")
	for _, row := range t.Rows {
		bw.WriteString(joinCentered(row, widths))
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func joinCentered(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = center(cell, width)
	}
	return strings.Join(parts, columnSeparator)
}

// center pads s with spaces to width characters. When the padding is odd the
// extra space goes left only if width is odd too.
func center(s string, width int) string {
	margin := width - utf8.RuneCountInString(s)
	if margin <= 0 {
		return s
	}
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", margin-left)
}

// RenderHierarchy writes each department followed by its teams as a bulleted
// list, both in ascending order. It returns ErrNoData for an empty tree.
func RenderHierarchy(w io.Writer, tree *hierarchy.Tree) error {
	if tree == nil || tree.Empty() {
		return ErrNoData
	}

	bw := bufio.NewWriter(w)
	for _, dept := range tree.Sorted() {
		bw.WriteString("- " + dept.Name + "\n")
		for _, team := range dept.Teams {
			bw.WriteString("  • " + team + "\n")
		}
	}
	return bw.Flush()
}
