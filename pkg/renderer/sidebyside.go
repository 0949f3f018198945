package renderer

import (
	"bytes"
	"fmt"

	"github.com/wonderfulspam/textsmith/pkg/differ"
)

// DefaultSideBySideWidth is the content width of the left column in the
// side-by-side view.
const DefaultSideBySideWidth = 40

// row pairs an original-side entry with a modified-side entry for one
// display line. Either side may be nil.
type row struct {
	left  *differ.Entry
	right *differ.Entry
}

// FormatSideBySide renders entries as two columns, original on the left and
// modified on the right. Removed lines in a gap pair up with the added lines
// of the same gap; leftovers render against a blank column. Left-column text
// longer than width is truncated, never wrapped.
func FormatSideBySide(entries []differ.Entry, width int) string {
	if width <= 0 {
		width = DefaultSideBySideWidth
	}

	var buf bytes.Buffer
	for _, r := range pairRows(entries) {
		buf.WriteString(fmt.Sprintf("%s %-*s | %s %s\n",
			marker(r.left, "-"), width, truncate(cell(r.left), width),
			marker(r.right, "+"), cell(r.right)))
	}
	return buf.String()
}

func pairRows(entries []differ.Entry) []row {
	rows := []row{}

	i := 0
	for i < len(entries) {
		if entries[i].Kind == differ.KindUnchanged {
			e := entries[i]
			rows = append(rows, row{left: &e, right: &e})
			i++
			continue
		}

		// Collect the whole gap: a run of removed entries followed by a run
		// of added entries, then zip the two runs.
		var removed, added []differ.Entry
		for i < len(entries) && entries[i].Kind == differ.KindRemoved {
			removed = append(removed, entries[i])
			i++
		}
		for i < len(entries) && entries[i].Kind == differ.KindAdded {
			added = append(added, entries[i])
			i++
		}

		n := len(removed)
		if len(added) > n {
			n = len(added)
		}
		for k := 0; k < n; k++ {
			var r row
			if k < len(removed) {
				r.left = &removed[k]
			}
			if k < len(added) {
				r.right = &added[k]
			}
			rows = append(rows, r)
		}
	}

	return rows
}

func marker(e *differ.Entry, changeMark string) string {
	if e == nil || e.Kind == differ.KindUnchanged {
		return " "
	}
	return changeMark
}

// cell prefixes the entry's text with its 1-based source line number, or
// leaves the slot blank for a missing side.
func cell(e *differ.Entry) string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%4d %s", e.SourceLine, e.Content)
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width]
}
