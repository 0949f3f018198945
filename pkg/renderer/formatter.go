package renderer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/wonderfulspam/textsmith/pkg/differ"
)

// Format renders a diff result in the requested output format.
func Format(result *differ.Result, format string) (string, error) {
	switch format {
	case "unified":
		return FormatUnified(result.Entries), nil

	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "table", "":
		return formatTable(result), nil

	case "side-by-side":
		return FormatSideBySide(result.Entries, DefaultSideBySideWidth), nil

	default:
		return "", fmt.Errorf("unsupported format: %s (supported: unified, json, table, side-by-side)", format)
	}
}

// FormatUnified serializes entries with the three-prefix convention: "+ " for
// added, "- " for removed, "  " for unchanged, newline-joined. This is the
// textual form used for clipboard and file export and must round-trip exactly.
func FormatUnified(entries []differ.Entry) string {
	var buf bytes.Buffer

	for i, e := range entries {
		if i > 0 {
			buf.WriteString("\n")
		}
		switch e.Kind {
		case differ.KindAdded:
			buf.WriteString("+ ")
		case differ.KindRemoved:
			buf.WriteString("- ")
		default:
			buf.WriteString("  ")
		}
		buf.WriteString(e.Content)
	}

	return buf.String()
}

func formatTable(result *differ.Result) string {
	var buf bytes.Buffer

	buf.WriteString("Text Comparison\n")
	buf.WriteString("===============\n\n")

	buf.WriteString("Summary:\n")
	buf.WriteString("--------\n")
	buf.WriteString(fmt.Sprintf("  Added:     %d\n", result.Counts.Added))
	buf.WriteString(fmt.Sprintf("  Removed:   %d\n", result.Counts.Removed))
	buf.WriteString(fmt.Sprintf("  Unchanged: %d\n", result.Counts.Unchanged))
	buf.WriteString(fmt.Sprintf("  Total:     %d\n", result.Counts.Total))

	if !result.HasChanges {
		buf.WriteString("\nNo differences found.\n")
		return buf.String()
	}

	buf.WriteString("\nChanges:\n")
	buf.WriteString("--------\n")
	for _, e := range result.Entries {
		if e.Kind == differ.KindUnchanged {
			continue
		}
		buf.WriteString(fmt.Sprintf("  [%s] line %d: %s\n", string(e.Kind), e.SourceLine, e.Content))
	}

	return buf.String()
}
