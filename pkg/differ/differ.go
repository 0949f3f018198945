package differ

import (
	"fmt"
	"regexp"
	"strings"
)

// Compare diffs two texts line by line and returns the aligned edit sequence
// plus aggregate counts. It is a pure function: any two inputs, including
// empty strings, produce a valid result.
func Compare(original, modified string, opts Options) *Result {
	entries := CompareLines(splitLines(original), splitLines(modified), opts)

	result := &Result{
		Entries: entries,
		Counts:  Summarize(entries),
	}
	result.HasChanges = result.Counts.Added > 0 || result.Counts.Removed > 0
	result.Summary = generateSummary(result)

	return result
}

// CompareLines aligns two line sequences using a longest-common-subsequence
// table over the normalized lines. Lines on the LCS become unchanged entries;
// original lines off it become removed entries and modified lines off it
// become added entries, each interleaved at its alignment gap. Within one gap
// every removed entry precedes every added entry.
func CompareLines(original, modified []string, opts Options) []Entry {
	a := normalizeLines(original, opts)
	b := normalizeLines(modified, opts)

	// lcs[i][j] holds the LCS length of a[i:] and b[j:].
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	entries := []Entry{}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			entries = append(entries, Entry{Kind: KindUnchanged, Content: original[i], SourceLine: i + 1})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			// Preferring the removal on ties keeps removed entries ahead
			// of added entries within a gap.
			entries = append(entries, Entry{Kind: KindRemoved, Content: original[i], SourceLine: i + 1})
			i++
		default:
			entries = append(entries, Entry{Kind: KindAdded, Content: modified[j], SourceLine: j + 1})
			j++
		}
	}
	for ; i < len(a); i++ {
		entries = append(entries, Entry{Kind: KindRemoved, Content: original[i], SourceLine: i + 1})
	}
	for ; j < len(b); j++ {
		entries = append(entries, Entry{Kind: KindAdded, Content: modified[j], SourceLine: j + 1})
	}

	return entries
}

// splitLines performs a literal newline split. An empty text has no lines,
// so empty-vs-empty compares to an empty entry sequence rather than a single
// unchanged blank line. A trailing newline keeps the final empty line a
// literal split would yield.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalizeLine builds the comparison form of a line: case folding first,
// then whitespace collapsing. The order is fixed for determinism.
func normalizeLine(line string, opts Options) string {
	if opts.IgnoreCase {
		line = strings.ToLower(line)
	}
	if opts.IgnoreWhitespace {
		line = strings.TrimSpace(whitespaceRun.ReplaceAllString(line, " "))
	}
	return line
}

func normalizeLines(lines []string, opts Options) []string {
	if !opts.IgnoreCase && !opts.IgnoreWhitespace {
		return lines
	}
	normalized := make([]string, len(lines))
	for i, line := range lines {
		normalized[i] = normalizeLine(line, opts)
	}
	return normalized
}

func generateSummary(result *Result) string {
	if !result.HasChanges {
		return "No differences found"
	}

	parts := []string{}

	if result.Counts.Added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", result.Counts.Added))
	}
	if result.Counts.Removed > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", result.Counts.Removed))
	}
	parts = append(parts, fmt.Sprintf("%d unchanged", result.Counts.Unchanged))

	return fmt.Sprintf("%s (%d lines)", strings.Join(parts, ", "), result.Counts.Total)
}
