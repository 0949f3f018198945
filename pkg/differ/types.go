package differ

type Kind string

const (
	KindAdded     Kind = "added"
	KindRemoved   Kind = "removed"
	KindUnchanged Kind = "unchanged"
)

// Options controls how lines are compared. Normalization applies to the
// equality test only; entry content is always the original line.
type Options struct {
	IgnoreCase       bool `yaml:"ignore_case" json:"ignore_case"`
	IgnoreWhitespace bool `yaml:"ignore_whitespace" json:"ignore_whitespace"`
}

// Entry is one line of the diff. SourceLine is 1-based: the original side
// for removed and unchanged entries, the modified side for added entries.
type Entry struct {
	Kind       Kind   `json:"kind"`
	Content    string `json:"content"`
	SourceLine int    `json:"source_line"`
}

type Summary struct {
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Unchanged int `json:"unchanged"`
	Total     int `json:"total"`
}

type Result struct {
	Entries    []Entry `json:"entries"`
	Counts     Summary `json:"counts"`
	HasChanges bool    `json:"has_changes"`
	Summary    string  `json:"summary"`
}

// Summarize counts entries by kind.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Kind {
		case KindAdded:
			s.Added++
		case KindRemoved:
			s.Removed++
		case KindUnchanged:
			s.Unchanged++
		}
	}
	s.Total = len(entries)
	return s
}
