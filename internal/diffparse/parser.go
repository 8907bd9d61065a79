// Package diffparse turns raw unified-diff text into structured,
// line-anchored hunks. It does not compute diffs itself; it only parses
// pre-computed `git diff` style output.
//
// The parser reconstructs per-line numbers from the @@ hunk headers: added
// and context lines carry new-file numbers, deleted lines carry old-file
// numbers. Hunks whose header could not be parsed (binary markers, exotic
// diffs) keep every line number nil.
package diffparse

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when the diff text is empty.
var ErrInvalidInput = errors.New("diffparse: diff text must be a non-empty string")

// ChangeType classifies a single diff line.
type ChangeType int

const (
	// ChangeContext is an unchanged line (or any line that is neither an
	// addition nor a deletion, including binary-file markers).
	ChangeContext ChangeType = iota
	// ChangeAddition is an added line (starts with '+').
	ChangeAddition
	// ChangeDeletion is a removed line (starts with '-').
	ChangeDeletion
)

// String returns the wire name of the change type.
func (t ChangeType) String() string {
	switch t {
	case ChangeAddition:
		return "addition"
	case ChangeDeletion:
		return "deletion"
	default:
		return "context"
	}
}

// MarshalJSON encodes the change type as its wire name.
func (t ChangeType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// HunkHeader holds the starting line numbers parsed from an @@ header.
type HunkHeader struct {
	OldStart int `json:"oldStart"`
	NewStart int `json:"newStart"`
}

// Change is one line of a hunk. Content keeps the raw line including its
// leading +/-/space marker. LineNumber is the new-file number for additions
// and context lines, the old-file number for deletions, and nil when the
// owning hunk has no parseable header.
type Change struct {
	Content    string     `json:"content"`
	Type       ChangeType `json:"type"`
	LineNumber *int       `json:"lineNumber"`
}

// Hunk is one contiguous block of changes under a single @@ header.
// Header is nil when the header line was missing or malformed.
type Hunk struct {
	Filename string      `json:"filename"`
	Changes  []Change    `json:"changes"`
	Header   *HunkHeader `json:"hunkHeader"`
}

// hunkHeaderPattern matches "@@ -O[,len] +N[,len] @@".
var hunkHeaderPattern = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// Parse scans unified-diff text into an ordered list of hunks. It is pure
// and stateless: repeated calls on the same input yield identical results,
// and counters never leak between hunks or calls.
func Parse(diffText string) ([]Hunk, error) {
	if diffText == "" {
		return nil, ErrInvalidInput
	}

	hunks := []Hunk{}

	var (
		filename string
		header   *HunkHeader
		changes  []Change

		// Old/new line counters, valid only while counting is true
		// (i.e. the current hunk had a parseable header).
		oldLine  int
		newLine  int
		counting bool
	)

	// A hunk is "in progress" once it has accumulated at least one change;
	// headers or file markers with no body contribute nothing.
	flush := func() {
		if len(changes) == 0 {
			return
		}
		hunks = append(hunks, Hunk{Filename: filename, Changes: changes, Header: header})
		changes = nil
	}

	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case line == "":
			// Blank lines (trailing newline artifacts) carry no marker and
			// would shift the counters if classified, skip them.

		case strings.HasPrefix(line, "diff --git "):
			flush()
			filename = parseFilename(line)
			header = nil
			counting = false

		case strings.HasPrefix(line, "@@"):
			// A new header always starts a new hunk, even within one file,
			// with its own independently initialized counters.
			flush()
			if m := hunkHeaderPattern.FindStringSubmatch(line); m != nil {
				oldStart, _ := strconv.Atoi(m[1])
				newStart, _ := strconv.Atoi(m[2])
				header = &HunkHeader{OldStart: oldStart, NewStart: newStart}
				oldLine, newLine = oldStart, newStart
				counting = true
			} else {
				header = nil
				counting = false
			}

		case strings.HasPrefix(line, "index"),
			strings.HasPrefix(line, "---"),
			strings.HasPrefix(line, "+++"):
			// File metadata, not part of any hunk body.

		default:
			changes = append(changes, classify(line, &oldLine, &newLine, counting))
		}
	}

	flush()
	return hunks, nil
}

// classify builds a Change from a raw body line, consuming the counters
// according to its first byte. With no header in scope (counting false) the
// line number stays nil regardless of type.
func classify(line string, oldLine, newLine *int, counting bool) Change {
	ch := Change{Content: line, Type: ChangeContext}

	switch line[0] {
	case '+':
		ch.Type = ChangeAddition
		if counting {
			ch.LineNumber = intPtr(*newLine)
			(*newLine)++
		}
	case '-':
		ch.Type = ChangeDeletion
		if counting {
			ch.LineNumber = intPtr(*oldLine)
			(*oldLine)++
		}
	default:
		// Context lines advance both sides and are anchored to the new file.
		if counting {
			ch.LineNumber = intPtr(*newLine)
			(*oldLine)++
			(*newLine)++
		}
	}

	return ch
}

// parseFilename extracts the path from a "diff --git a/<old> b/<new>" line,
// keeping the first path token with its "a/" prefix removed. Nested paths
// are preserved verbatim.
func parseFilename(line string) string {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return ""
	}
	return strings.TrimPrefix(fields[2], "a/")
}

func intPtr(n int) *int {
	return &n
}
