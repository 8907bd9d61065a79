// Package review drives an LLM through the hunks of a parsed diff and
// aggregates the per-line comments and the change summary it produces.
// The Client owns the provider round trip (prompt construction, request,
// structured decoding); the Orchestrator composes parser and client across
// every hunk with per-hunk fault isolation.
package review

import (
	"time"

	"github.com/sanix-darker/crit/internal/diffparse"
)

// ReviewComment is one model-produced comment anchored to a diff line.
// Filename and Header are attached post-hoc from the owning hunk.
type ReviewComment struct {
	Body     string                `json:"body"`
	Line     int                   `json:"line"`
	Filename string                `json:"filename,omitempty"`
	Header   *diffparse.HunkHeader `json:"hunkHeader,omitempty"`
}

// Metadata carries the bookkeeping attached to a finished review.
type Metadata struct {
	ReviewedAt    time.Time `json:"reviewedAt"`
	TotalHunks    int       `json:"totalHunks"`
	TotalComments int       `json:"totalComments"`
}

// ReviewResult is the aggregated output of one ReviewChanges call. Summary
// is nil when summary generation was disabled.
type ReviewResult struct {
	Summary  *string          `json:"summary"`
	Comments []ReviewComment  `json:"comments"`
	Hunks    []diffparse.Hunk `json:"hunks"`
	Metadata Metadata         `json:"metadata"`
}

// Options tunes a single ReviewChanges call. Model selection is bound on
// the Client, not per call.
type Options struct {
	// GenerateSummary asks for an overall change summary before the
	// per-hunk reviews. A summary failure never aborts comment generation.
	GenerateSummary bool
}

// DefaultOptions returns the options used when the caller passes none:
// summary on.
func DefaultOptions() Options {
	return Options{GenerateSummary: true}
}

// Filters narrows an aggregated comment list. All three predicates are
// applied conjunctively; zero values disable the corresponding predicate.
type Filters struct {
	// MinLength drops comments whose body has fewer characters (runes,
	// not bytes) than this.
	MinLength int

	// ExcludeFiles drops a comment when any pattern is a substring of its
	// filename.
	ExcludeFiles []string

	// IncludeFiles keeps a comment only when at least one pattern is a
	// substring of its filename.
	IncludeFiles []string
}
