package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/sanix-darker/crit/internal/diffparse"
)

// ErrInvalidHunk is returned when a parsed hunk is structurally unusable
// (no filename or no changes). Structural failures abort the whole call.
var ErrInvalidHunk = errors.New("review: hunk is missing filename or changes")

// summaryFailureMessage replaces the summary when its generation fails;
// a broken summary never aborts comment generation.
const summaryFailureMessage = "Summary generation failed"

// Coordinator is the per-hunk request surface the orchestrator depends on.
// *Client is the production implementation.
type Coordinator interface {
	GetReview(ctx context.Context, hunk diffparse.Hunk) ([]ReviewComment, error)
	GetSummary(ctx context.Context, diffText string) (string, error)
}

// Orchestrator composes the diff parser and one coordinator across every
// hunk of a diff. It holds no state across calls; each hunk's success or
// failure is fully isolated from its siblings and from the summary path.
type Orchestrator struct {
	client Coordinator
	log    zerolog.Logger
}

// NewOrchestrator creates an orchestrator around an explicitly constructed
// coordinator.
func NewOrchestrator(client Coordinator, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{client: client, log: log}
}

// ReviewChanges parses the diff and reviews every hunk strictly
// sequentially, one round trip outstanding at a time. A failing hunk
// contributes zero comments and processing continues; the final comment
// order always reflects input hunk order regardless of which hunks
// succeeded. Parser and hunk-shape failures abort the whole call.
func (o *Orchestrator) ReviewChanges(ctx context.Context, diffText string, opts Options) (*ReviewResult, error) {
	if diffText == "" {
		return nil, diffparse.ErrInvalidInput
	}

	hunks, err := diffparse.Parse(diffText)
	if err != nil {
		return nil, fmt.Errorf("review failed: %w", err)
	}

	var summary *string
	if opts.GenerateSummary {
		s, err := o.client.GetSummary(ctx, diffText)
		if err != nil {
			o.log.Warn().Err(err).Msg("summary generation failed, continuing with comments")
			s = summaryFailureMessage
		}
		summary = &s
	}

	comments := make([]ReviewComment, 0)
	for i, hunk := range hunks {
		if hunk.Filename == "" || len(hunk.Changes) == 0 {
			return nil, fmt.Errorf("%w (hunk %d)", ErrInvalidHunk, i)
		}

		hunkComments, err := o.client.GetReview(ctx, hunk)
		if err != nil {
			// Fault containment: one bad hunk or unreachable model never
			// aborts the batch.
			o.log.Warn().
				Err(err).
				Int("hunk", i).
				Str("file", hunk.Filename).
				Msg("hunk review failed, skipping")
			continue
		}

		for _, c := range hunkComments {
			c.Filename = hunk.Filename
			c.Header = hunk.Header
			comments = append(comments, c)
		}
	}

	return &ReviewResult{
		Summary:  summary,
		Comments: comments,
		Hunks:    hunks,
		Metadata: Metadata{
			ReviewedAt:    time.Now().UTC(),
			TotalHunks:    len(hunks),
			TotalComments: len(comments),
		},
	}, nil
}

// FilterComments applies the minimum-length, exclude and include predicates
// conjunctively over a copy of the input; the input sequence is never
// mutated.
func FilterComments(comments []ReviewComment, filters Filters) []ReviewComment {
	out := make([]ReviewComment, 0, len(comments))
	for _, c := range comments {
		if filters.MinLength > 0 && utf8.RuneCountInString(c.Body) < filters.MinLength {
			continue
		}
		if matchesAny(c.Filename, filters.ExcludeFiles) {
			continue
		}
		if len(filters.IncludeFiles) > 0 && !matchesAny(c.Filename, filters.IncludeFiles) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesAny(filename string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(filename, p) {
			return true
		}
	}
	return false
}
