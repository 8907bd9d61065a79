// Package vcs posts finished reviews to a code-hosting service. Posting is
// strictly post-hoc: nothing here can alter a review result, and a posting
// failure never corrupts one.
package vcs

// Poster abstracts the operations needed to publish a review on a pull or
// merge request.
type Poster interface {
	// Info returns static metadata about this poster.
	Info() ProviderInfo

	// PostSummaryNote publishes the review summary as a top-level
	// discussion note on the request.
	PostSummaryNote(project string, number int, body string) error

	// PostInlineComment publishes one line-anchored comment on the diff.
	PostInlineComment(project string, number int, refs DiffRefs, comment InlineComment) error

	// Validate checks that the poster is usable (token present).
	Validate() error
}

// ProviderInfo describes a poster.
type ProviderInfo struct {
	Name    string
	BaseURL string
}

// DiffRefs holds the SHA references some platforms need for inline
// comments.
type DiffRefs struct {
	BaseSHA  string
	HeadSHA  string
	StartSHA string
}

// InlineComment is one line-anchored comment to publish. Line is the
// new-file line number.
type InlineComment struct {
	Path string
	Line int
	Body string
}
