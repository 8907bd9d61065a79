// Package gitlab implements the vcs.Poster capability against the GitLab
// API: summary notes become MR notes, inline comments become positioned
// MR discussions.
package gitlab

import (
	"fmt"

	gl "github.com/xanzy/go-gitlab"

	"github.com/sanix-darker/crit/internal/vcs"
)

func init() {
	vcs.Register("gitlab", NewPoster)
}

// Poster implements vcs.Poster for GitLab.
type Poster struct {
	api     *gl.Client
	baseURL string
	token   string
}

// NewPoster creates a GitLab poster.
func NewPoster(token, baseURL string) (vcs.Poster, error) {
	if token == "" {
		return nil, fmt.Errorf("gitlab: token is required")
	}
	if baseURL == "" {
		baseURL = "https://gitlab.com"
	}

	client, err := gl.NewClient(token, gl.WithBaseURL(baseURL+"/api/v4"))
	if err != nil {
		return nil, fmt.Errorf("gitlab: failed to create client: %w", err)
	}

	return &Poster{api: client, baseURL: baseURL, token: token}, nil
}

func (p *Poster) Info() vcs.ProviderInfo {
	return vcs.ProviderInfo{Name: "gitlab", BaseURL: p.baseURL}
}

func (p *Poster) Validate() error {
	if p.token == "" {
		return fmt.Errorf("gitlab: token is required")
	}
	return nil
}

// PostSummaryNote posts the summary as a top-level MR note.
func (p *Poster) PostSummaryNote(project string, number int, body string) error {
	_, _, err := p.api.Notes.CreateMergeRequestNote(project, number, &gl.CreateMergeRequestNoteOptions{
		Body: gl.String(body),
	})
	if err != nil {
		return fmt.Errorf("gitlab: failed to post summary note: %w", err)
	}
	return nil
}

// PostInlineComment posts one positioned discussion on the new side of the
// MR diff. All three SHA refs are required by the GitLab position payload.
func (p *Poster) PostInlineComment(project string, number int, refs vcs.DiffRefs, comment vcs.InlineComment) error {
	_, _, err := p.api.Discussions.CreateMergeRequestDiscussion(project, number, &gl.CreateMergeRequestDiscussionOptions{
		Body: gl.String(comment.Body),
		Position: &gl.PositionOptions{
			PositionType: gl.String("text"),
			BaseSHA:      gl.String(refs.BaseSHA),
			HeadSHA:      gl.String(refs.HeadSHA),
			StartSHA:     gl.String(refs.StartSHA),
			NewPath:      gl.String(comment.Path),
			NewLine:      gl.Int(comment.Line),
		},
	})
	if err != nil {
		return fmt.Errorf("gitlab: failed to post inline comment: %w", err)
	}
	return nil
}
