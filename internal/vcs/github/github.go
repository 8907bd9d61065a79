// Package github implements the vcs.Poster capability against the GitHub
// REST API: summary notes become issue comments, inline comments become
// pull-request review comments on the new side of the diff.
package github

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sanix-darker/crit/internal/vcs"
)

func init() {
	vcs.Register("github", NewPoster)
}

// Poster implements vcs.Poster for GitHub.
type Poster struct {
	client  *resty.Client
	baseURL string
	token   string
}

// NewPoster creates a GitHub poster.
func NewPoster(token, baseURL string) (vcs.Poster, error) {
	if token == "" {
		return nil, fmt.Errorf("github: token is required")
	}
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	client := resty.New().
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/vnd.github+json").
		SetAuthToken(token)

	return &Poster{client: client, baseURL: baseURL, token: token}, nil
}

func (p *Poster) Info() vcs.ProviderInfo {
	return vcs.ProviderInfo{Name: "github", BaseURL: p.baseURL}
}

func (p *Poster) Validate() error {
	if p.token == "" {
		return fmt.Errorf("github: token is required")
	}
	return nil
}

// PostSummaryNote posts the summary as a plain issue comment on the PR.
func (p *Poster) PostSummaryNote(project string, number int, body string) error {
	url := fmt.Sprintf("%s/repos/%s/issues/%d/comments", p.baseURL, project, number)

	resp, err := p.client.R().
		SetBody(map[string]string{"body": body}).
		Post(url)
	if err != nil {
		return fmt.Errorf("github: failed to post summary note: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("github: summary note rejected (status %d): %s",
			resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	return nil
}

// PostInlineComment posts one review comment anchored to a new-side line.
// refs.HeadSHA identifies the commit the comment attaches to.
func (p *Poster) PostInlineComment(project string, number int, refs vcs.DiffRefs, comment vcs.InlineComment) error {
	url := fmt.Sprintf("%s/repos/%s/pulls/%d/comments", p.baseURL, project, number)

	resp, err := p.client.R().
		SetBody(map[string]interface{}{
			"body":      comment.Body,
			"path":      comment.Path,
			"line":      comment.Line,
			"side":      "RIGHT",
			"commit_id": refs.HeadSHA,
		}).
		Post(url)
	if err != nil {
		return fmt.Errorf("github: failed to post inline comment: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("github: inline comment rejected (status %d): %s",
			resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	return nil
}
