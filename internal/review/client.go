package review

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/sanix-darker/crit/internal/diffparse"
	"github.com/sanix-darker/crit/internal/provider"
)

const (
	reviewMaxTokens  = 1000
	summaryMaxTokens = 1500
	temperature      = 0.1
)

// Client coordinates requests against one LLM provider for its lifetime.
// The provider is bound at construction; there is no runtime switching
// inside a single client.
type Client struct {
	provider provider.Provider
	endpoint string
	apiKey   string
	model    string
	http     *resty.Client
	log      zerolog.Logger
}

// NewClient creates a coordinator bound to the given provider. No request
// timeout is set: callers needing hard deadlines wrap the context.
func NewClient(p provider.Provider, endpoint, apiKey, model string, log zerolog.Logger) *Client {
	return &Client{
		provider: p,
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		http:     resty.New().SetHeader("Accept", "application/json"),
		log:      log,
	}
}

// MakeRequest performs one completion round trip: format, POST, extract.
// Provider and transport failures are wrapped with the provider name and,
// when available, the upstream status code and message; they are always
// propagated, never swallowed.
func (c *Client) MakeRequest(ctx context.Context, messages []provider.Message, opts provider.RequestOptions) (string, error) {
	if c.endpoint == "" || c.apiKey == "" {
		return "", &provider.Error{
			Code:     provider.ErrCodeConfiguration,
			Message:  "endpoint and api key must be configured",
			Provider: c.provider.Name(),
		}
	}

	if opts.Model == "" {
		opts.Model = c.model
	}

	body, err := c.provider.FormatRequest(messages, opts)
	if err != nil {
		return "", err
	}

	c.log.Debug().
		Str("provider", c.provider.Name()).
		Str("endpoint", c.endpoint).
		Msg("sending completion request")

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(c.provider.Headers(c.apiKey)).
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		return "", &provider.Error{
			Code:     provider.ErrCodeRequestFailed,
			Message:  "request failed: " + err.Error(),
			Provider: c.provider.Name(),
			Cause:    err,
		}
	}

	if resp.IsError() {
		return "", &provider.Error{
			Code:       provider.ErrCodeRequestFailed,
			Message:    upstreamMessage(resp.Body()),
			Provider:   c.provider.Name(),
			StatusCode: resp.StatusCode(),
		}
	}

	return c.provider.ParseResponse(resp.Body())
}

// GetReview asks the model for line-anchored comments on one hunk and
// decodes the structured reply. The raw text has any surrounding markdown
// code fence stripped before decoding.
func (c *Client) GetReview(ctx context.Context, hunk diffparse.Hunk) ([]ReviewComment, error) {
	messages := []provider.Message{
		{Role: provider.RoleSystem, Content: systemPrompt},
		{Role: provider.RoleUser, Content: BuildReviewPrompt(hunk)},
	}

	temp := temperature
	raw, err := c.MakeRequest(ctx, messages, provider.RequestOptions{
		MaxTokens:   reviewMaxTokens,
		Temperature: &temp,
	})
	if err != nil {
		return nil, err
	}

	var decoded struct {
		Comments []ReviewComment `json:"comments"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &decoded); err != nil {
		return nil, &provider.Error{
			Code:     provider.ErrCodeInvalidJSON,
			Message:  "review response is not the expected JSON payload",
			Provider: c.provider.Name(),
			Cause:    err,
		}
	}

	return decoded.Comments, nil
}

// GetSummary asks the model for an overall change summary and returns the
// raw text unmodified; summaries are free text and never decoded.
func (c *Client) GetSummary(ctx context.Context, diffText string) (string, error) {
	messages := []provider.Message{
		{Role: provider.RoleSystem, Content: systemPrompt},
		{Role: provider.RoleUser, Content: BuildSummaryPrompt(diffText)},
	}

	temp := temperature
	return c.MakeRequest(ctx, messages, provider.RequestOptions{
		MaxTokens:   summaryMaxTokens,
		Temperature: &temp,
	})
}

// fencePattern matches a reply wrapped in a single markdown code fence,
// with or without a language tag.
var fencePattern = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// stripCodeFence removes a leading/trailing markdown fence, which models
// add despite instructions often enough to be worth tolerating.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if m := fencePattern.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	return trimmed
}

// upstreamMessage pulls a human-readable message out of an error response
// body, falling back to the raw body when it is short and not JSON.
func upstreamMessage(body []byte) string {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	if len(body) > 0 && len(body) < 200 {
		return strings.TrimSpace(string(body))
	}
	return "upstream request failed"
}
