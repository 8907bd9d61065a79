// Package openai implements the provider capability for the OpenAI Chat
// Completions API (and any OpenAI-compatible endpoint).
//
// Request bodies follow the {model, messages, max_tokens, temperature}
// shape; responses are expected as {choices:[{message:{content},
// finish_reason}]} with bearer-token authorization.
package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/sanix-darker/crit/internal/provider"
)

func init() {
	provider.Register("openai", New)
}

const (
	// DefaultModel is the chat-completion model used when neither the
	// configuration nor the per-request options name one.
	DefaultModel = "gpt-4o-mini"

	defaultMaxTokens   = 1000
	defaultTemperature = 0.1
)

// ---------------------------------------------------------------------------
// OpenAI-specific API types (request)
// ---------------------------------------------------------------------------

type apiRequest struct {
	Model       string             `json:"model"`
	Messages    []provider.Message `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
}

// ---------------------------------------------------------------------------
// OpenAI-specific API types (response)
// ---------------------------------------------------------------------------

type apiMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

type apiChoice struct {
	Index        int         `json:"index"`
	Message      *apiMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type apiResponse struct {
	ID      string      `json:"id"`
	Model   string      `json:"model"`
	Choices []apiChoice `json:"choices"`
}

// ---------------------------------------------------------------------------
// Provider implementation
// ---------------------------------------------------------------------------

// Provider implements provider.Provider for OpenAI's Chat Completions API.
type Provider struct {
	model string
	log   zerolog.Logger
}

// New is the factory function registered with the provider registry. It
// reads the default model from the scoped config subtree, which may be nil.
func New(v *viper.Viper, log zerolog.Logger) (provider.Provider, error) {
	model := ""
	if v != nil {
		model = v.GetString("model")
	}
	if model == "" {
		model = DefaultModel
	}

	return &Provider{model: model, log: log}, nil
}

// Name returns the canonical provider name.
func (p *Provider) Name() string {
	return "openai"
}

// FormatRequest validates the conversation and builds the chat-completion
// request body, applying the model/token/temperature defaults unless opts
// overrides them.
func (p *Provider) FormatRequest(messages []provider.Message, opts provider.RequestOptions) (interface{}, error) {
	if len(messages) == 0 {
		return nil, &provider.Error{
			Code:     provider.ErrCodeInvalidRequest,
			Message:  "messages must be a non-empty sequence",
			Provider: p.Name(),
		}
	}
	for i, m := range messages {
		if m.Role == "" || m.Content == "" {
			return nil, &provider.Error{
				Code:     provider.ErrCodeInvalidRequest,
				Message:  fmt.Sprintf("message %d must have a non-empty role and content", i),
				Provider: p.Name(),
			}
		}
	}

	req := apiRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	}
	if opts.Model != "" {
		req.Model = opts.Model
	}
	if opts.MaxTokens > 0 {
		req.MaxTokens = opts.MaxTokens
	}
	if opts.Temperature != nil {
		req.Temperature = *opts.Temperature
	}

	return req, nil
}

// ParseResponse extracts choices[0].message.content from a raw response
// body. A completion cut off by the token cap is logged as a warning but
// still returned; a missing content path or blank text is an error.
func (p *Provider) ParseResponse(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &provider.Error{
			Code:     provider.ErrCodeInvalidResponse,
			Message:  "response body is not valid JSON",
			Provider: p.Name(),
			Cause:    err,
		}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil || resp.Choices[0].Message.Content == nil {
		return "", &provider.Error{
			Code:     provider.ErrCodeInvalidResponse,
			Message:  "response is missing choices[0].message.content",
			Provider: p.Name(),
		}
	}

	choice := resp.Choices[0]
	if choice.FinishReason == "length" {
		p.log.Warn().
			Str("provider", p.Name()).
			Str("model", resp.Model).
			Msg("completion was truncated by the max_tokens cap")
	}

	content := *choice.Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &provider.Error{
			Code:     provider.ErrCodeEmptyResponse,
			Message:  "response content is empty or whitespace-only",
			Provider: p.Name(),
		}
	}

	return content, nil
}

// Headers returns the content-type and bearer-authorization headers for a
// request signed with the given key.
func (p *Provider) Headers(apiKey string) map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + apiKey,
	}
}
