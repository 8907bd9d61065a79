// Package provider defines the capability interface for LLM backends.
// It abstracts the differences between chat-completion APIs behind a small
// surface (request formatting, auth headers, response extraction) so the
// review coordinator can drive any backend without knowing its wire format.
//
// Design principles:
//   - Idiomatic Go: error values, small interfaces, no hidden state
//   - Normalized error codes across providers
//   - Registry/factory pattern so variants are chosen via configuration
package provider

// ---------------------------------------------------------------------------
// Message types
// ---------------------------------------------------------------------------

// Role represents the role of a message participant.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ---------------------------------------------------------------------------
// Request options
// ---------------------------------------------------------------------------

// RequestOptions tunes a single completion request. Zero values mean "use
// the provider's default".
type RequestOptions struct {
	// Model overrides the provider's default model identifier.
	Model string

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature controls sampling randomness. A nil value means "use
	// provider default".
	Temperature *float64
}

// ---------------------------------------------------------------------------
// Core interface
// ---------------------------------------------------------------------------

// Provider is the pluggable adapter for one LLM backend. Implementations
// are stateless with respect to requests: they translate between the
// provider-agnostic types above and the backend's wire format, and they
// validate what comes back. The network round trip itself belongs to the
// coordinator, not the provider.
type Provider interface {
	// Name is the canonical short name used in configuration and error
	// messages (e.g. "openai").
	Name() string

	// FormatRequest validates the message sequence and builds the
	// provider-specific request body, applying defaults for model, token
	// cap and temperature unless opts overrides them.
	FormatRequest(messages []Message, opts RequestOptions) (interface{}, error)

	// ParseResponse extracts the completion text from a raw response body,
	// failing when the expected content path is absent or the text is
	// blank. Truncated completions are reported as a non-fatal warning.
	ParseResponse(body []byte) (string, error)

	// Headers returns the HTTP headers for a request authorized with the
	// given API key.
	Headers(apiKey string) map[string]string
}
