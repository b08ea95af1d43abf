// Package openai implements srcdoc.Provider against an OpenAI-compatible
// chat completions endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/srcdoc"
)

// maxErrorBody caps how much of a failed response body is quoted in errors.
const maxErrorBody = 2048

// Ensure Provider implements srcdoc.Provider at compile time.
var _ srcdoc.Provider = (*Provider)(nil)

// Provider generates text with the chat completions API.
type Provider struct {
	client      *http.Client
	apiKey      string
	endpoint    string
	model       string
	temperature float64
}

// Option configures a Provider.
type Option func(*Provider)

// WithEndpoint sets the chat completions URL.
// Defaults to srcdoc.DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(p *Provider) {
		p.endpoint = endpoint
	}
}

// WithModel sets the model identifier sent with every request.
// Defaults to srcdoc.DefaultModel.
func WithModel(model string) Option {
	return func(p *Provider) {
		p.model = model
	}
}

// WithTemperature sets the sampling temperature.
// Defaults to srcdoc.DefaultTemperature.
func WithTemperature(temperature float64) Option {
	return func(p *Provider) {
		p.temperature = temperature
	}
}

// WithHTTPClient sets the HTTP client used for requests.
// Defaults to a client without a timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}

// NewProvider creates a Provider that authenticates with apiKey as a bearer token.
func NewProvider(apiKey string, opts ...Option) *Provider {
	p := &Provider{
		client:      &http.Client{},
		apiKey:      apiKey,
		endpoint:    srcdoc.DefaultEndpoint,
		model:       srcdoc.DefaultModel,
		temperature: srcdoc.DefaultTemperature,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Message is a single chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the chat completions request body.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// Response is the subset of the chat completions response that is read.
type Response struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// BuildRequest returns the request body for prompt.
func (p *Provider) BuildRequest(prompt string) Request {
	return Request{
		Model:       p.model,
		Messages:    []Message{{Role: "user", Content: prompt}},
		Temperature: p.temperature,
	}
}

// Complete sends prompt as a single user message and returns the content
// of the first choice.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", srcdoc.Errorf(srcdoc.EINVALID, "prompt required")
	}

	body, err := json.Marshal(p.BuildRequest(prompt))
	if err != nil {
		return "", srcdoc.Errorf(srcdoc.EINTERNAL, "marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", srcdoc.Errorf(srcdoc.EINVALID, "build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", srcdoc.Errorf(srcdoc.ESERVICE, "chat completion request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", srcdoc.Errorf(srcdoc.ESERVICE, "read response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", srcdoc.Errorf(srcdoc.ESERVICE, "chat completion failed: status=%d body=%s",
			resp.StatusCode, truncate(strings.TrimSpace(string(data)), maxErrorBody))
	}

	var parsed Response
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", srcdoc.Errorf(srcdoc.ESERVICE, "parse response: %v", err)
	}
	if len(parsed.Choices) == 0 {
		return "", srcdoc.Errorf(srcdoc.ESERVICE, "response has no choices")
	}
	msg := parsed.Choices[0].Message
	if msg == nil || msg.Content == nil {
		return "", srcdoc.Errorf(srcdoc.ESERVICE, "response choice has no message content")
	}

	return *msg.Content, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
