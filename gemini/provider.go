// Package gemini implements srcdoc.Provider using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/srcdoc"
	"google.golang.org/genai"
)

// Ensure Provider implements srcdoc.Provider at compile time.
var _ srcdoc.Provider = (*Provider)(nil)

// Provider implements srcdoc.Provider using Google Gemini.
type Provider struct {
	client      *genai.Client
	model       string
	temperature float64
}

// NewProvider creates a new Provider.
func NewProvider(client *genai.Client, model string, temperature float64) *Provider {
	return &Provider{client: client, model: model, temperature: temperature}
}

// Complete sends prompt as a single user content and returns the generated text.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", srcdoc.Errorf(srcdoc.EINVALID, "prompt required")
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model,
		BuildContents(prompt),
		BuildConfig(p.temperature),
	)
	if err != nil {
		return "", srcdoc.Errorf(srcdoc.ESERVICE, "gemini generate content: %v", err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", srcdoc.Errorf(srcdoc.ESERVICE, "gemini returned no candidates")
	}

	return result.Text(), nil
}

// BuildContents wraps prompt as a single user-role content.
func BuildContents(prompt string) []*genai.Content {
	return []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(temperature float64) *genai.GenerateContentConfig {
	temp := float32(temperature)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}
