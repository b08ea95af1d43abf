package srcdoc

import "context"

// Provider generates text from a prompt using a remote text-generation service.
type Provider interface {
	// Complete sends the prompt as a single user message and returns the
	// generated text of the first completion.
	// Returns ESERVICE if the service call fails or the response is malformed.
	Complete(ctx context.Context, prompt string) (string, error)
}
