package mock

import (
	"context"

	"github.com/fwojciec/srcdoc"
)

var _ srcdoc.Provider = (*Provider)(nil)

// Provider is a mock implementation of srcdoc.Provider.
type Provider struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
}

func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	return p.CompleteFn(ctx, prompt)
}
