package mock

import "github.com/fwojciec/srcdoc"

var _ srcdoc.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of srcdoc.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
