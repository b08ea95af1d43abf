package mock

import (
	"context"

	"github.com/fwojciec/srcdoc"
)

var _ srcdoc.DocWriter = (*DocWriter)(nil)

// DocWriter is a mock implementation of srcdoc.DocWriter.
type DocWriter struct {
	WriteDocFn func(ctx context.Context, sourcePath, doc string) (string, error)
}

func (w *DocWriter) WriteDoc(ctx context.Context, sourcePath, doc string) (string, error) {
	return w.WriteDocFn(ctx, sourcePath, doc)
}

var _ srcdoc.OverviewWriter = (*OverviewWriter)(nil)

// OverviewWriter is a mock implementation of srcdoc.OverviewWriter.
type OverviewWriter struct {
	WriteOverviewFn func(ctx context.Context, path, content string) error
}

func (w *OverviewWriter) WriteOverview(ctx context.Context, path, content string) error {
	return w.WriteOverviewFn(ctx, path, content)
}
