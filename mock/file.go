package mock

import (
	"context"

	"github.com/fwojciec/srcdoc"
)

var _ srcdoc.FileWalker = (*FileWalker)(nil)

// FileWalker is a mock implementation of srcdoc.FileWalker.
type FileWalker struct {
	WalkFn func(ctx context.Context, root string) ([]string, error)
}

func (w *FileWalker) Walk(ctx context.Context, root string) ([]string, error) {
	return w.WalkFn(ctx, root)
}

var _ srcdoc.FileReader = (*FileReader)(nil)

// FileReader is a mock implementation of srcdoc.FileReader.
type FileReader struct {
	ReadFileFn func(ctx context.Context, path string) (string, error)
}

func (r *FileReader) ReadFile(ctx context.Context, path string) (string, error) {
	return r.ReadFileFn(ctx, path)
}
