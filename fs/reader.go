package fs

import (
	"context"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/srcdoc"
)

// Ensure Reader implements srcdoc.FileReader at compile time.
var _ srcdoc.FileReader = (*Reader)(nil)

// Reader loads whole files into memory.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile returns the content of path. Content that is not valid UTF-8 is
// rejected with EINVALID.
func (r *Reader) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", srcdoc.Errorf(srcdoc.EINVALID, "%s: content is not valid UTF-8", path)
	}

	return string(data), nil
}
