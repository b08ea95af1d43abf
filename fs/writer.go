package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/srcdoc"
)

// DocPath returns the path of the documentation page for a source file:
// the source's directory and base name without extension, plus suffix.
// Example: src/seed.sql → src/seed_doc.txt
func DocPath(sourcePath, suffix string) string {
	dir := filepath.Dir(sourcePath)
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+suffix)
}

// Ensure Writer implements the srcdoc writer interfaces at compile time.
var (
	_ srcdoc.DocWriter      = (*Writer)(nil)
	_ srcdoc.OverviewWriter = (*Writer)(nil)
)

// Writer writes documentation pages and the overview as plain files.
type Writer struct {
	suffix string
}

// NewWriter creates a new Writer that names pages with the given suffix.
// An empty suffix falls back to srcdoc.DefaultDocSuffix.
func NewWriter(suffix string) *Writer {
	if suffix == "" {
		suffix = srcdoc.DefaultDocSuffix
	}
	return &Writer{suffix: suffix}
}

// WriteDoc writes doc next to sourcePath, replacing any previous page.
func (w *Writer) WriteDoc(ctx context.Context, sourcePath, doc string) (string, error) {
	outPath := DocPath(sourcePath, w.suffix)
	if err := writeFile(outPath, doc); err != nil {
		return "", err
	}
	return outPath, nil
}

// WriteOverview writes the overview to path, replacing any previous file.
func (w *Writer) WriteOverview(ctx context.Context, path, content string) error {
	return writeFile(path, content)
}

func writeFile(path, content string) error {
	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
