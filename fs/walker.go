// Package fs provides filesystem implementations of the srcdoc file interfaces.
package fs

import (
	"context"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/fwojciec/srcdoc"
)

// Ensure Walker implements srcdoc.FileWalker at compile time.
var _ srcdoc.FileWalker = (*Walker)(nil)

// Walker enumerates files with filepath.WalkDir. Symbolic links are not
// followed. Returned paths keep the root exactly as given, so a root of
// "./" yields "./a.sql" rather than "a.sql".
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk returns every non-directory path under root. The first traversal
// error aborts the walk.
func (w *Walker) Walk(ctx context.Context, root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		paths = append(paths, joinRoot(root, path))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// joinRoot rebuilds path, which WalkDir has cleaned, on top of the
// uncleaned root.
func joinRoot(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return path
	}
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root + rel
	}
	return root + string(filepath.Separator) + rel
}
