package srcdoc

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultExtensions lists the source file extensions documented by default.
var DefaultExtensions = []string{".sql", ".sh", ".php"}

// FileWalker enumerates files under a directory tree.
type FileWalker interface {
	// Walk returns every file path reachable from root by recursive descent.
	// Directories are not included. A traversal error aborts the walk.
	Walk(ctx context.Context, root string) ([]string, error)
}

// FileReader loads the text content of a file.
type FileReader interface {
	// ReadFile returns the file content decoded as UTF-8.
	// Returns EINVALID if the content is not valid UTF-8.
	ReadFile(ctx context.Context, path string) (string, error)
}

// DocWriter persists a generated documentation page next to its source file.
type DocWriter interface {
	// WriteDoc writes doc alongside the source path, overwriting any
	// existing page, and returns the path written.
	WriteDoc(ctx context.Context, sourcePath, doc string) (string, error)
}

// OverviewWriter persists the aggregated overview document.
type OverviewWriter interface {
	WriteOverview(ctx context.Context, path, content string) error
}

// HasExtension reports whether path has one of exts, compared case-insensitively.
func HasExtension(path string, exts []string) bool {
	ext := strings.ToLower(Ext(path))
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if ext == normalizeExtension(e) {
			return true
		}
	}
	return false
}

// FilterByExtension returns the paths whose extension is in exts,
// preserving input order.
func FilterByExtension(paths []string, exts []string) []string {
	var filtered []string
	for _, p := range paths {
		if HasExtension(p, exts) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Ext returns the extension of the last path element, including the dot.
// Leading dots of the name are ignored, so ".sql" and "..php" have no
// extension while "a.sql" and ".env.sh" do.
func Ext(path string) string {
	name := strings.TrimLeft(filepath.Base(path), ".")
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

// ContentHash returns the xxhash64 of content as a hex string.
func ContentHash(content string) string {
	return strconv.FormatUint(xxhash.Sum64String(content), 16)
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
