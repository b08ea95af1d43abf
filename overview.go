package srcdoc

import (
	"sort"
	"strings"
)

// DefaultOverviewFilename is the name of the aggregated overview written at the root.
const DefaultOverviewFilename = "PROJECT_OVERVIEW.md"

const (
	overviewTitle = "# Project Overview"
	overviewIntro = "This document provides a high-level summary of the codebase, including file-by-file documentation and references."
)

// Renderer converts the markdown overview into another presentation format.
type Renderer interface {
	Render(markdown string) (string, error)
}

// FormatOverview assembles the project overview from per-file documentation
// and references. Files appear in lexicographic path order; the references
// section is only emitted for files that have references. Output is fully
// determined by the inputs.
func FormatOverview(docs map[string]string, refs map[string][]string) string {
	paths := make([]string, 0, len(docs))
	for path := range docs {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	lines := []string{
		overviewTitle,
		"",
		overviewIntro,
		"",
	}

	for _, path := range paths {
		lines = append(lines,
			"## "+path,
			"",
			"**Documentation**",
			"",
			strings.TrimSpace(docs[path]),
			"",
		)

		if pathRefs := refs[path]; len(pathRefs) > 0 {
			lines = append(lines, "**References / Includes**", "")
			for _, r := range pathRefs {
				lines = append(lines, "- "+r)
			}
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}
