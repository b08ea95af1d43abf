package srcdoc

import (
	"regexp"
	"strings"
)

// Whitespace also covers vertical tab and Unicode separators such as U+00A0,
// which RE2's \s does not.
var (
	phpIncludeRe = regexp.MustCompile(`(include|require)(_once)?[\s\v\p{Z}]*\(?['"]([^'"]+)['"]\)?`)
	sqlIncludeRe = regexp.MustCompile(`\\i[\s\v\p{Z}]+([^;\s\v\p{Z}]+)`)
)

// ScanReferences extracts include/require style references from content.
//
// PHP files yield the quoted argument of every include, include_once,
// require and require_once. SQL files yield the argument of every psql \i
// directive. Other file types have no recognised reference syntax and yield
// an empty list. References are returned in order of appearance with
// duplicates preserved; they are not resolved against the filesystem.
func ScanReferences(path, content string) []string {
	refs := []string{}

	switch strings.ToLower(Ext(path)) {
	case ".php":
		for _, m := range phpIncludeRe.FindAllStringSubmatch(content, -1) {
			refs = append(refs, m[3])
		}
	case ".sql":
		for _, m := range sqlIncludeRe.FindAllStringSubmatch(content, -1) {
			refs = append(refs, m[1])
		}
	}

	return refs
}
