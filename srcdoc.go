// Package srcdoc generates documentation pages for source files in a local
// directory tree. It walks the tree, asks a text-generation service to
// document each matching file, writes each page next to its source, and
// assembles an aggregated project overview with the include/require
// references found in the files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, openai/, gemini/, goldmark/).
package srcdoc
