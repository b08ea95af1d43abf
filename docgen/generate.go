// Package docgen orchestrates documentation generation for a source tree.
// It coordinates walking, filtering, reading, generation, reference
// scanning and writing of per-file pages and the project overview.
package docgen

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/srcdoc"
)

// Generator documents every matching file under Config.Root, one at a time.
type Generator struct {
	Walker    srcdoc.FileWalker
	Reader    srcdoc.FileReader
	Provider  srcdoc.Provider
	Writer    srcdoc.DocWriter
	Overviews srcdoc.OverviewWriter

	// Renderer is used to write an HTML copy of the overview when
	// Config.HTML is set. Optional.
	Renderer srcdoc.Renderer

	Config *srcdoc.Config
}

// Result holds the outcome of a generation run.
type Result struct {
	// Files holds one result per relevant file, in processing order.
	Files []*srcdoc.FileResult

	// OverviewPath is empty when the run ended early without relevant files.
	OverviewPath string
	HTMLPath     string
}

// Succeeded returns the results of files that were documented.
func (r *Result) Succeeded() []*srcdoc.FileResult {
	var out []*srcdoc.FileResult
	for _, f := range r.Files {
		if f.OK() {
			out = append(out, f)
		}
	}
	return out
}

// Failed returns the results of files that were skipped because of an error.
func (r *Result) Failed() []*srcdoc.FileResult {
	var out []*srcdoc.FileResult
	for _, f := range r.Files {
		if !f.OK() {
			out = append(out, f)
		}
	}
	return out
}

// Docs maps each successfully documented path to its documentation.
func (r *Result) Docs() map[string]string {
	docs := make(map[string]string)
	for _, f := range r.Succeeded() {
		docs[f.Path] = f.Documentation
	}
	return docs
}

// References maps each successfully documented path to its references.
func (r *Result) References() map[string][]string {
	refs := make(map[string][]string)
	for _, f := range r.Succeeded() {
		refs[f.Path] = f.References
	}
	return refs
}

// ProgressEvent reports progress during a generation run.
type ProgressEvent struct {
	Type       ProgressType
	Path       string
	OutputPath string
	Total      int
	Count      int
	Error      error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressWalking ProgressType = iota
	ProgressFound
	ProgressFileStarted
	ProgressFileRead
	ProgressFileDocumented
	ProgressFileReferences
	ProgressFileSaved
	ProgressFileFailed
	ProgressAssembling
	ProgressOverviewSaved
	ProgressDone
)

// ProgressFunc is a callback for reporting generation progress.
type ProgressFunc func(event ProgressEvent)

// RelevantFiles walks Config.Root and returns the files whose extension is
// allow-listed. A traversal error is returned as-is.
func (g *Generator) RelevantFiles(ctx context.Context) ([]string, error) {
	paths, err := g.Walker.Walk(ctx, g.Config.Root)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", g.Config.Root, err)
	}
	return srcdoc.FilterByExtension(paths, g.Config.Extensions), nil
}

// Generate documents every relevant file and writes the overview.
// Per-file failures are recorded in the result and do not stop the run.
// Traversal errors, cancellation and overview write errors are returned.
// When no relevant file exists the result is empty and nothing is written.
func (g *Generator) Generate(ctx context.Context, progress ProgressFunc) (*Result, error) {
	report := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}

	report(ProgressEvent{Type: ProgressWalking})
	files, err := g.RelevantFiles(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	if len(files) == 0 {
		return result, nil
	}
	report(ProgressEvent{Type: ProgressFound, Total: len(files)})

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Files = append(result.Files, g.ProcessFile(ctx, path, report))
	}

	report(ProgressEvent{Type: ProgressAssembling, Total: len(files), Count: len(result.Succeeded())})
	overview := srcdoc.FormatOverview(result.Docs(), result.References())
	overviewPath := filepath.Join(g.Config.Root, g.Config.OverviewFilename)
	if err := g.Overviews.WriteOverview(ctx, overviewPath, overview); err != nil {
		return result, fmt.Errorf("write overview: %w", err)
	}
	result.OverviewPath = overviewPath
	report(ProgressEvent{Type: ProgressOverviewSaved, OutputPath: overviewPath})

	if g.Config.HTML && g.Renderer != nil {
		html, err := g.Renderer.Render(overview)
		if err != nil {
			return result, fmt.Errorf("render overview: %w", err)
		}
		htmlPath := strings.TrimSuffix(overviewPath, filepath.Ext(overviewPath)) + ".html"
		if err := g.Overviews.WriteOverview(ctx, htmlPath, html); err != nil {
			return result, fmt.Errorf("write html overview: %w", err)
		}
		result.HTMLPath = htmlPath
		report(ProgressEvent{Type: ProgressOverviewSaved, OutputPath: htmlPath})
	}

	report(ProgressEvent{Type: ProgressDone, Total: len(files), Count: len(result.Succeeded())})
	return result, nil
}

// ProcessFile reads, documents, scans and writes a single file. Any error
// is captured in the returned result rather than returned.
func (g *Generator) ProcessFile(ctx context.Context, path string, progress ProgressFunc) *srcdoc.FileResult {
	report := func(event ProgressEvent) {
		event.Path = path
		if progress != nil {
			progress(event)
		}
	}

	result := &srcdoc.FileResult{Path: path}
	fail := func(err error) *srcdoc.FileResult {
		result.Err = err
		report(ProgressEvent{Type: ProgressFileFailed, Error: err})
		return result
	}

	report(ProgressEvent{Type: ProgressFileStarted})

	content, err := g.Reader.ReadFile(ctx, path)
	if err != nil {
		return fail(err)
	}
	report(ProgressEvent{Type: ProgressFileRead})

	doc, err := g.Provider.Complete(ctx, srcdoc.BuildPrompt(path, content))
	if err != nil {
		return fail(err)
	}
	result.Documentation = doc
	report(ProgressEvent{Type: ProgressFileDocumented})

	result.References = srcdoc.ScanReferences(path, content)
	report(ProgressEvent{Type: ProgressFileReferences, Count: len(result.References)})

	outPath, err := g.Writer.WriteDoc(ctx, path, doc)
	if err != nil {
		return fail(err)
	}
	result.OutputPath = outPath
	report(ProgressEvent{Type: ProgressFileSaved, OutputPath: outPath})

	return result
}
