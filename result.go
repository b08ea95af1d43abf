package srcdoc

// FileResult is the outcome of documenting a single source file.
// A failed result carries the path and the error; fields populated before
// the failure are kept for inspection but the file takes no part in the
// overview.
type FileResult struct {
	Path          string   `json:"path"`
	Documentation string   `json:"documentation,omitempty"`
	References    []string `json:"references,omitempty"`
	OutputPath    string   `json:"outputPath,omitempty"`
	Err           error    `json:"-"`
}

// OK reports whether the file was documented and written successfully.
func (r *FileResult) OK() bool {
	return r.Err == nil
}
