package main

import "fmt"

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	files, err := deps.Generator.RelevantFiles(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(deps.Stdout, "No relevant files found for processing.")
		return nil
	}

	for _, f := range files {
		fmt.Fprintln(deps.Stdout, f)
	}
	return nil
}
