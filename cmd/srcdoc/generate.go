package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fwojciec/srcdoc"
	"github.com/fwojciec/srcdoc/docgen"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	failColor := color.New(color.FgRed)
	if deps.Color {
		failColor.EnableColor()
	} else {
		failColor.DisableColor()
	}

	progress := func(event docgen.ProgressEvent) {
		switch event.Type {
		case docgen.ProgressWalking:
			fmt.Fprintln(deps.Stdout, "Traversing local repository...")
		case docgen.ProgressFound:
			fmt.Fprintf(deps.Stdout, "Total relevant files found: %d\n", event.Total)
		case docgen.ProgressFileStarted:
			fmt.Fprintf(deps.Stdout, "Processing file: %s\n", event.Path)
		case docgen.ProgressFileRead:
			fmt.Fprintf(deps.Stdout, "Read content of %s successfully.\n", event.Path)
		case docgen.ProgressFileDocumented:
			fmt.Fprintf(deps.Stdout, "Generated documentation for %s.\n", event.Path)
		case docgen.ProgressFileReferences:
			fmt.Fprintf(deps.Stdout, "Found %d references in %s.\n", event.Count, event.Path)
		case docgen.ProgressFileSaved:
			fmt.Fprintf(deps.Stdout, "File saved: %s\n", event.OutputPath)
		case docgen.ProgressFileFailed:
			failColor.Fprintf(deps.Stderr, "Failed to process file %s: %s\n", event.Path, srcdoc.ErrorMessage(event.Error))
		case docgen.ProgressAssembling:
			fmt.Fprintln(deps.Stdout, "Generating overview document...")
		case docgen.ProgressOverviewSaved:
			fmt.Fprintf(deps.Stdout, "Overview saved: %s\n", event.OutputPath)
		case docgen.ProgressDone:
			fmt.Fprintf(deps.Stdout, "Processed %d files (%d failed)\n", event.Total, event.Total-event.Count)
		}
	}

	result, err := deps.Generator.Generate(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", srcdoc.ErrorMessage(err))
		return err
	}

	if result.OverviewPath == "" {
		fmt.Fprintln(deps.Stdout, "No relevant files found for processing.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, "All done.")
	return nil
}
