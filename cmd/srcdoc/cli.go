package main

import (
	"context"
	"io"

	"github.com/fwojciec/srcdoc"
	"github.com/fwojciec/srcdoc/docgen"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Color enables colored failure lines on Stderr.
	Color bool

	Generator *docgen.Generator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" help:"Path to a YAML config file" type:"path"`
	Debug  bool   `help:"Log service and filesystem calls to stderr"`

	Generate GenerateCmd `cmd:"" help:"Generate documentation pages and the project overview"`
	List     ListCmd     `cmd:"" help:"List the files that would be documented"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Root        string   `arg:"" optional:"" help:"Repository root (default ./)"`
	Ext         []string `short:"e" name:"ext" help:"File extension to document (repeatable)"`
	Overview    string   `help:"Overview file name written at the root"`
	Suffix      string   `help:"Suffix of per-file documentation pages"`
	Provider    string   `short:"p" help:"Text-generation backend (openai or gemini)"`
	Endpoint    string   `help:"Chat completions endpoint URL"`
	Model       string   `short:"m" help:"Model identifier"`
	Temperature *float64 `short:"t" help:"Sampling temperature"`
	APIKey      string   `name:"api-key" help:"Bearer credential (default from OPENAI_API_KEY or GEMINI_API_KEY)"`
	HTML        bool     `help:"Also render the overview as HTML"`
}

// Apply copies flags that were set onto cfg.
func (c *GenerateCmd) Apply(cfg *srcdoc.Config) {
	if c.Root != "" {
		cfg.Root = c.Root
	}
	if len(c.Ext) > 0 {
		cfg.Extensions = c.Ext
	}
	if c.Overview != "" {
		cfg.OverviewFilename = c.Overview
	}
	if c.Suffix != "" {
		cfg.DocSuffix = c.Suffix
	}
	if c.Provider != "" {
		cfg.Provider = c.Provider
	}
	if c.Endpoint != "" {
		cfg.Endpoint = c.Endpoint
	}
	if c.Model != "" {
		cfg.Model = c.Model
	}
	if c.Temperature != nil {
		cfg.Temperature = *c.Temperature
	}
	if c.APIKey != "" {
		cfg.APIKey = c.APIKey
	}
	if c.HTML {
		cfg.HTML = true
	}
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Root string   `arg:"" optional:"" help:"Repository root (default ./)"`
	Ext  []string `short:"e" name:"ext" help:"File extension to list (repeatable)"`
}

// Apply copies flags that were set onto cfg.
func (c *ListCmd) Apply(cfg *srcdoc.Config) {
	if c.Root != "" {
		cfg.Root = c.Root
	}
	if len(c.Ext) > 0 {
		cfg.Extensions = c.Ext
	}
}
