package main

import (
	"context"
	"io"
	"path/filepath"
)

// Dependencies holds the environment of command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
}

// resolve returns path joined to the working directory unless absolute.
func (d *Dependencies) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(d.Dir, path)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate GenerateCmd `cmd:"" default:"withargs" help:"Convert every Pinegrow project below ROOT"`
	Init     InitCmd     `cmd:"" help:"Write a default configuration file"`
}

// GenerateCmd is the "generate" subcommand, run when no command is given.
type GenerateCmd struct {
	Root          string `arg:"" optional:"" default:"." help:"Directory searched for Pinegrow projects"`
	Config        string `short:"c" placeholder:"FILE" help:"Configuration file (default: razorgen.yaml if present)"`
	Out           string `short:"o" default:"." placeholder:"DIR" help:"Directory templates are written below"`
	ComponentDir  string `name:"component-dir" placeholder:"DIR" help:"Output directory for components"`
	PageDir       string `name:"page-dir" placeholder:"DIR" help:"Output directory for pages"`
	Partials      bool   `help:"Emit documents without <html> as components"`
	Layout        string `placeholder:"NAME" help:"Layout used by generated pages"`
	NoLayout      bool   `name:"no-layout" help:"Omit the @layout directive"`
	CarryDefaults bool   `name:"carry-defaults" help:"Copy slot defaults onto component reference tags"`
	DryRun        bool   `name:"dry-run" short:"n" help:"List templates without writing them"`
	Verbose       bool   `short:"v" help:"Log every slot and artifact"`
}

// InitCmd is the "init" subcommand.
type InitCmd struct {
	Path  string `arg:"" optional:"" default:"razorgen.yaml" help:"Configuration file to create"`
	Force bool   `short:"f" help:"Overwrite an existing file"`
}
