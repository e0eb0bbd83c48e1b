package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/razorgen"
	"github.com/fwojciec/razorgen/fs"
	"github.com/fwojciec/razorgen/generate"
	"github.com/fwojciec/razorgen/razor"
	rzslog "github.com/fwojciec/razorgen/slog"
	"github.com/fwojciec/razorgen/yaml"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	cfg, err := c.config(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", razorgen.ErrorMessage(err))
		return err
	}

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	var store razorgen.ArtifactStore = fs.NewFileStore(deps.resolve(c.Out))
	if c.DryRun {
		store = &previewStore{w: deps.Stdout}
	}

	g := &generate.Generator{
		Source:    fs.NewProjectSource(deps.resolve(c.Root)),
		Converter: rzslog.NewLoggingConverter(razor.NewConverter(cfg, logger), logger),
		Store:     rzslog.NewLoggingArtifactStore(store, logger),
		Logger:    logger,
	}

	result, err := g.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	verb := "Generated"
	if c.DryRun {
		verb = "Would generate"
	}
	fmt.Fprintf(deps.Stdout, "%s %d templates from %d documents in %d projects (%d skipped)\n",
		verb, result.Artifacts, result.Documents, result.Projects, result.Skipped)
	return nil
}

// config loads the configuration file and applies the command-line overrides.
// Without --config, razorgen.yaml is used when present.
func (c *GenerateCmd) config(deps *Dependencies) (razorgen.Config, error) {
	cfg := razorgen.DefaultConfig()

	path := c.Config
	if path == "" {
		path = yaml.DefaultPath
	}
	loaded, err := yaml.LoadConfig(deps.resolve(path))
	switch {
	case err == nil:
		cfg = loaded
	case c.Config == "" && razorgen.ErrorCode(err) == razorgen.ENOTFOUND:
		// optional
	default:
		return razorgen.Config{}, err
	}

	if c.ComponentDir != "" {
		cfg.ComponentDirectory = c.ComponentDir
	}
	if c.PageDir != "" {
		cfg.PageDirectory = c.PageDir
	}
	if c.Partials {
		cfg.TreatPartialsAsComponents = true
	}
	if c.Layout != "" {
		cfg.Layout = c.Layout
	}
	if c.NoLayout {
		cfg.Layout = ""
	}
	if c.CarryDefaults {
		cfg.CarryDefaults = true
	}

	if err := cfg.Validate(); err != nil {
		return razorgen.Config{}, err
	}
	return cfg, nil
}

// previewStore prints artifact paths instead of writing them.
type previewStore struct {
	w io.Writer
}

func (s *previewStore) Save(_ context.Context, artifact *razorgen.Artifact) error {
	if err := artifact.Validate(); err != nil {
		return err
	}
	fmt.Fprintln(s.w, artifact.Path)
	return nil
}

func (s *previewStore) Commit() error { return nil }

func (s *previewStore) Abort() error { return nil }
