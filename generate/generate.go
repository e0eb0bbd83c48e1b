// Package generate runs a batch conversion: it discovers Pinegrow projects,
// converts every HTML file and stores the resulting templates atomically.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/razorgen"
)

// Generator converts every document of every discovered project.
type Generator struct {
	Source    razorgen.ProjectSource
	Converter razorgen.Converter
	Store     razorgen.ArtifactStore
	Logger    *slog.Logger
}

// Result holds the outcome of a run.
type Result struct {
	Projects  int
	Documents int
	Artifacts int
	Skipped   int
}

// Run processes the documents one after another. Documents that cannot be
// read or parsed are logged and skipped. Any other failure, cancellation
// included, aborts the store and returns the error; nothing is persisted
// unless every document was processed and the store committed.
func (g *Generator) Run(ctx context.Context) (result *Result, err error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	defer func() {
		if err == nil {
			return
		}
		if abortErr := g.Store.Abort(); abortErr != nil {
			err = errors.Join(err, fmt.Errorf("abort: %w", abortErr))
		}
	}()

	projects, err := g.Source.FindProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("discover projects: %w", err)
	}

	result = &Result{Projects: len(projects)}
	if len(projects) == 0 {
		logger.Warn("no projects found", "marker", razorgen.ProjectMarker)
	}

	written := make(map[string]string)
	for _, dir := range projects {
		files, err := g.Source.FindFiles(ctx, dir)
		if err != nil {
			return nil, fmt.Errorf("discover files in %s: %w", dir, err)
		}
		logger.Info("processing project", "dir", dir, "files", len(files))

		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			switch file.Kind {
			case razorgen.FileKindBinary:
				logger.Warn("skipping binary file", "input", file.Path)
				result.Skipped++
				continue
			case razorgen.FileKindUnreadable:
				logger.Warn("skipping unreadable file", "input", file.Path)
				result.Skipped++
				continue
			}

			artifacts, err := g.convert(ctx, dir, file.Path)
			if isSkippable(err) {
				logger.Warn("skipping document", "input", file.Path, "err", razorgen.ErrorMessage(err))
				result.Skipped++
				continue
			} else if err != nil {
				return nil, fmt.Errorf("convert %s: %w", file.Path, err)
			}
			result.Documents++

			for _, artifact := range artifacts {
				if prev, ok := written[artifact.Path]; ok {
					logger.Warn("overwriting artifact", "output", artifact.Path, "previous", prev, "input", file.Path)
				}
				written[artifact.Path] = file.Path

				if err := g.Store.Save(ctx, artifact); err != nil {
					return nil, fmt.Errorf("save %s: %w", artifact.Path, err)
				}
				result.Artifacts++
			}
		}
	}

	if err := g.Store.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return result, nil
}

func (g *Generator) convert(ctx context.Context, dir, path string) ([]*razorgen.Artifact, error) {
	content, err := g.Source.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return g.Converter.Convert(&razorgen.Document{
		Path:       path,
		ProjectDir: dir,
		Content:    content,
	})
}

// isSkippable reports whether err only affects the current document.
func isSkippable(err error) bool {
	switch razorgen.ErrorCode(err) {
	case razorgen.EINVALID, razorgen.ENOTFOUND:
		return true
	}
	return false
}
