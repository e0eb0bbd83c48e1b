package mock

import (
	"context"

	"github.com/fwojciec/razorgen"
)

var _ razorgen.ProjectSource = (*ProjectSource)(nil)

// ProjectSource is a mock implementation of razorgen.ProjectSource.
type ProjectSource struct {
	FindProjectsFn func(ctx context.Context) ([]string, error)
	FindFilesFn    func(ctx context.Context, projectDir string) ([]*razorgen.SourceFile, error)
	ReadFileFn     func(ctx context.Context, path string) (string, error)
}

func (s *ProjectSource) FindProjects(ctx context.Context) ([]string, error) {
	return s.FindProjectsFn(ctx)
}

func (s *ProjectSource) FindFiles(ctx context.Context, projectDir string) ([]*razorgen.SourceFile, error) {
	return s.FindFilesFn(ctx, projectDir)
}

func (s *ProjectSource) ReadFile(ctx context.Context, path string) (string, error) {
	return s.ReadFileFn(ctx, path)
}
