package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/razorgen"
)

// StageDir is the name of the staging directory created below the base
// directory of a FileStore.
const StageDir = ".razorgen.tmp"

// Ensure FileStore implements razorgen.ArtifactStore at compile time.
var _ razorgen.ArtifactStore = (*FileStore)(nil)

// FileStore implements razorgen.ArtifactStore with atomic update semantics.
// Artifacts are saved to a staging directory, then each file is renamed into
// place on Commit. Files already present under baseDir and not regenerated
// are left untouched.
type FileStore struct {
	baseDir string
	staged  []string
	seen    map[string]bool
}

// NewFileStore creates a new FileStore writing below baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		seen:    make(map[string]bool),
	}
}

func (s *FileStore) stageDir() string {
	return filepath.Join(s.baseDir, StageDir)
}

// Save writes the artifact to the staging directory. A later save of the
// same path replaces the earlier content.
func (s *FileStore) Save(ctx context.Context, artifact *razorgen.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := artifact.Validate(); err != nil {
		return err
	}

	rel := filepath.Clean(artifact.Path)
	if !filepath.IsLocal(rel) {
		return razorgen.Errorf(razorgen.EINVALID, "artifact path %q escapes output directory (path traversal)", artifact.Path)
	}

	fullPath := filepath.Join(s.stageDir(), rel)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	if err := os.WriteFile(fullPath, []byte(artifact.Content), 0644); err != nil {
		return fmt.Errorf("stage %s: %w", rel, err)
	}

	if !s.seen[rel] {
		s.seen[rel] = true
		s.staged = append(s.staged, rel)
	}
	return nil
}

// Commit moves every staged file to its final location and removes the
// staging directory.
func (s *FileStore) Commit() error {
	for _, rel := range s.staged {
		finalPath := filepath.Join(s.baseDir, rel)
		if err := os.MkdirAll(filepath.Dir(finalPath), 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := os.Rename(filepath.Join(s.stageDir(), rel), finalPath); err != nil {
			return fmt.Errorf("commit %s: %w", rel, err)
		}
	}
	s.reset()
	return os.RemoveAll(s.stageDir())
}

// Abort discards every staged file.
func (s *FileStore) Abort() error {
	s.reset()
	return os.RemoveAll(s.stageDir())
}

func (s *FileStore) reset() {
	s.staged = nil
	s.seen = make(map[string]bool)
}
