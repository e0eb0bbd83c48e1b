package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/razorgen"
)

// Ensure LoggingArtifactStore implements razorgen.ArtifactStore.
var _ razorgen.ArtifactStore = (*LoggingArtifactStore)(nil)

// LoggingArtifactStore wraps an ArtifactStore with logging. It counts saved
// artifacts so Commit can report them.
type LoggingArtifactStore struct {
	next   razorgen.ArtifactStore
	logger *slog.Logger
	saved  int
}

// NewLoggingArtifactStore creates a new LoggingArtifactStore.
func NewLoggingArtifactStore(next razorgen.ArtifactStore, logger *slog.Logger) *LoggingArtifactStore {
	return &LoggingArtifactStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingArtifactStore) Save(ctx context.Context, artifact *razorgen.Artifact) (err error) {
	defer func() {
		if err == nil {
			s.saved++
		}
		s.logger.Debug("save artifact",
			"path", artifact.Path,
			"bytes", len(artifact.Content),
			"err", err,
		)
	}()
	return s.next.Save(ctx, artifact)
}

// Commit delegates to the wrapped store and logs the operation.
func (s *LoggingArtifactStore) Commit() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("commit artifacts",
			"count", s.saved,
			"duration", time.Since(begin),
			"err", err,
		)
		s.saved = 0
	}(time.Now())
	return s.next.Commit()
}

// Abort delegates to the wrapped store and logs the operation.
func (s *LoggingArtifactStore) Abort() (err error) {
	defer func() {
		s.logger.Warn("abort artifacts",
			"count", s.saved,
			"err", err,
		)
		s.saved = 0
	}()
	return s.next.Abort()
}
