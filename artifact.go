package razorgen

import "context"

// Artifact is one generated output file.
type Artifact struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Validate returns an error if the artifact contains invalid fields.
func (a *Artifact) Validate() error {
	if a.Path == "" {
		return Errorf(EINVALID, "artifact path required")
	}
	return nil
}

// ArtifactStore persists artifacts with atomic semantics.
// Save stages an artifact; Commit makes every staged artifact permanent;
// Abort discards pending artifacts.
type ArtifactStore interface {
	Save(ctx context.Context, artifact *Artifact) error
	Commit() error
	Abort() error
}
