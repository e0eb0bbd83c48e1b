package razorgen

import (
	"context"
	"path/filepath"
	"strings"
)

// Document is one discovered source file of a Pinegrow project.
type Document struct {
	Path       string `json:"path"`
	ProjectDir string `json:"projectDir"`
	Content    string `json:"content"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	if d.ProjectDir == "" {
		return Errorf(EINVALID, "document project directory required")
	}
	return nil
}

// RelPath returns the document path relative to its project directory,
// using forward slashes.
func (d *Document) RelPath() (string, error) {
	rel, err := filepath.Rel(d.ProjectDir, d.Path)
	if err != nil {
		return "", Errorf(EINVALID, "document %q is outside project %q", d.Path, d.ProjectDir)
	}
	return filepath.ToSlash(rel), nil
}

// Route derives the page route from the document path.
// Example: about-us/OurTeam.html → /about-us/our-team
func (d *Document) Route() (string, error) {
	rel, err := d.RelPath()
	if err != nil {
		return "", err
	}

	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	parts := strings.Split(strings.Trim(rel, "/"), "/")
	for i, part := range parts {
		parts[i] = Kebaberize(part)
	}
	return "/" + strings.Join(parts, "/"), nil
}

// OutputPath returns the template path for the document under baseDir.
// The directory structure is kept and the file name is pascalized.
// Example: about-us/team.html → {baseDir}/about-us/Team.razor
func (d *Document) OutputPath(baseDir string) (string, error) {
	rel, err := d.RelPath()
	if err != nil {
		return "", err
	}

	dir, file := filepath.Split(filepath.FromSlash(rel))
	base := strings.TrimSuffix(file, filepath.Ext(file))
	return filepath.Join(baseDir, dir, Pascalize(base)+TemplateExt), nil
}

// FileKind classifies the content of a source file.
type FileKind string

// FileKind constants for SourceFile.
const (
	FileKindText       FileKind = "text"
	FileKindBinary     FileKind = "binary"
	FileKindUnreadable FileKind = "unreadable"
)

// SourceFile describes a file discovered inside a project.
type SourceFile struct {
	Path string   `json:"path"`
	Kind FileKind `json:"kind"`
}

// ProjectSource discovers Pinegrow projects and reads their files.
type ProjectSource interface {
	// FindProjects returns the directories containing a ProjectMarker file.
	FindProjects(ctx context.Context) ([]string, error)

	// FindFiles returns every HTML file below the project directory.
	FindFiles(ctx context.Context, projectDir string) ([]*SourceFile, error)

	// ReadFile returns the text content of a file.
	// Returns EINVALID if the file is binary.
	ReadFile(ctx context.Context, path string) (string, error)
}
