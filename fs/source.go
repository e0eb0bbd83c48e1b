// Package fs provides file-based project discovery and artifact storage.
package fs

import (
	"bytes"
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/razorgen"
)

// sniffLen is the number of leading bytes inspected to classify a file.
const sniffLen = 8000

// Ensure ProjectSource implements razorgen.ProjectSource at compile time.
var _ razorgen.ProjectSource = (*ProjectSource)(nil)

// ProjectSource discovers Pinegrow projects below a root directory.
type ProjectSource struct {
	root string
}

// NewProjectSource creates a new ProjectSource rooted at root.
func NewProjectSource(root string) *ProjectSource {
	return &ProjectSource{root: root}
}

// FindProjects returns every directory below the root holding a
// pinegrow.json file, sorted.
func (s *ProjectSource) FindProjects(ctx context.Context) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(s.root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == razorgen.ProjectMarker {
			dirs = append(dirs, filepath.Dir(path))
		}
		return nil
	})
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, razorgen.Errorf(razorgen.ENOTFOUND, "root directory %q not found", s.root)
	}
	if err != nil {
		return nil, err
	}

	sort.Strings(dirs)
	return dirs, nil
}

// FindFiles returns every .html file below projectDir in lexical order,
// classified as text or binary. Entries that cannot be opened, such as
// dangling symlinks, are reported as unreadable.
func (s *ProjectSource) FindFiles(ctx context.Context, projectDir string) ([]*razorgen.SourceFile, error) {
	var files []*razorgen.SourceFile
	err := filepath.WalkDir(projectDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".html") {
			return nil
		}

		kind, err := classify(path)
		if err != nil {
			kind = razorgen.FileKindUnreadable
		}
		files = append(files, &razorgen.SourceFile{Path: path, Kind: kind})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ReadFile returns the content of a text file.
func (s *ProjectSource) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return "", razorgen.Errorf(razorgen.ENOTFOUND, "file %q not found", path)
	}
	if err != nil {
		return "", razorgen.Errorf(razorgen.EINVALID, "file %q is unreadable: %v", path, err)
	}
	if isBinary(data) {
		return "", razorgen.Errorf(razorgen.EINVALID, "file %q is not text", path)
	}
	return string(data), nil
}

// classify inspects the head of the file at path.
func classify(path string) (razorgen.FileKind, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}

	head := buf[:n]
	if n == sniffLen {
		// A rune cut at the buffer end is not invalid content.
		head = trimPartialRune(head)
	}
	if isBinary(head) {
		return razorgen.FileKindBinary, nil
	}
	return razorgen.FileKindText, nil
}

// trimPartialRune drops an incomplete UTF-8 sequence at the end of b.
func trimPartialRune(b []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		if utf8.RuneStart(b[len(b)-i]) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}
			break
		}
	}
	return b
}

func isBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data)
}
