package showcase

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-showcase/internal/fileutil"
)

// DocumentStore reads and writes the document holding the marker section.
type DocumentStore interface {
	ReadDocument(ctx context.Context) (string, error)
	WriteDocument(ctx context.Context, content string) error
}

// FileDocument is a DocumentStore backed by a file on disk.
// Writes replace the file atomically and keep its permissions.
type FileDocument struct {
	Path string
}

// NewFileDocument returns a FileDocument for path.
func NewFileDocument(path string) *FileDocument {
	return &FileDocument{Path: path}
}

// ReadDocument returns the full file content.
func (d *FileDocument) ReadDocument(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(d.Path) // #nosec G304 -- document path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadDocument, err)
	}
	return string(data), nil
}

// WriteDocument replaces the file with content.
func (d *FileDocument) WriteDocument(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(d.Path, []byte(content), fileutil.DefaultFilePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}
	return nil
}

var _ DocumentStore = (*FileDocument)(nil)
