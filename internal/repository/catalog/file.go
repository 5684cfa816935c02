package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/catalookup/internal/domain"
	domcat "github.com/kailas-cloud/catalookup/internal/domain/catalog"
)

// FileSource reads the catalog from a local JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name identifies the source in logs and metrics.
func (s *FileSource) Name() string { return "file" }

// Load reads and decodes the file.
func (s *FileSource) Load(_ context.Context) ([]domcat.Record, error) {
	data, err := os.ReadFile(filepath.Clean(s.path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, s.path)
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	records, err := DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return records, nil
}
