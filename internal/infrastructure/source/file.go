// Package source provides the places a clone configuration can be loaded from.
package source

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/infrastructure/jsoncodec"
	"github.com/bnema/clonecfg/internal/logging"
)

// FileSource reads a configuration document from disk.
type FileSource struct {
	path string
}

// NewFileSource creates a source for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Location returns the file path.
func (s *FileSource) Location() string {
	return s.path
}

// Load reads and decodes the file. A {"record": ...} envelope is unwrapped.
func (s *FileSource) Load(ctx context.Context) (*entity.Configuration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	logging.FromContext(ctx).Debug().Str("path", s.path).Int("bytes", len(data)).Msg("read configuration file")
	return jsoncodec.DecodeConfiguration(jsoncodec.UnwrapEnvelope(data))
}
