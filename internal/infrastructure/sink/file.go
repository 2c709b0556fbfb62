package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/clonecfg/internal/application/port"
	"github.com/bnema/clonecfg/internal/logging"
)

const (
	fileSuffix = "_cloneSettings.json"
	dirPerm    = 0o755
	filePerm   = 0o644
)

// FileSink writes payloads as <dir>/<package>_cloneSettings.json.
type FileSink struct {
	dir string
}

var _ port.ConfigSink = (*FileSink)(nil)

// NewFileSink creates a sink writing into dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

// FileName returns the output name for packageName.
func FileName(packageName string) string {
	return packageName + fileSuffix
}

// Save writes the payload atomically and returns the file path.
func (s *FileSink) Save(ctx context.Context, req port.SaveRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(s.dir, FileName(filepath.Base(req.PackageName)))
	tmp, err := os.CreateTemp(s.dir, ".clonecfg-*.json")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(req.Payload); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write payload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return "", fmt.Errorf("failed to chmod payload: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("failed to move payload into place: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Int("bytes", len(req.Payload)).Msg("payload written")
	return path, nil
}
