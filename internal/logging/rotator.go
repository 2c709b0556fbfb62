package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	logFileName    = "clonecfg.log"
	bytesPerMB     = 1024 * 1024
	rotationLayout = "2006-01-02-15-04-05"
)

// RotatorConfig controls on-disk log retention.
type RotatorConfig struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// LogRotator is an io.Writer appending to Dir/clonecfg.log and rotating the
// file once it would exceed MaxSizeMB.
type LogRotator struct {
	mu      sync.Mutex
	cfg     RotatorConfig
	file    *os.File
	size    int64
	maxSize int64
	maxAge  time.Duration
}

// NewLogRotator opens (or creates) the active log file.
func NewLogRotator(cfg RotatorConfig) (*LogRotator, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("log directory is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	r := &LogRotator{
		cfg:     cfg,
		maxSize: int64(cfg.MaxSizeMB) * bytesPerMB,
		maxAge:  time.Duration(cfg.MaxAgeDays) * 24 * time.Hour,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *LogRotator) Path() string {
	return filepath.Join(r.cfg.Dir, logFileName)
}

func (r *LogRotator) open() error {
	if info, err := os.Stat(r.Path()); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}
	file, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.maxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	r.file = nil

	backup := r.Path() + "." + time.Now().Format(rotationLayout)
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	if r.cfg.Compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress %s: %v\n", backup, err)
		} else if err := os.Remove(backup); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove %s: %v\n", backup, err)
		}
	}
	r.prune()
	return r.open()
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}

// prune drops backups older than MaxAgeDays, then the oldest beyond MaxBackups.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		return
	}

	type backup struct {
		name    string
		modTime time.Time
	}
	var backups []backup
	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), logFileName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && now.Sub(info.ModTime()) > r.maxAge {
			_ = os.Remove(filepath.Join(r.cfg.Dir, entry.Name()))
			continue
		}
		backups = append(backups, backup{name: entry.Name(), modTime: info.ModTime()})
	}

	if r.cfg.MaxBackups <= 0 || len(backups) <= r.cfg.MaxBackups {
		return
	}
	slices.SortFunc(backups, func(a, b backup) int { return a.modTime.Compare(b.modTime) })
	for _, b := range backups[:len(backups)-r.cfg.MaxBackups] {
		_ = os.Remove(filepath.Join(r.cfg.Dir, b.name))
	}
}

// Close closes the active file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
