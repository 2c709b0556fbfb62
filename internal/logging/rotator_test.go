package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotator_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, MaxSizeMB: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = r.Write([]byte("first line\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Equal(t, "first line\n", string(data))
}

func TestLogRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 3})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	chunk := []byte(strings.Repeat("x", bytesPerMB-10) + "\n")
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write([]byte("overflow\n"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "active file plus one backup")

	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, "overflow\n", string(data))
}

func TestNewLogRotator_RequiresDir(t *testing.T) {
	_, err := NewLogRotator(RotatorConfig{})
	require.Error(t, err)
}
