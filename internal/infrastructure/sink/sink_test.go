package sink

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clonecfg/internal/application/port"
)

func TestFileSink_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s := NewFileSink(dir)

	dest, err := s.Save(context.Background(), port.SaveRequest{
		PackageName: "com.example.app",
		SplitCount:  101,
		Payload:     []byte(`{"a": 1}`),
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "com.example.app_cloneSettings.json"), dest)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileSink_Save_StripsDirectoryFromPackage(t *testing.T) {
	dir := t.TempDir()

	dest, err := NewFileSink(dir).Save(context.Background(), port.SaveRequest{PackageName: "../evil", Payload: []byte("{}")})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "evil_cloneSettings.json"), dest)
}

func TestNewBridgeSink_Empty(t *testing.T) {
	_, err := NewBridgeSink("  ")

	require.ErrorIs(t, err, ErrNoBridgeCommand)
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("bridge scripts need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "bridge.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestBridgeSink_Save_PassesArgsAndStdin(t *testing.T) {
	out := t.TempDir()
	script := writeScript(t, `echo "$1 $2 $3" > "`+out+`/args"
cat > "`+out+`/payload"
`)

	s, err := NewBridgeSink(script + " --import")
	require.NoError(t, err)

	dest, err := s.Save(context.Background(), port.SaveRequest{
		PackageName: "com.example.app",
		SplitCount:  7,
		Payload:     []byte(`{"x":true}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "bridge:"+script, dest)

	args, err := os.ReadFile(filepath.Join(out, "args"))
	require.NoError(t, err)
	assert.Equal(t, "--import com.example.app 7\n", string(args))
	payload, err := os.ReadFile(filepath.Join(out, "payload"))
	require.NoError(t, err)
	assert.Equal(t, `{"x":true}`, string(payload))
}

func TestBridgeSink_Save_FailureIncludesStderr(t *testing.T) {
	script := writeScript(t, "echo 'device offline' >&2\nexit 3\n")

	s, err := NewBridgeSink(script)
	require.NoError(t, err)

	_, err = s.Save(context.Background(), port.SaveRequest{PackageName: "p", SplitCount: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "device offline")
}

func TestSelect(t *testing.T) {
	dir := t.TempDir()

	_, isFile := Select(context.Background(), "", dir).(*FileSink)
	assert.True(t, isFile)

	_, isFile = Select(context.Background(), "definitely-not-a-real-bridge-binary", dir).(*FileSink)
	assert.True(t, isFile, "missing bridge falls back to file")

	script := writeScript(t, "cat >/dev/null\n")
	_, isBridge := Select(context.Background(), script, dir).(*BridgeSink)
	assert.True(t, isBridge)
}
