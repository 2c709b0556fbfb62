// Package sink delivers flattened payloads to the host app or to disk.
package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bnema/clonecfg/internal/application/port"
	"github.com/bnema/clonecfg/internal/logging"
)

// ErrNoBridgeCommand is returned when the bridge command is empty.
var ErrNoBridgeCommand = errors.New("bridge command is empty")

const maxStderrInError = 512

// BridgeSink pipes the payload to an external command. The command receives
// the package name and split count as its last two arguments.
type BridgeSink struct {
	path string
	args []string
}

var _ port.ConfigSink = (*BridgeSink)(nil)

// NewBridgeSink parses command into a program and leading arguments and
// resolves the program on PATH.
func NewBridgeSink(command string) (*BridgeSink, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, ErrNoBridgeCommand
	}
	path, err := exec.LookPath(fields[0])
	if err != nil {
		return nil, fmt.Errorf("bridge command %q not found: %w", fields[0], err)
	}
	return &BridgeSink{path: path, args: fields[1:]}, nil
}

// Save runs the bridge and returns a description of the destination.
func (s *BridgeSink) Save(ctx context.Context, req port.SaveRequest) (string, error) {
	log := logging.FromContext(ctx)

	args := append(append([]string{}, s.args...), req.PackageName, strconv.Itoa(req.SplitCount))
	cmd := exec.CommandContext(ctx, s.path, args...)
	cmd.Stdin = bytes.NewReader(req.Payload)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if len(msg) > maxStderrInError {
			msg = msg[:maxStderrInError]
		}
		log.Error().Err(err).Str("bridge", s.path).Str("stderr", msg).Msg("bridge save failed")
		if msg != "" {
			return "", fmt.Errorf("bridge %s failed: %w: %s", s.path, err, msg)
		}
		return "", fmt.Errorf("bridge %s failed: %w", s.path, err)
	}

	log.Debug().
		Str("bridge", s.path).
		Str("package", req.PackageName).
		Int("split_count", req.SplitCount).
		Int("bytes", len(req.Payload)).
		Msg("payload handed to bridge")
	return "bridge:" + s.path, nil
}
