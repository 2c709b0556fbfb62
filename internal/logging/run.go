package logging

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/rs/zerolog"
)

// NewRunID returns an identifier for one CLI invocation.
// Format: YYYYMMDD_HHMMSS_xxxx, e.g. 20251217_205106_a7b3.
func NewRunID() string {
	return newRunIDAt(time.Now())
}

func newRunIDAt(now time.Time) string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return now.Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// ShortRunID returns the random suffix of a run ID.
func ShortRunID(runID string) string {
	if len(runID) < 4 {
		return runID
	}
	return runID[len(runID)-4:]
}

// WithRun tags every entry of logger with the short run ID so interleaved
// runs in a shared log file can be told apart.
func WithRun(logger zerolog.Logger, runID string) zerolog.Logger {
	return logger.With().Str("run", ShortRunID(runID)).Logger()
}
