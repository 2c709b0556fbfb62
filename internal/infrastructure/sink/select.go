package sink

import (
	"context"

	"github.com/bnema/clonecfg/internal/application/port"
	"github.com/bnema/clonecfg/internal/logging"
)

// Select returns the bridge sink when bridgeCommand resolves, else a file sink in dir.
func Select(ctx context.Context, bridgeCommand, dir string) port.ConfigSink {
	if bridgeCommand != "" {
		bridge, err := NewBridgeSink(bridgeCommand)
		if err == nil {
			return bridge
		}
		logging.FromContext(ctx).Warn().Err(err).Msg("bridge unavailable, writing to file")
	}
	return NewFileSink(dir)
}
