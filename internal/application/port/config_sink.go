package port

import "context"

// SaveRequest is a flattened payload ready to be written.
type SaveRequest struct {
	PackageName string
	SplitCount  int
	Payload     []byte
}

// ConfigSink hands a flattened payload to the host or the filesystem.
type ConfigSink interface {
	// Save writes the payload and returns where it went.
	Save(ctx context.Context, req SaveRequest) (string, error)
}
