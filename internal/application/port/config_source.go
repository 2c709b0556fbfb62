package port

import (
	"context"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

// ConfigSource loads the hierarchical configuration from somewhere.
type ConfigSource interface {
	Load(ctx context.Context) (*entity.Configuration, error)

	// Location describes where the configuration comes from (path or URL).
	Location() string
}
