package port

import "github.com/bnema/clonecfg/internal/domain/entity"

// OutputEncoder turns a flat output into the bytes written by a sink.
type OutputEncoder interface {
	EncodeFlat(out *entity.FlatOutput) ([]byte, error)
}
