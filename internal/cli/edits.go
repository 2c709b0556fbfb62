package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/infrastructure/jsoncodec"
)

// ErrBadAssignment is returned for a malformed --set value.
var ErrBadAssignment = errors.New("invalid assignment")

// Edit is one parsed --set assignment.
type Edit struct {
	Category string
	Key      string
	Value    entity.Value
}

// ParseEdit parses "category.key=<json>". A right-hand side that is not
// valid JSON is taken as a plain string, so name=Clone works unquoted.
func ParseEdit(s string) (Edit, error) {
	path, raw, ok := strings.Cut(s, "=")
	if !ok {
		return Edit{}, fmt.Errorf("%w %q: expected category.key=value", ErrBadAssignment, s)
	}
	category, key, ok := strings.Cut(strings.TrimSpace(path), ".")
	if !ok || category == "" || key == "" {
		return Edit{}, fmt.Errorf("%w %q: expected category.key on the left", ErrBadAssignment, s)
	}

	value, err := jsoncodec.DecodeValue([]byte(raw))
	if err != nil {
		value = entity.Text(raw)
	}
	return Edit{Category: category, Key: key, Value: value}, nil
}
