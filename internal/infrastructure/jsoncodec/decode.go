// Package jsoncodec reads and writes clone settings JSON without losing key order.
package jsoncodec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

// EnvelopeKey wraps the configuration in remote storage payloads.
const EnvelopeKey = "record"

// DecodeConfiguration parses a category -> key -> value document. The top
// level must be an object whose members are all objects.
func DecodeConfiguration(data []byte) (*entity.Configuration, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", entity.ErrMalformedConfiguration)
	}
	if _, typ, _, err := jsonparser.Get(data); err != nil || typ != jsonparser.Object {
		return nil, fmt.Errorf("%w: top level must be an object", entity.ErrMalformedConfiguration)
	}

	cfg := entity.NewConfiguration()
	err := jsonparser.ObjectEach(data, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		name := string(key)
		if typ != jsonparser.Object {
			return fmt.Errorf("%w: category %q is a %s, not an object",
				entity.ErrMalformedConfiguration, name, typ)
		}
		category := cfg.EnsureCategory(name)
		return jsonparser.ObjectEach(value, func(k, v []byte, t jsonparser.ValueType, _ int) error {
			setting, err := decode(v, t)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", name, string(k), err)
			}
			category.Set(string(k), setting)
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, entity.ErrMalformedConfiguration) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", entity.ErrMalformedConfiguration, err)
	}
	return cfg, nil
}

// DecodeValue parses a single JSON value.
func DecodeValue(data []byte) (entity.Value, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid JSON value %q", string(data))
	}
	value, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, err
	}
	return decode(value, typ)
}

// UnwrapEnvelope returns the object stored under EnvelopeKey, or data unchanged
// when there is no such envelope.
func UnwrapEnvelope(data []byte) []byte {
	inner, typ, _, err := jsonparser.Get(data, EnvelopeKey)
	if err != nil || typ != jsonparser.Object {
		return data
	}
	return inner
}

func decode(raw []byte, typ jsonparser.ValueType) (entity.Value, error) {
	switch typ {
	case jsonparser.Null:
		return entity.Null{}, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return nil, err
		}
		return entity.Bool(b), nil
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(raw)
		if err != nil {
			return nil, err
		}
		return entity.Number(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, err
		}
		return entity.Text(s), nil
	case jsonparser.Array:
		return decodeSequence(raw)
	case jsonparser.Object:
		return decodeRecord(raw)
	default:
		return nil, fmt.Errorf("unsupported JSON value type %s", typ)
	}
}

func decodeSequence(raw []byte) (entity.Value, error) {
	seq := entity.Sequence{}
	var firstErr error
	_, err := jsonparser.ArrayEach(raw, func(v []byte, t jsonparser.ValueType, _ int, _ error) {
		if firstErr != nil {
			return
		}
		item, err := decode(v, t)
		if err != nil {
			firstErr = fmt.Errorf("index %d: %w", len(seq), err)
			return
		}
		seq = append(seq, item)
	})
	if err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return seq, nil
}

func decodeRecord(raw []byte) (entity.Value, error) {
	rec := entity.NewRecord()
	err := jsonparser.ObjectEach(raw, func(k, v []byte, t jsonparser.ValueType, _ int) error {
		field, err := decode(v, t)
		if err != nil {
			return fmt.Errorf("field %q: %w", string(k), err)
		}
		rec.Set(string(k), field)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
