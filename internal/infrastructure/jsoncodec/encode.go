package jsoncodec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

const indent = "  "

var (
	doubleEscaped = []byte(`\\u`)
	singleEscaped = []byte(`\u`)
)

// Encoder writes flat outputs as indented JSON.
type Encoder struct{}

// NewEncoder creates an Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeFlat renders out with two-space indentation. Text already escaped to
// \uXXXX by the serializer is emitted as a real JSON unicode escape rather
// than a literal backslash. <, > and & are written as-is.
func (e *Encoder) EncodeFlat(out *entity.FlatOutput) ([]byte, error) {
	if out == nil {
		out = entity.NewFlatOutput()
	}
	w := newCompactWriter()
	if err := w.object(out.Keys(), out.Get); err != nil {
		return nil, fmt.Errorf("failed to marshal flat output: %w", err)
	}
	pretty, err := indentJSON(w.buf.Bytes())
	if err != nil {
		return nil, err
	}
	return bytes.ReplaceAll(pretty, doubleEscaped, singleEscaped), nil
}

// EncodeConfiguration renders the hierarchical configuration as indented JSON.
func EncodeConfiguration(cfg *entity.Configuration) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil configuration", entity.ErrMalformedConfiguration)
	}
	w := newCompactWriter()
	w.buf.WriteByte('{')
	for i, category := range cfg.Categories() {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		if err := w.scalar(category.Name()); err != nil {
			return nil, fmt.Errorf("failed to marshal configuration: %w", err)
		}
		w.buf.WriteByte(':')
		if err := w.object(category.Keys(), category.Get); err != nil {
			return nil, fmt.Errorf("failed to marshal configuration: %w", err)
		}
	}
	w.buf.WriteByte('}')
	return indentJSON(w.buf.Bytes())
}

func indentJSON(compact []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", indent); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// compactWriter builds compact JSON in key order with HTML escaping off.
// The ordered map's own MarshalJSON always escapes <, > and &.
type compactWriter struct {
	buf     bytes.Buffer
	scratch bytes.Buffer
	enc     *json.Encoder
}

func newCompactWriter() *compactWriter {
	w := &compactWriter{}
	w.enc = json.NewEncoder(&w.scratch)
	w.enc.SetEscapeHTML(false)
	return w
}

func (w *compactWriter) scalar(v any) error {
	w.scratch.Reset()
	if err := w.enc.Encode(v); err != nil {
		return err
	}
	w.buf.Write(bytes.TrimSuffix(w.scratch.Bytes(), []byte("\n")))
	return nil
}

func (w *compactWriter) object(keys []string, get func(string) (entity.Value, bool)) error {
	w.buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		if err := w.scalar(key); err != nil {
			return err
		}
		w.buf.WriteByte(':')
		v, _ := get(key)
		if err := w.value(v); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
	}
	w.buf.WriteByte('}')
	return nil
}

func (w *compactWriter) value(v entity.Value) error {
	switch t := v.(type) {
	case nil, entity.Null:
		w.buf.WriteString("null")
	case entity.Bool:
		return w.scalar(bool(t))
	case entity.Number:
		return w.scalar(float64(t))
	case entity.Text:
		return w.scalar(string(t))
	case entity.Sequence:
		w.buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			if err := w.value(item); err != nil {
				return err
			}
		}
		w.buf.WriteByte(']')
	case *entity.Record:
		if t == nil {
			w.buf.WriteString("null")
			return nil
		}
		return w.object(t.Keys(), t.Get)
	default:
		return fmt.Errorf("unsupported value %T", v)
	}
	return nil
}
