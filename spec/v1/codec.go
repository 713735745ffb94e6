package v1

import (
	"encoding/json"
	"errors"
	"fmt"

	"sigs.k8s.io/yaml"
)

// Codec converts component specifications between their document form
// (YAML or JSON) and the in-memory representation. The zero value is a
// lenient codec: unknown fields are dropped on decode. A Codec is
// stateless and safe for concurrent use.
type Codec struct {
	strict bool
}

type CodecOption func(*Codec)

// WithStrict makes Decode reject documents that do not conform to the
// structural schema, in particular documents carrying fields the schema
// does not know.
func WithStrict() CodecOption {
	return func(c *Codec) {
		c.strict = true
	}
}

// NewCodec creates a codec. Without options it decodes leniently.
func NewCodec(opts ...CodecOption) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Decode parses a YAML or JSON document into spec. Under the strict policy
// the document is first checked against the structural schema, so an
// unknown field fails with a DecodingError naming its location; under the
// lenient policy unknown fields are ignored.
func (c *Codec) Decode(data []byte, spec *ComponentSpec) error {
	if c.strict {
		if err := ValidateRawYAML(data); err != nil {
			return &DecodingError{Err: err}
		}
	}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return &DecodingError{Err: err}
	}
	return nil
}

// Encode serializes spec to JSON. It fails with an EncodingError if the
// in-memory state violates a union invariant, e.g. a placeholder with zero
// or multiple variants set.
func (c *Codec) Encode(spec *ComponentSpec) ([]byte, error) {
	data, err := json.Marshal(spec)
	if err != nil {
		var encErr *EncodingError
		if errors.As(err, &encErr) {
			return nil, encErr
		}
		return nil, fmt.Errorf("encoding component spec: %w", err)
	}
	return data, nil
}

// EncodeYAML serializes spec to YAML, with the same guarantees as Encode.
func (c *Codec) EncodeYAML(spec *ComponentSpec) ([]byte, error) {
	data, err := c.Encode(spec)
	if err != nil {
		return nil, err
	}
	out, err := yaml.JSONToYAML(data)
	if err != nil {
		return nil, fmt.Errorf("encoding component spec as YAML: %w", err)
	}
	return out, nil
}

var defaultCodec = NewCodec()

// Decode parses a YAML or JSON document with the default lenient codec.
func Decode(data []byte, spec *ComponentSpec) error {
	return defaultCodec.Decode(data, spec)
}

// Encode serializes spec to JSON with the default codec.
func Encode(spec *ComponentSpec) ([]byte, error) {
	return defaultCodec.Encode(spec)
}
