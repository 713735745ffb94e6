// Package normalisation produces a canonical serialized form of a
// component specification and content digests over it. Two specifications
// that are value-equal normalise to the same bytes regardless of map
// ordering or document whitespace, which makes the digest usable as an
// execution-cache key or identity.
package normalisation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"github.com/opencontainers/go-digest"

	v1 "pipelines.software/component-model/spec/v1"
)

// DefaultAlgorithm is the digest algorithm used by Digest.
const DefaultAlgorithm = digest.SHA256

// Normalise returns the canonical JSON form (RFC 8785) of the spec.
func Normalise(spec *v1.ComponentSpec) ([]byte, error) {
	data, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal component spec: %w", err)
	}
	canonical, err := jsoncanonicalizer.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize component spec: %w", err)
	}
	return canonical, nil
}

// Digest computes a content digest over the canonical form of the spec
// using DefaultAlgorithm.
func Digest(spec *v1.ComponentSpec) (digest.Digest, error) {
	return DigestWithAlgorithm(DefaultAlgorithm, spec)
}

// DigestWithAlgorithm computes a content digest over the canonical form of
// the spec using the given algorithm.
func DigestWithAlgorithm(algorithm digest.Algorithm, spec *v1.ComponentSpec) (digest.Digest, error) {
	if !algorithm.Available() {
		return "", fmt.Errorf("digest algorithm %q is not available", algorithm)
	}
	canonical, err := Normalise(spec)
	if err != nil {
		return "", err
	}
	return algorithm.FromBytes(canonical), nil
}

// Equal reports whether two specs have identical canonical forms.
func Equal(a, b *v1.ComponentSpec) (bool, error) {
	canonicalA, err := Normalise(a)
	if err != nil {
		return false, err
	}
	canonicalB, err := Normalise(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(canonicalA, canonicalB), nil
}
