package v1

import (
	"errors"
	"fmt"
)

// DecodingError reports a document that could not be turned into an
// in-memory specification: malformed input, a variant the union does not
// allow, or an unknown field under the strict policy.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding component spec: %v", e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

// EncodingError reports an in-memory state that cannot be serialized, for
// example a placeholder with zero or multiple variants set.
type EncodingError struct {
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding component spec: %s", e.Reason)
}

// ValidationError is a single semantic invariant violation. Path locates
// the offending field in the document, e.g.
// "implementation.container.command[2]".
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Reason)
	}
	return e.Reason
}

func newValidationError(path, reason string) *ValidationError {
	return &ValidationError{Path: path, Reason: reason}
}

// ValidationErrors unpacks every ValidationError carried by err, including
// those joined by errors.Join.
func ValidationErrors(err error) []*ValidationError {
	if err == nil {
		return nil
	}
	var out []*ValidationError
	var verr *ValidationError
	if errors.As(err, &verr) {
		// errors.As finds only the first entry, walk joined errors by hand
		type joined interface{ Unwrap() []error }
		if j, ok := err.(joined); ok {
			for _, e := range j.Unwrap() {
				out = append(out, ValidationErrors(e)...)
			}
			return out
		}
		return []*ValidationError{verr}
	}
	return nil
}
