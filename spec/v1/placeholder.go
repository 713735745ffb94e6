package v1

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PlaceholderKind names a variant of StringOrPlaceholder.
type PlaceholderKind string

const (
	KindConstantValue PlaceholderKind = "constantValue"
	KindInputValue    PlaceholderKind = "inputValue"
	KindInputPath     PlaceholderKind = "inputPath"
	KindOutputPath    PlaceholderKind = "outputPath"
)

// StringOrPlaceholder is one entry of a command or argument template. It is
// a tagged union: exactly one of the four variants is set at a time.
//
//   - ConstantValue: a literal string passed through unchanged.
//   - InputValue: replaced with the value of the named input.
//   - InputPath: replaced with the local path of the named input artifact.
//   - OutputPath: replaced with the path the named output artifact must be
//     written to.
//
// In documents a plain string is accepted as shorthand for a constant
// value; encoding always emits the explicit object form.
type StringOrPlaceholder struct {
	ConstantValue *string `json:"constantValue,omitempty"`
	InputValue    *string `json:"inputValue,omitempty"`
	InputPath     *string `json:"inputPath,omitempty"`
	OutputPath    *string `json:"outputPath,omitempty"`
}

// NewConstant returns a placeholder carrying a literal string.
func NewConstant(value string) StringOrPlaceholder {
	return StringOrPlaceholder{ConstantValue: &value}
}

// NewInputValue returns a placeholder for the value of the named input.
func NewInputValue(name string) StringOrPlaceholder {
	return StringOrPlaceholder{InputValue: &name}
}

// NewInputPath returns a placeholder for the path of the named input
// artifact.
func NewInputPath(name string) StringOrPlaceholder {
	return StringOrPlaceholder{InputPath: &name}
}

// NewOutputPath returns a placeholder for the path of the named output
// artifact.
func NewOutputPath(name string) StringOrPlaceholder {
	return StringOrPlaceholder{OutputPath: &name}
}

// kinds returns the names of all set variants, in declaration order.
func (s StringOrPlaceholder) kinds() []PlaceholderKind {
	var set []PlaceholderKind
	if s.ConstantValue != nil {
		set = append(set, KindConstantValue)
	}
	if s.InputValue != nil {
		set = append(set, KindInputValue)
	}
	if s.InputPath != nil {
		set = append(set, KindInputPath)
	}
	if s.OutputPath != nil {
		set = append(set, KindOutputPath)
	}
	return set
}

// Variant returns the single set variant and its payload. It fails if zero
// or more than one variant is set.
func (s StringOrPlaceholder) Variant() (PlaceholderKind, string, error) {
	set := s.kinds()
	if len(set) != 1 {
		return "", "", fmt.Errorf("exactly one placeholder variant must be set, found %d (%s)",
			len(set), joinKinds(set))
	}
	switch set[0] {
	case KindConstantValue:
		return KindConstantValue, *s.ConstantValue, nil
	case KindInputValue:
		return KindInputValue, *s.InputValue, nil
	case KindInputPath:
		return KindInputPath, *s.InputPath, nil
	default:
		return KindOutputPath, *s.OutputPath, nil
	}
}

func (s StringOrPlaceholder) String() string {
	kind, value, err := s.Variant()
	if err != nil {
		return fmt.Sprintf("<invalid placeholder: %v>", err)
	}
	if kind == KindConstantValue {
		return value
	}
	return fmt.Sprintf("{%s: %s}", kind, value)
}

func (s StringOrPlaceholder) DeepCopy() StringOrPlaceholder {
	out := StringOrPlaceholder{}
	if s.ConstantValue != nil {
		v := *s.ConstantValue
		out.ConstantValue = &v
	}
	if s.InputValue != nil {
		v := *s.InputValue
		out.InputValue = &v
	}
	if s.InputPath != nil {
		v := *s.InputPath
		out.InputPath = &v
	}
	if s.OutputPath != nil {
		v := *s.OutputPath
		out.OutputPath = &v
	}
	return out
}

// MarshalJSON emits exactly one populated variant. Zero or multiple set
// variants fail with an EncodingError.
func (s StringOrPlaceholder) MarshalJSON() ([]byte, error) {
	set := s.kinds()
	if len(set) != 1 {
		return nil, &EncodingError{
			Reason: fmt.Sprintf("exactly one placeholder variant must be set, found %d (%s)",
				len(set), joinKinds(set)),
		}
	}
	type alias StringOrPlaceholder
	return json.Marshal(alias(s))
}

// UnmarshalJSON accepts either the object form or a plain string, which is
// shorthand for a constant value. Exclusivity is not enforced here; the
// validator reports violations with their document path.
func (s *StringOrPlaceholder) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = NewConstant(str)
		return nil
	}
	type alias StringOrPlaceholder
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("could not unmarshal placeholder: %w", err)
	}
	*s = StringOrPlaceholder(a)
	return nil
}

func joinKinds(kinds []PlaceholderKind) string {
	if len(kinds) == 0 {
		return "none"
	}
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
