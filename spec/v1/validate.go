package v1

import (
	"errors"
	"fmt"
)

// Validate checks the semantic invariants of the spec that the structural
// schema cannot express. It is exhaustive: all violations are collected
// and returned joined, each as a ValidationError carrying the document
// path of the offending field.
func (s *ComponentSpec) Validate() error {
	if s == nil {
		return newValidationError("", "component spec must not be nil")
	}

	var errs []error

	if s.Name == "" {
		errs = append(errs, newValidationError("name", "must not be empty"))
	}

	inputs := map[string]int{}
	for i, in := range s.Inputs {
		path := fmt.Sprintf("inputs[%d]", i)
		if in.Name == "" {
			errs = append(errs, newValidationError(path+".name", "must not be empty"))
		}
		if first, ok := inputs[in.Name]; ok {
			errs = append(errs, newValidationError(path+".name",
				fmt.Sprintf("duplicate input name %q, already declared at inputs[%d]", in.Name, first)))
		} else {
			inputs[in.Name] = i
		}
		if in.Type != nil && *in.Type == "" {
			errs = append(errs, newValidationError(path+".type", "must not be empty when present"))
		}
	}

	outputs := map[string]int{}
	for i, out := range s.Outputs {
		path := fmt.Sprintf("outputs[%d]", i)
		if out.Name == "" {
			errs = append(errs, newValidationError(path+".name", "must not be empty"))
		}
		if first, ok := outputs[out.Name]; ok {
			errs = append(errs, newValidationError(path+".name",
				fmt.Sprintf("duplicate output name %q, already declared at outputs[%d]", out.Name, first)))
		} else {
			outputs[out.Name] = i
		}
		if out.Type != nil && *out.Type == "" {
			errs = append(errs, newValidationError(path+".type", "must not be empty when present"))
		}
	}

	errs = append(errs, s.validateImplementation(inputs, outputs)...)

	return errors.Join(errs...)
}

func (s *ComponentSpec) validateImplementation(inputs, outputs map[string]int) []error {
	impl := s.Implementation
	if impl == nil {
		return []error{newValidationError("implementation", "must be set")}
	}

	set := impl.variants()
	if len(set) != 1 {
		return []error{newValidationError("implementation",
			fmt.Sprintf("exactly one implementation variant must be set, found %d", len(set)))}
	}
	if impl.Container == nil {
		return []error{newValidationError("implementation",
			fmt.Sprintf("unsupported implementation variant %q", set[0]))}
	}

	var errs []error
	container := &impl.Container.Container

	if container.Image == "" {
		errs = append(errs, newValidationError("implementation.container.image", "must not be empty"))
	}

	errs = append(errs, validatePlaceholders("implementation.container.command", container.Command, inputs, outputs)...)
	errs = append(errs, validatePlaceholders("implementation.container.args", container.Args, inputs, outputs)...)

	for name := range container.FileOutputs {
		if _, ok := outputs[name]; !ok {
			errs = append(errs, newValidationError(
				fmt.Sprintf("implementation.container.fileOutputs[%q]", name),
				fmt.Sprintf("references undeclared output %q", name)))
		}
	}

	return errs
}

// validatePlaceholders checks the single-variant invariant for every entry
// and that each reference points at a declared input or output.
func validatePlaceholders(path string, entries []StringOrPlaceholder, inputs, outputs map[string]int) []error {
	var errs []error
	for i, entry := range entries {
		entryPath := fmt.Sprintf("%s[%d]", path, i)
		kind, value, err := entry.Variant()
		if err != nil {
			errs = append(errs, newValidationError(entryPath, err.Error()))
			continue
		}
		switch kind {
		case KindInputValue, KindInputPath:
			if _, ok := inputs[value]; !ok {
				errs = append(errs, newValidationError(entryPath,
					fmt.Sprintf("%s references undeclared input %q", kind, value)))
			}
		case KindOutputPath:
			if _, ok := outputs[value]; !ok {
				errs = append(errs, newValidationError(entryPath,
					fmt.Sprintf("%s references undeclared output %q", kind, value)))
			}
		}
	}
	return errs
}
