// Package resolve substitutes the placeholders of a container specification
// with concrete values to produce the process invocation a runtime can
// execute. Resolution is a pure function over the specification and the
// given bindings; it performs no I/O.
package resolve

import (
	"errors"
	"fmt"
	"maps"

	v1 "pipelines.software/component-model/spec/v1"
)

// Arguments resolves every placeholder in the container's command and args
// against the given bindings and returns the concrete argv, command first.
//
// Inputs binds input names to their values (for inputValue) or local paths
// (for inputPath); outputs binds output names to the paths their artifacts
// must be written to. A placeholder referencing an unbound name fails; all
// failures are collected and returned joined.
func Arguments(container *v1.ContainerSpec, inputs, outputs map[string]string) ([]string, error) {
	if container == nil {
		return nil, errors.New("container spec must not be nil")
	}

	argv := make([]string, 0, len(container.Command)+len(container.Args))
	var errs []error

	for i, entry := range container.Command {
		resolved, err := resolveEntry(fmt.Sprintf("command[%d]", i), entry, inputs, outputs)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		argv = append(argv, resolved)
	}
	for i, entry := range container.Args {
		resolved, err := resolveEntry(fmt.Sprintf("args[%d]", i), entry, inputs, outputs)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		argv = append(argv, resolved)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return argv, nil
}

func resolveEntry(path string, entry v1.StringOrPlaceholder, inputs, outputs map[string]string) (string, error) {
	kind, value, err := entry.Variant()
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	switch kind {
	case v1.KindConstantValue:
		return value, nil
	case v1.KindInputValue, v1.KindInputPath:
		resolved, ok := inputs[value]
		if !ok {
			return "", fmt.Errorf("%s: no binding for input %q", path, value)
		}
		return resolved, nil
	default:
		resolved, ok := outputs[value]
		if !ok {
			return "", fmt.Errorf("%s: no binding for output %q", path, value)
		}
		return resolved, nil
	}
}

// Env returns a copy of the container's environment. Environment values
// are plain strings, so resolution is a copy that callers may extend.
func Env(container *v1.ContainerSpec) map[string]string {
	if container == nil {
		return nil
	}
	return maps.Clone(container.Env)
}
