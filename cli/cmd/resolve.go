package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pipelines.software/component-model/resolve"
	v1 "pipelines.software/component-model/spec/v1"
)

// NewResolveCmd substitutes the placeholders of a component's command and
// args with the given bindings and prints the resulting argv.
func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Resolve a component's command template into a concrete argv",
		Long: `Resolve a component's command and argument template against input and
output bindings and print the resulting argv, one entry per line.

Bindings are given as name=value pairs: --input binds input names to
values (for inputValue placeholders) or paths (for inputPath), and
--output-path binds output names to artifact paths.`,
		Args: cobra.ExactArgs(1),
		RunE: runResolve,
	}
	cmd.Flags().StringArray("input", nil, "input binding in name=value form, repeatable")
	cmd.Flags().StringArray("output-path", nil, "output path binding in name=path form, repeatable")
	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	inputPairs, err := cmd.Flags().GetStringArray("input")
	if err != nil {
		return err
	}
	outputPairs, err := cmd.Flags().GetStringArray("output-path")
	if err != nil {
		return err
	}

	inputs, err := parseBindings(inputPairs)
	if err != nil {
		return fmt.Errorf("invalid --input: %w", err)
	}
	outputs, err := parseBindings(outputPairs)
	if err != nil {
		return fmt.Errorf("invalid --output-path: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var spec v1.ComponentSpec
	if err := v1.Decode(data, &spec); err != nil {
		return err
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	argv, err := resolve.Arguments(&spec.Implementation.Container.Container, inputs, outputs)
	if err != nil {
		return err
	}

	for _, arg := range argv {
		fmt.Fprintln(cmd.OutOrStdout(), arg)
	}
	return nil
}

func parseBindings(pairs []string) (map[string]string, error) {
	bindings := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("expected name=value, got %q", pair)
		}
		bindings[name] = value
	}
	return bindings, nil
}
