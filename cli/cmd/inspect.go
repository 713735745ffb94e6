package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"pipelines.software/component-model/cli/internal/flags/enum"
	v1 "pipelines.software/component-model/spec/v1"
)

// NewInspectCmd renders the interface of a component: its inputs, outputs
// and container image.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the interface of a component specification",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	enum.Var(cmd.Flags(), "output", []string{"table", "yaml", "json"},
		"output format of the component interface")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	output, err := enum.Get(cmd.Flags(), "output")
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var spec v1.ComponentSpec
	if err := v1.Decode(data, &spec); err != nil {
		return err
	}

	var rendered []byte
	switch output {
	case "table":
		rendered = encodeSpecAsTable(&spec)
	case "yaml":
		rendered, err = v1.NewCodec().EncodeYAML(&spec)
	case "json":
		rendered, err = v1.Encode(&spec)
		rendered = append(rendered, '\n')
	default:
		err = fmt.Errorf("unknown output format: %q", output)
	}
	if err != nil {
		return fmt.Errorf("encoding component spec as %q failed: %w", output, err)
	}

	_, err = cmd.OutOrStdout().Write(rendered)
	return err
}

func encodeSpecAsTable(spec *v1.ComponentSpec) []byte {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, spec.String())
	if spec.Description != "" {
		fmt.Fprintln(&buf, spec.Description)
	}
	if spec.Implementation != nil && spec.Implementation.Container != nil {
		fmt.Fprintf(&buf, "image: %s\n", spec.Implementation.Container.Container.Image)
	}

	if len(spec.Inputs) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(&buf)
		t.SetTitle("Inputs")
		t.AppendHeader(table.Row{"Name", "Type", "Default", "Optional", "Description"})
		for _, in := range spec.Inputs {
			t.AppendRow(table.Row{in.Name, stringOrEmpty(in.Type), stringOrEmpty(in.Default), in.Optional, in.Description})
		}
		t.Render()
	}

	if len(spec.Outputs) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(&buf)
		t.SetTitle("Outputs")
		t.AppendHeader(table.Row{"Name", "Type", "Description"})
		for _, out := range spec.Outputs {
			t.AppendRow(table.Row{out.Name, stringOrEmpty(out.Type), out.Description})
		}
		t.Render()
	}

	return buf.Bytes()
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
