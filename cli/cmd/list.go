package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	v1 "pipelines.software/component-model/spec/v1"
)

// NewListCmd lists the components found in the given files, newest version
// first per component name.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE...",
		Short: "List components, newest version first per component name",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runList,
	}
}

type listEntry struct {
	file string
	spec v1.ComponentSpec
}

func runList(cmd *cobra.Command, args []string) error {
	entries := make([]listEntry, 0, len(args))
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		entry := listEntry{file: file}
		if err := v1.Decode(data, &entry.spec); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].spec.Name != entries[j].spec.Name {
			return entries[i].spec.Name < entries[j].spec.Name
		}
		return versionLess(entries[j].spec.Version, entries[i].spec.Version)
	})

	var buf bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.AppendHeader(table.Row{"Component", "Version", "Image", "File"})
	for _, entry := range entries {
		image := ""
		if entry.spec.Implementation != nil && entry.spec.Implementation.Container != nil {
			image = entry.spec.Implementation.Container.Container.Image
		}
		t.AppendRow(table.Row{entry.spec.Name, entry.spec.Version, image, entry.file})
	}
	t.Render()

	_, err := cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

// versionLess orders versions by semver when both parse, falling back to
// lexicographic comparison.
func versionLess(a, b string) bool {
	av, aerr := semver.NewVersion(a)
	bv, berr := semver.NewVersion(b)
	if aerr == nil && berr == nil {
		return av.LessThan(bv)
	}
	return a < b
}
