package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	v1 "pipelines.software/component-model/spec/v1"
)

// NewValidateCmd validates one or more component specification documents,
// structurally and semantically. Files are processed concurrently; every
// violation of every file is reported before the command fails.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate component specification documents",
		Long: `Validate one or more component specification documents.

Each document is decoded and checked against the semantic invariants of
the format. With --strict, documents carrying fields the schema does not
know are rejected as well.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}
	cmd.Flags().Bool("strict", false, "reject documents containing unknown fields")
	cmd.Flags().Int("concurrency", 4, "number of files validated in parallel")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return err
	}
	concurrency, err := cmd.Flags().GetInt("concurrency")
	if err != nil {
		return err
	}

	opts := []v1.CodecOption{}
	if strict {
		opts = append(opts, v1.WithStrict())
	}
	codec := v1.NewCodec(opts...)

	var mu sync.Mutex
	failed := 0

	group, _ := errgroup.WithContext(cmd.Context())
	group.SetLimit(concurrency)
	for _, file := range args {
		file := file
		group.Go(func() error {
			err := validateFile(codec, file)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "%s: INVALID\n%v\n", file, err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", file)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}
	return nil
}

func validateFile(codec *v1.Codec, file string) error {
	slog.Debug("validating component spec", slog.String("file", file))

	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var spec v1.ComponentSpec
	if err := codec.Decode(data, &spec); err != nil {
		return err
	}

	return spec.Validate()
}
