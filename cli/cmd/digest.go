package cmd

import (
	"fmt"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/spf13/cobra"

	"pipelines.software/component-model/normalisation"
	v1 "pipelines.software/component-model/spec/v1"
)

// NewDigestCmd prints the content digest of a component specification. The
// digest is computed over the canonical form, so it is stable across map
// ordering and document formatting.
func NewDigestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest FILE",
		Short: "Print the content digest of a component specification",
		Args:  cobra.ExactArgs(1),
		RunE:  runDigest,
	}
	cmd.Flags().String("algorithm", string(normalisation.DefaultAlgorithm), "digest algorithm")
	return cmd
}

func runDigest(cmd *cobra.Command, args []string) error {
	algorithm, err := cmd.Flags().GetString("algorithm")
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

	dig, err := normalisation.DigestWithAlgorithm(digest.Algorithm(algorithm), &spec)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), dig.String())
	return nil
}
