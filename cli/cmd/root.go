// Package cmd assembles the componentspec command line client. It works
// with pipeline component specification documents: validating, inspecting,
// resolving and digesting them.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pipelines.software/component-model/cli/internal/flags/log"
)

// New builds the base command with all subcommands attached.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "componentspec [sub-command]",
		Short: "Work with pipeline component specifications",
		Long: `The componentspec command line client works with pipeline component
specification documents: single reusable pipeline steps with declared
inputs, outputs and a container-based implementation.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := log.GetBaseLogger(cmd)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		DisableAutoGenTag: true,
	}

	log.RegisterLoggingFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewResolveCmd())
	cmd.AddCommand(NewDigestCmd())
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewListCmd())

	return cmd
}

// Execute runs the base command. This is called by main.main().
func Execute() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}
