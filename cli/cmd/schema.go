package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pipelines.software/component-model/runtime"
	v1 "pipelines.software/component-model/spec/v1"
)

// NewSchemaCmd prints the JSON schema of the component specification
// format: by default the embedded document schema, or a schema generated
// from the Go types of a registered implementation variant.
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the component specification format",
		RunE:  runSchema,
	}
	cmd.Flags().String("variant", "", "generate the schema for a registered implementation variant instead")
	return cmd
}

func runSchema(cmd *cobra.Command, args []string) error {
	variant, err := cmd.Flags().GetString("variant")
	if err != nil {
		return err
	}

	if variant == "" {
		_, err := cmd.OutOrStdout().Write(v1.JSONSchema)
		return err
	}

	typ, err := runtime.TypeFromString(variant)
	if err != nil {
		return err
	}
	obj, err := v1.Scheme.NewObject(typ)
	if err != nil {
		return err
	}
	if _, ok := obj.(*runtime.Raw); ok {
		return fmt.Errorf("unknown implementation variant %q", variant)
	}

	schema, err := runtime.GenerateJSONSchemaForType(obj)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(schema, '\n'))
	return err
}
