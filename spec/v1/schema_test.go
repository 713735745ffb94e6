package v1_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	v1 "pipelines.software/component-model/spec/v1"
)

func TestValidateRawYAML(t *testing.T) {
	require.NoError(t, v1.ValidateRawYAML([]byte(yamlData)))
}

func TestValidateRawYAMLRejectsUnknownField(t *testing.T) {
	const doc = `
name: Echo
implementation:
  container:
    image: alpine
    entrypoint: [echo]
`
	require.Error(t, v1.ValidateRawYAML([]byte(doc)))
}

func TestValidateRawYAMLRejectsMissingImplementation(t *testing.T) {
	require.Error(t, v1.ValidateRawYAML([]byte(`name: Echo`)))
}

func TestValidateRawYAMLRejectsMultiVariantPlaceholder(t *testing.T) {
	const doc = `
name: Echo
implementation:
  container:
    image: alpine
    command:
      - {inputValue: a, outputPath: b}
`
	require.Error(t, v1.ValidateRawYAML([]byte(doc)))
}

func TestValidateRawJSON(t *testing.T) {
	require.NoError(t, v1.ValidateRawJSON(
		[]byte(`{"name": "Echo", "implementation": {"container": {"image": "alpine"}}}`)))
	require.Error(t, v1.ValidateRawJSON([]byte(`{"name": 42}`)))
}

func TestValidateStructure(t *testing.T) {
	require.NoError(t, v1.ValidateStructure(trainSpec()))
}

func TestGetJSONSchemaCompiles(t *testing.T) {
	schema, err := v1.GetJSONSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}
