package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipelines.software/component-model/runtime"
)

func TestGenerateJSONSchemaForType(t *testing.T) {
	schema, err := runtime.GenerateJSONSchemaForType(&testVariant{})
	require.NoError(t, err)
	assert.Contains(t, string(schema), `"value"`)
}

func TestGenerateJSONSchemaForRawIsUnsupported(t *testing.T) {
	_, err := runtime.GenerateJSONSchemaForType(&runtime.Raw{})
	require.ErrorContains(t, err, "unsupported")
}

func TestGenerateJSONSchemaForNil(t *testing.T) {
	_, err := runtime.GenerateJSONSchemaForType(nil)
	require.Error(t, err)
}
