package v1_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "pipelines.software/component-model/spec/v1"
)

func TestPlaceholderMarshalSingleVariant(t *testing.T) {
	tests := []struct {
		name        string
		placeholder v1.StringOrPlaceholder
		expected    string
	}{
		{
			name:        "constant value",
			placeholder: v1.NewConstant("python"),
			expected:    `{"constantValue": "python"}`,
		},
		{
			name:        "input value",
			placeholder: v1.NewInputValue("epochs"),
			expected:    `{"inputValue": "epochs"}`,
		},
		{
			name:        "input path",
			placeholder: v1.NewInputPath("dataset"),
			expected:    `{"inputPath": "dataset"}`,
		},
		{
			name:        "output path",
			placeholder: v1.NewOutputPath("model"),
			expected:    `{"outputPath": "model"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.placeholder)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestPlaceholderMarshalEnforcesExclusivity(t *testing.T) {
	value := "x"

	tests := []struct {
		name        string
		placeholder v1.StringOrPlaceholder
	}{
		{
			name:        "zero variants",
			placeholder: v1.StringOrPlaceholder{},
		},
		{
			name: "two variants",
			placeholder: v1.StringOrPlaceholder{
				ConstantValue: &value,
				InputValue:    &value,
			},
		},
		{
			name: "all variants",
			placeholder: v1.StringOrPlaceholder{
				ConstantValue: &value,
				InputValue:    &value,
				InputPath:     &value,
				OutputPath:    &value,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := json.Marshal(tt.placeholder)
			require.Error(t, err)

			var encErr *v1.EncodingError
			require.ErrorAs(t, err, &encErr)
			assert.Contains(t, encErr.Reason, "exactly one placeholder variant")
		})
	}
}

func TestPlaceholderUnmarshalStringShorthand(t *testing.T) {
	var p v1.StringOrPlaceholder
	require.NoError(t, json.Unmarshal([]byte(`"python"`), &p))

	kind, value, err := p.Variant()
	require.NoError(t, err)
	assert.Equal(t, v1.KindConstantValue, kind)
	assert.Equal(t, "python", value)
}

func TestPlaceholderUnmarshalObjectForm(t *testing.T) {
	var p v1.StringOrPlaceholder
	require.NoError(t, json.Unmarshal([]byte(`{"inputPath": "data"}`), &p))

	kind, value, err := p.Variant()
	require.NoError(t, err)
	assert.Equal(t, v1.KindInputPath, kind)
	assert.Equal(t, "data", value)
}

func TestPlaceholderVariantFailsOnAmbiguity(t *testing.T) {
	var p v1.StringOrPlaceholder
	require.NoError(t, json.Unmarshal([]byte(`{"inputValue": "a", "outputPath": "b"}`), &p))

	_, _, err := p.Variant()
	require.ErrorContains(t, err, "exactly one placeholder variant")
}

func TestPlaceholderString(t *testing.T) {
	assert.Equal(t, "python", v1.NewConstant("python").String())
	assert.Equal(t, "{inputPath: dataset}", v1.NewInputPath("dataset").String())
}
