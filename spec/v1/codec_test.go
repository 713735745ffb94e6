package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "pipelines.software/component-model/spec/v1"
)

const yamlData = `
name: Train model
description: Trains a model on the given dataset.
version: 1.2.0
inputs:
  - name: dataset
    type: Dataset
  - name: epochs
    type: Integer
    default: "10"
    optional: true
outputs:
  - name: model
    type: Model
implementation:
  container:
    image: python:3.9
    command:
      - python
      - -m
      - trainer
      - {inputPath: dataset}
      - {inputValue: epochs}
      - {outputPath: model}
    env:
      PYTHONUNBUFFERED: "1"
    fileOutputs:
      model: /tmp/outputs/model
metadata:
  annotations:
    pipelines.software/task-group: training
`

func trainSpec() *v1.ComponentSpec {
	datasetType := "Dataset"
	integerType := "Integer"
	modelType := "Model"
	defaultEpochs := "10"
	return &v1.ComponentSpec{
		Name:        "Train model",
		Description: "Trains a model on the given dataset.",
		Version:     "1.2.0",
		Inputs: []v1.InputSpec{
			{Name: "dataset", Type: &datasetType},
			{Name: "epochs", Type: &integerType, Default: &defaultEpochs, Optional: true},
		},
		Outputs: []v1.OutputSpec{
			{Name: "model", Type: &modelType},
		},
		Implementation: &v1.ImplementationSpec{
			Container: &v1.ContainerImplementation{
				Container: v1.ContainerSpec{
					Image: "python:3.9",
					Command: []v1.StringOrPlaceholder{
						v1.NewConstant("python"),
						v1.NewConstant("-m"),
						v1.NewConstant("trainer"),
						v1.NewInputPath("dataset"),
						v1.NewInputValue("epochs"),
						v1.NewOutputPath("model"),
					},
					Env:         map[string]string{"PYTHONUNBUFFERED": "1"},
					FileOutputs: map[string]string{"model": "/tmp/outputs/model"},
				},
			},
		},
		Metadata: &v1.MetadataSpec{
			Annotations: map[string]string{"pipelines.software/task-group": "training"},
		},
	}
}

func TestDecodeYAML(t *testing.T) {
	var spec v1.ComponentSpec
	require.NoError(t, v1.Decode([]byte(yamlData), &spec))
	assert.Equal(t, trainSpec(), &spec)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	spec := trainSpec()

	data, err := v1.Encode(spec)
	require.NoError(t, err)

	var decoded v1.ComponentSpec
	require.NoError(t, v1.Decode(data, &decoded))
	assert.Equal(t, spec, &decoded)
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	spec := trainSpec()

	data, err := v1.NewCodec().EncodeYAML(spec)
	require.NoError(t, err)

	var decoded v1.ComponentSpec
	require.NoError(t, v1.Decode(data, &decoded))
	assert.Equal(t, spec, &decoded)
}

func TestEncodeFailsOnInvalidPlaceholder(t *testing.T) {
	spec := trainSpec()
	spec.Implementation.Container.Container.Command = append(
		spec.Implementation.Container.Container.Command,
		v1.StringOrPlaceholder{},
	)

	_, err := v1.Encode(spec)
	require.Error(t, err)

	var encErr *v1.EncodingError
	require.ErrorAs(t, err, &encErr)
}

func TestDecodeUnknownFieldPolicy(t *testing.T) {
	const doc = `
name: Echo
implementation:
  container:
    image: alpine
    command: [echo, hello]
unknownField: surprising
`

	t.Run("lenient mode ignores unknown fields", func(t *testing.T) {
		var spec v1.ComponentSpec
		require.NoError(t, v1.NewCodec().Decode([]byte(doc), &spec))
		assert.Equal(t, "Echo", spec.Name)
	})

	t.Run("strict mode rejects unknown fields", func(t *testing.T) {
		var spec v1.ComponentSpec
		err := v1.NewCodec(v1.WithStrict()).Decode([]byte(doc), &spec)
		require.Error(t, err)

		var decErr *v1.DecodingError
		require.ErrorAs(t, err, &decErr)
	})
}

func TestDecodeStrictAcceptsValidDocument(t *testing.T) {
	var spec v1.ComponentSpec
	require.NoError(t, v1.NewCodec(v1.WithStrict()).Decode([]byte(yamlData), &spec))
	assert.Equal(t, trainSpec(), &spec)
}

func TestDecodeMalformedDocument(t *testing.T) {
	var spec v1.ComponentSpec
	err := v1.Decode([]byte("{invalid"), &spec)
	require.Error(t, err)

	var decErr *v1.DecodingError
	require.ErrorAs(t, err, &decErr)
}

func TestDecodeRejectsMultipleImplementationVariants(t *testing.T) {
	const doc = `
name: Ambiguous
implementation:
  container:
    image: alpine
  graph:
    nodes: []
`
	var spec v1.ComponentSpec
	err := v1.Decode([]byte(doc), &spec)
	require.ErrorContains(t, err, "exactly one variant")
}

func TestDecodeReservedImplementationVariantRoundTrips(t *testing.T) {
	const doc = `
name: Composed
implementation:
  graph:
    nodes: ["a", "b"]
`
	var spec v1.ComponentSpec
	require.NoError(t, v1.Decode([]byte(doc), &spec))
	require.NotNil(t, spec.Implementation)
	require.NotNil(t, spec.Implementation.Reserved)
	assert.Equal(t, "graph", spec.Implementation.Reserved.GetType().Name)
	assert.Nil(t, spec.Implementation.Container)

	data, err := v1.Encode(&spec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Composed", "implementation": {"graph": {"nodes": ["a", "b"]}}}`, string(data))
}

func TestDecodeJSONDocument(t *testing.T) {
	const doc = `{"name": "Echo", "implementation": {"container": {"image": "alpine"}}}`

	var spec v1.ComponentSpec
	require.NoError(t, v1.Decode([]byte(doc), &spec))
	assert.Equal(t, "Echo", spec.Name)
	require.NotNil(t, spec.Implementation.Container)
	assert.Equal(t, "alpine", spec.Implementation.Container.Container.Image)
}

func TestDeepCopy(t *testing.T) {
	spec := trainSpec()
	copied := spec.DeepCopy()
	require.Equal(t, spec, copied)

	copied.Inputs[0].Name = "changed"
	copied.Implementation.Container.Container.Env["PYTHONUNBUFFERED"] = "0"
	assert.Equal(t, "dataset", spec.Inputs[0].Name)
	assert.Equal(t, "1", spec.Implementation.Container.Container.Env["PYTHONUNBUFFERED"])
}
