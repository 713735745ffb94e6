// Package v1 defines the objects that compose a pipeline component
// specification: a reusable pipeline step with declared inputs, outputs
// and a container-based implementation.
//
// A sample component specification looks something like this:
//
//	name: Train model
//	description: Trains a model on the given dataset.
//	version: 1.2.0
//	inputs:
//	  - name: dataset
//	    type: Dataset
//	  - name: epochs
//	    type: Integer
//	    default: "10"
//	    optional: true
//	outputs:
//	  - name: model
//	    type: Model
//	implementation:
//	  container:
//	    image: python:3.9
//	    command:
//	      - python
//	      - -m
//	      - trainer
//	      - --dataset
//	      - {inputPath: dataset}
//	      - --epochs
//	      - {inputValue: epochs}
//	      - --model
//	      - {outputPath: model}
//	    env:
//	      PYTHONUNBUFFERED: "1"
//	    fileOutputs:
//	      model: /tmp/outputs/model
//	metadata:
//	  annotations:
//	    pipelines.software/task-group: training
//
// Entries of command and args are either plain strings or placeholders
// that are substituted when the step is scheduled: inputValue for the
// value of an input, inputPath for the local path of an input artifact
// and outputPath for the path an output artifact must be written to.
//
// The implementation block is an extensible union keyed by variant name.
// Only the container variant is honoured today; reserved variants such as
// graph decode into a raw carrier and are rejected by validation.
package v1
