package v1

import (
	"encoding/json"
	"fmt"
	"maps"

	"pipelines.software/component-model/runtime"
)

const (
	// ImplementationTypeContainer is the variant name of the container
	// implementation inside the implementation union.
	ImplementationTypeContainer = "container"
	// ImplementationTypeGraph is reserved for graph-based pipeline
	// composition. It is not supported; documents carrying it decode into
	// a runtime.Raw and fail validation.
	ImplementationTypeGraph = "graph"
	// Version is the schema version of this package.
	Version = "v1"
)

// ComponentSpec is the top-level entity of the component specification
// format. It declares the interface of a single reusable pipeline step
// together with its container-based implementation.
type ComponentSpec struct {
	// Name is the human-readable name of the component.
	Name string `json:"name"`
	// Description is free text describing what the component does.
	Description string `json:"description,omitempty"`
	// Inputs declares the component's inputs in order.
	Inputs []InputSpec `json:"inputs,omitempty"`
	// Outputs declares the component's outputs in order.
	Outputs []OutputSpec `json:"outputs,omitempty"`
	// Implementation defines how the component is executed.
	Implementation *ImplementationSpec `json:"implementation,omitempty"`
	// Version is the version of the component, not of the schema.
	Version string `json:"version,omitempty"`
	// Metadata carries free-form annotations and labels.
	Metadata *MetadataSpec `json:"metadata,omitempty"`
}

func (s *ComponentSpec) String() string {
	if s.Version != "" {
		return fmt.Sprintf("%s (version %s)", s.Name, s.Version)
	}
	return s.Name
}

// DeepCopy returns a copy sharing no memory with the original.
func (s *ComponentSpec) DeepCopy() *ComponentSpec {
	if s == nil {
		return nil
	}
	out := *s
	if s.Inputs != nil {
		out.Inputs = make([]InputSpec, len(s.Inputs))
		for i, in := range s.Inputs {
			out.Inputs[i] = in.DeepCopy()
		}
	}
	if s.Outputs != nil {
		out.Outputs = make([]OutputSpec, len(s.Outputs))
		for i, o := range s.Outputs {
			out.Outputs[i] = o.DeepCopy()
		}
	}
	out.Implementation = s.Implementation.DeepCopy()
	out.Metadata = s.Metadata.DeepCopy()
	return &out
}

// InputSpec declares a single input of a component. Type, Default and the
// optional flag keep presence semantics: a field that was absent in the
// document stays nil and is omitted again on encoding.
type InputSpec struct {
	// Name identifies the input within the component.
	Name string `json:"name"`
	// Type is a string type descriptor. Structured type descriptors are
	// out of scope; only string type names are accepted.
	Type *string `json:"type,omitempty"`
	// Description is free text describing the input.
	Description string `json:"description,omitempty"`
	// Default is the default value of the input. It is always a string
	// regardless of the declared type; interpreting it is the consumer's
	// concern.
	Default *string `json:"default,omitempty"`
	// Optional marks the input as not required.
	Optional bool `json:"optional,omitempty"`
}

func (i InputSpec) DeepCopy() InputSpec {
	out := i
	if i.Type != nil {
		t := *i.Type
		out.Type = &t
	}
	if i.Default != nil {
		d := *i.Default
		out.Default = &d
	}
	return out
}

// OutputSpec declares a single output of a component.
type OutputSpec struct {
	// Name identifies the output within the component.
	Name string `json:"name"`
	// Type is a string type descriptor, see InputSpec.Type.
	Type *string `json:"type,omitempty"`
	// Description is free text describing the output.
	Description string `json:"description,omitempty"`
}

func (o OutputSpec) DeepCopy() OutputSpec {
	out := o
	if o.Type != nil {
		t := *o.Type
		out.Type = &t
	}
	return out
}

// MetadataSpec carries free-form component metadata.
type MetadataSpec struct {
	Annotations map[string]string `json:"annotations,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

func (m *MetadataSpec) DeepCopy() *MetadataSpec {
	if m == nil {
		return nil
	}
	return &MetadataSpec{
		Annotations: maps.Clone(m.Annotations),
		Labels:      maps.Clone(m.Labels),
	}
}

// ImplementationSpec is the extensible union of implementation variants.
// Exactly one variant is set at a time. Container is the only variant the
// model honours; a reserved variant read from a document is kept in
// Reserved so the document still round-trips.
type ImplementationSpec struct {
	Container *ContainerImplementation
	Reserved  *runtime.Raw
}

func (i *ImplementationSpec) DeepCopy() *ImplementationSpec {
	if i == nil {
		return nil
	}
	out := &ImplementationSpec{}
	if i.Container != nil {
		out.Container = i.Container.DeepCopyTyped().(*ContainerImplementation)
	}
	if i.Reserved != nil {
		out.Reserved = i.Reserved.DeepCopyTyped().(*runtime.Raw)
	}
	return out
}

// variants returns the names of all set variants, in declaration order.
func (i *ImplementationSpec) variants() []string {
	var set []string
	if i.Container != nil {
		set = append(set, ImplementationTypeContainer)
	}
	if i.Reserved != nil {
		set = append(set, i.Reserved.GetType().Name)
	}
	return set
}

func (i ImplementationSpec) MarshalJSON() ([]byte, error) {
	set := i.variants()
	if len(set) != 1 {
		return nil, &EncodingError{
			Reason: fmt.Sprintf("implementation must set exactly one variant, found %d", len(set)),
		}
	}
	if i.Container != nil {
		return json.Marshal(map[string]*ContainerSpec{
			ImplementationTypeContainer: &i.Container.Container,
		})
	}
	return json.Marshal(map[string]json.RawMessage{
		i.Reserved.GetType().Name: i.Reserved.Data,
	})
}

func (i *ImplementationSpec) UnmarshalJSON(data []byte) error {
	var variants map[string]json.RawMessage
	if err := json.Unmarshal(data, &variants); err != nil {
		return fmt.Errorf("could not unmarshal implementation: %w", err)
	}
	// zero variants is left to the validator so it can report a path
	if len(variants) > 1 {
		return fmt.Errorf("implementation must set exactly one variant, found %d", len(variants))
	}
	for name, body := range variants {
		typ := runtime.NewUnversionedType(name)
		obj, err := Scheme.NewObject(typ)
		if err != nil {
			return fmt.Errorf("unsupported implementation variant %q: %w", name, err)
		}
		switch impl := obj.(type) {
		case *ContainerImplementation:
			if err := json.Unmarshal(body, &impl.Container); err != nil {
				return fmt.Errorf("could not unmarshal container implementation: %w", err)
			}
			i.Container = impl
		case *runtime.Raw:
			if err := impl.UnmarshalJSON(body); err != nil {
				return fmt.Errorf("could not unmarshal implementation variant %q: %w", name, err)
			}
			impl.SetType(typ)
			i.Reserved = impl
		default:
			return fmt.Errorf("unexpected prototype %T for implementation variant %q", obj, name)
		}
	}
	return nil
}

// ContainerImplementation is the container variant of the implementation
// union. It wraps exactly one ContainerSpec.
type ContainerImplementation struct {
	typ runtime.Type

	// Container describes the container to execute.
	Container ContainerSpec `json:"container"`
}

var _ runtime.Typed = &ContainerImplementation{}

func (c *ContainerImplementation) GetType() runtime.Type {
	if c.typ.IsEmpty() {
		return runtime.NewVersionedType(ImplementationTypeContainer, Version)
	}
	return c.typ
}

func (c *ContainerImplementation) SetType(t runtime.Type) {
	c.typ = t
}

func (c *ContainerImplementation) DeepCopyTyped() runtime.Typed {
	return &ContainerImplementation{
		typ:       c.typ,
		Container: c.Container.DeepCopy(),
	}
}

// ContainerSpec describes a container to execute: the image, the process
// invocation assembled from command and args, environment variables and
// the paths output values are read back from.
type ContainerSpec struct {
	// Image is the container image reference. Required.
	Image string `json:"image"`
	// Command is the entrypoint template. Order is significant, it
	// determines the process invocation.
	Command []StringOrPlaceholder `json:"command,omitempty"`
	// Args is the argument template appended to Command.
	Args []StringOrPlaceholder `json:"args,omitempty"`
	// Env sets environment variables. Ordering is irrelevant.
	Env map[string]string `json:"env,omitempty"`
	// FileOutputs maps output names to the container paths their values
	// are recovered from after execution.
	FileOutputs map[string]string `json:"fileOutputs,omitempty"`
}

func (c ContainerSpec) DeepCopy() ContainerSpec {
	out := c
	if c.Command != nil {
		out.Command = make([]StringOrPlaceholder, len(c.Command))
		for i, p := range c.Command {
			out.Command[i] = p.DeepCopy()
		}
	}
	if c.Args != nil {
		out.Args = make([]StringOrPlaceholder, len(c.Args))
		for i, p := range c.Args {
			out.Args[i] = p.DeepCopy()
		}
	}
	out.Env = maps.Clone(c.Env)
	out.FileOutputs = maps.Clone(c.FileOutputs)
	return out
}
