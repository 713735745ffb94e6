package runtime

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// GenerateJSONSchemaForType takes a Typed object and uses reflection to
// generate a JSON Schema representation for it. The variant Type field is
// mapped to its string form as that is how it appears on the wire.
func GenerateJSONSchemaForType(obj Typed) ([]byte, error) {
	if obj == nil {
		return nil, fmt.Errorf("cannot generate JSON schema for nil object")
	}

	switch obj.(type) {
	case *Raw:
		return nil, fmt.Errorf("raw object type is unsupported")
	}

	r := &jsonschema.Reflector{
		Mapper: func(i reflect.Type) *jsonschema.Schema {
			if i == reflect.TypeOf(Type{}) {
				return &jsonschema.Schema{
					Type:    "string",
					Pattern: `^([a-zA-Z0-9][a-zA-Z0-9.]*)(?:/(v[0-9]+(?:alpha[0-9]+|beta[0-9]+)?))?`,
				}
			}
			return nil
		},
	}

	schema, err := r.ReflectFromType(reflect.TypeOf(obj)).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to create json schema for object: %w", err)
	}

	return schema, nil
}
