package runtime

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
)

// Raw holds the body of a variant that is not registered in a Scheme, for
// example a reserved implementation kind the model does not support yet.
// The body is kept in canonical JSON form (RFC 8785) so that two raw
// variants with the same content always compare and digest equally.
type Raw struct {
	Type Type   `json:"-"`
	Data []byte `json:"-"`
}

var _ interface {
	json.Marshaler
	json.Unmarshaler
	Typed
} = &Raw{}

func (r *Raw) String() string {
	return string(r.Data)
}

func (r *Raw) SetType(t Type) {
	r.Type = t
}

func (r *Raw) GetType() Type {
	return r.Type
}

func (r *Raw) DeepCopyTyped() Typed {
	return &Raw{Type: r.Type, Data: bytes.Clone(r.Data)}
}

func (r *Raw) MarshalJSON() ([]byte, error) {
	if r.Data == nil {
		return []byte("null"), nil
	}
	return r.Data, nil
}

func (r *Raw) UnmarshalJSON(data []byte) error {
	canonical, err := jsoncanonicalizer.Transform(data)
	if err != nil {
		return fmt.Errorf("could not canonicalize data: %w", err)
	}
	r.Data = canonical
	return nil
}
