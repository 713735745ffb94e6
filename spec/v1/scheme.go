package v1

import (
	"pipelines.software/component-model/runtime"
)

// Scheme registers all implementation variants the model honours. Unknown
// variants decode into runtime.Raw so documents still round-trip; the
// validator rejects them.
var Scheme = runtime.NewScheme(runtime.WithAllowUnknown())

func init() {
	MustAddToScheme(Scheme)
}

func MustAddToScheme(scheme *runtime.Scheme) {
	obj := &ContainerImplementation{}
	scheme.MustRegisterWithAlias(obj,
		runtime.NewVersionedType(ImplementationTypeContainer, Version),
		runtime.NewUnversionedType(ImplementationTypeContainer),
	)
}
