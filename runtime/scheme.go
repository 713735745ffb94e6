package runtime

import (
	"fmt"
	"maps"
	"reflect"
	"sync"
)

// Scheme is a dynamic registry for Typed variants. It maps variant types to
// prototype objects that new instances are created from during decoding.
type Scheme struct {
	mu sync.RWMutex
	// allowUnknown makes NewObject return a Raw for unregistered types
	// instead of failing, so documents carrying reserved variants can
	// still round-trip.
	allowUnknown bool
	types        map[Type]Typed
}

// NewScheme creates a new registry.
func NewScheme(opts ...SchemeOption) *Scheme {
	scheme := &Scheme{
		types: make(map[Type]Typed),
	}
	for _, opt := range opts {
		opt(scheme)
	}
	return scheme
}

type SchemeOption func(*Scheme)

// WithAllowUnknown allows unknown variant types to be created as Raw.
func WithAllowUnknown() SchemeOption {
	return func(scheme *Scheme) {
		scheme.allowUnknown = true
	}
}

func (s *Scheme) Clone() *Scheme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := NewScheme()
	clone.allowUnknown = s.allowUnknown
	maps.Copy(clone.types, s.types)
	return clone
}

// AllowsUnknown reports whether unregistered variants decode into Raw.
func (s *Scheme) AllowsUnknown() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allowUnknown
}

// RegisterWithAlias registers a prototype under one or more types. The same
// prototype may be registered under a versioned type and its unversioned
// alias.
func (s *Scheme) RegisterWithAlias(prototype Typed, types ...Type) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, typ := range types {
		if _, exists := s.types[typ]; exists {
			return fmt.Errorf("type %q is already registered", typ)
		}
		s.types[typ] = prototype
	}
	return nil
}

func (s *Scheme) MustRegisterWithAlias(prototype Typed, types ...Type) {
	if err := s.RegisterWithAlias(prototype, types...); err != nil {
		panic(err)
	}
}

// TypeForPrototype returns the versioned type a prototype was registered
// under.
func (s *Scheme) TypeForPrototype(prototype any) (Type, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for typ, proto := range s.types {
		// prefer the fully qualified registration over unversioned aliases
		if !typ.HasVersion() {
			continue
		}
		if reflect.TypeOf(prototype).Elem() == reflect.TypeOf(proto).Elem() {
			return typ, nil
		}
	}

	return Type{}, fmt.Errorf("prototype not found in registry")
}

func (s *Scheme) MustTypeForPrototype(prototype any) Type {
	typ, err := s.TypeForPrototype(prototype)
	if err != nil {
		panic(err)
	}
	return typ
}

func (s *Scheme) IsRegistered(typ Type) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.types[typ]
	return exists
}

// Types returns all registered types.
func (s *Scheme) Types() []Type {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := make([]Type, 0, len(s.types))
	for typ := range s.types {
		types = append(types, typ)
	}
	return types
}

// NewObject creates a fresh instance of the variant registered under typ.
// With WithAllowUnknown, an unregistered type yields a Raw tagged with typ.
func (s *Scheme) NewObject(typ Type) (Typed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	proto, exists := s.types[typ]
	if exists {
		t := reflect.TypeOf(proto)
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		return reflect.New(t).Interface().(Typed), nil
	}

	if s.allowUnknown {
		return &Raw{Type: typ}, nil
	}

	return nil, fmt.Errorf("unsupported type: %s", typ)
}
