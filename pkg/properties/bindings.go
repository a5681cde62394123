package properties

import (
	"github.com/arthur-debert/props/pkg/errors"
	"github.com/arthur-debert/props/pkg/registry"
)

// Factory creates a property instance attached to a Service. Factories must
// not call back into the Service; additional identities a property needs are
// declared through its dependency list and registered during resolution.
type Factory func(s *Service) (Property, error)

// bindings maps identities to factories process-wide. Preset packages
// populate it from init functions; applications may add their own kinds.
var bindings = registry.New[Factory]()

// Bind associates an identity with its factory
func Bind(id Identity, factory Factory) error {
	return bindings.Register(string(id), factory)
}

// MustBind associates an identity with its factory and panics on conflict.
// Intended for init() bindings.
func MustBind(id Identity, factory Factory) {
	registry.MustRegister(bindings, string(id), factory)
}

// Bound reports whether a factory is bound for the identity
func Bound(id Identity) bool {
	return bindings.Has(string(id))
}

// BoundIdentities returns every bound identity in sorted order
func BoundIdentities() []Identity {
	names := bindings.List()
	ids := make([]Identity, len(names))
	for i, name := range names {
		ids[i] = Identity(name)
	}
	return ids
}

// Describe instantiates the bound property kind without registering or
// loading it. Intended for inspection tooling that wants the command syntax
// and description of every bound kind.
func Describe(s *Service, id Identity) (Property, error) {
	factory, err := factoryFor(id)
	if err != nil {
		return nil, err
	}
	instance, err := factory(s)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInitialization, "could not describe property %s", id)
	}
	return instance, nil
}

func factoryFor(id Identity) (Factory, error) {
	factory, err := bindings.Get(string(id))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInitialization, "no factory bound for property %s", id)
	}
	return factory, nil
}
