package properties

import (
	"strings"

	"github.com/arthur-debert/props/pkg/errors"
)

// resolveLocked instantiates every registered property and, transitively,
// every property it depends on, exactly once each. Instantiating a property
// may grow the registered set (its dependency list is registered alongside
// it), so the outer loop repeats full passes over a snapshot until a pass
// makes no progress.
func (s *Service) resolveLocked() error {
	for {
		modified := false
		for _, id := range s.registeredSnapshotLocked() {
			if _, ok := s.initialized[id]; ok {
				continue
			}
			if err := s.initPropertyLocked(id, nil); err != nil {
				return err
			}
			modified = true
		}
		if !modified {
			return nil
		}
	}
}

// initPropertyLocked constructs one property instance and recurses into its
// dependency list. The identity is inserted into the initialized map before
// recursion, which is what terminates dependency cycles; path carries the
// recursion chain so a cycle is still reported explicitly.
func (s *Service) initPropertyLocked(id Identity, path []Identity) error {
	if _, ok := s.initialized[id]; ok {
		return errors.Newf(errors.ErrInitialization, "property %s is already initialized", id)
	}

	factory, err := factoryFor(id)
	if err != nil {
		return err
	}

	s.registered[id] = struct{}{}

	instance, err := factory(s)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInitialization, "could not init property %s", id)
	}
	if instance == nil {
		return errors.Newf(errors.ErrInitialization, "factory for property %s returned no instance", id)
	}

	s.initialized[id] = instance

	path = append(path, id)
	for _, dep := range instance.Dependencies() {
		if containsIdentity(path, dep) {
			s.logger.Warn().
				Str("property", string(id)).
				Str("dependency", string(dep)).
				Msgf("Dependency cycle detected: %s", cycleString(path, dep))
			continue
		}
		s.registered[dep] = struct{}{}
		if _, ok := s.initialized[dep]; ok {
			continue
		}
		if err := s.initPropertyLocked(dep, path); err != nil {
			return err
		}
	}

	return nil
}

func containsIdentity(ids []Identity, id Identity) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func cycleString(path []Identity, closing Identity) string {
	parts := make([]string, 0, len(path)+1)
	for _, id := range path {
		parts = append(parts, string(id))
	}
	parts = append(parts, string(closing))
	return strings.Join(parts, " -> ")
}
