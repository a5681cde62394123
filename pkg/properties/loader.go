package properties

import (
	"github.com/arthur-debert/props/pkg/errors"
)

// propertyLocked returns the loaded instance for id, instantiating and
// running the load pipeline on demand. Results are memoized in the loaded
// map until the next Parse or Reset.
func (s *Service) propertyLocked(id Identity) (Property, error) {
	if id == "" {
		return nil, errors.New(errors.ErrNotAvailable, "empty property identity")
	}

	if p, ok := s.loaded[id]; ok && !p.NeedsParsing() {
		return p, nil
	}

	instance, ok := s.initialized[id]
	if !ok {
		if err := s.initPropertyLocked(id, nil); err != nil {
			return nil, errors.Wrapf(err, errors.ErrNotAvailable, "property %s is not available", id)
		}
		instance = s.initialized[id]
	}

	if err := s.loadPropertyLocked(instance); err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotAvailable, "property %s is not available", id)
	}

	return instance, nil
}

// loadPropertyLocked drives one property through the pipeline:
// parse -> default override -> compute -> validate -> side effect.
// A side-effect failure escalates regardless of reporting mode because it
// represents a usable value in an unusable environment.
func (s *Service) loadPropertyLocked(p Property) error {
	id := p.Identity()

	if loaded, ok := s.loaded[id]; ok && !loaded.NeedsParsing() {
		return nil
	}
	if _, inFlight := s.loading[id]; inFlight {
		return errors.Newf(errors.ErrNotAvailable,
			"cyclic value dependency detected while loading property %s", id)
	}
	s.loading[id] = struct{}{}
	defer delete(s.loading, id)

	if p.NeedsParsing() {
		if err := p.ParseArguments(); err != nil {
			return errors.Wrapf(err, errors.ErrBadArgument, "could not parse property %s", id)
		}
	}

	if defaultValue, ok := s.overriddenDefaults[id]; ok {
		if err := p.OverwriteDefault(defaultValue); err != nil {
			return errors.Wrapf(err, errors.ErrBadArgument,
				"could not overwrite default value of property %s", id)
		}
	}

	if err := p.Update(); err != nil {
		return errors.Wrapf(err, errors.ErrBadArgument, "could not update value of property %s", id)
	}

	if err := p.Validate(); err != nil {
		return errors.Wrapf(err, errors.ErrValidation, "could not validate property %s", id)
	}

	s.loaded[id] = p

	if err := p.LoadAction(); err != nil {
		return errors.Wrapf(err, errors.ErrService,
			"could not run load action of property %s", id)
	}

	return nil
}
