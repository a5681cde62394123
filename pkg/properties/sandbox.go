package properties

import (
	"github.com/arthur-debert/props/pkg/errors"
)

// PreEvaluate computes the value one property would have under the given
// tokens, without permanently mutating the Service. The registered set and
// the overridden defaults are snapshotted, the property is resolved and the
// tokens parsed in best-effort mode, and afterwards the whole Service is
// reset and the snapshot restored. Initialized and loaded instances are
// discarded; subsequent access re-instantiates them fresh.
//
// PreEvaluate is only usable before the main Parse has ever run. Calling it
// afterwards is a programming-contract violation and panics.
func (s *Service) PreEvaluate(id Identity, tokens []string) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.argumentsAnalyzed {
		panic("properties: PreEvaluate called after arguments were analyzed")
	}

	registeredSnapshot := make([]Identity, 0, len(s.registered))
	for registered := range s.registered {
		registeredSnapshot = append(registeredSnapshot, registered)
	}
	overrideSnapshot := make(map[Identity]interface{}, len(s.overriddenDefaults))
	for key, value := range s.overriddenDefaults {
		overrideSnapshot[key] = value
	}

	s.registered[id] = struct{}{}

	var value interface{}
	err := func() error {
		if err := s.initRegisteredLocked(tokens, true); err != nil {
			return err
		}
		p, err := s.propertyLocked(id)
		if err != nil {
			return err
		}
		value = p.Value()
		return nil
	}()

	s.resetLocked()
	for _, registered := range registeredSnapshot {
		s.registered[registered] = struct{}{}
	}
	for key, snapshotValue := range overrideSnapshot {
		s.overriddenDefaults[key] = snapshotValue
	}

	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrService, "could not pre-evaluate property %s", id)
	}
	return value, nil
}

// PreEvaluateValue is the typed variant of PreEvaluate
func PreEvaluateValue[T any](s *Service, id Identity, tokens []string) (T, error) {
	var zero T
	value, err := s.PreEvaluate(id, tokens)
	if err != nil {
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		return zero, errors.Newf(errors.ErrNotAvailable, "property %s holds %T, not %T", id, value, zero)
	}
	return typed, nil
}
