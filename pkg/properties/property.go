package properties

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/props/pkg/errors"
)

// Identity is the stable, comparable key of a property kind. At most one
// live instance exists per identity within a Service.
type Identity string

// Property is one instantiated property descriptor. The Service drives it
// through the load pipeline; implementations are not safe for concurrent use.
type Property interface {
	// Identity returns the property's stable key
	Identity() Identity

	// Identifiers returns the command-line tokens that select this property,
	// e.g. "-v", "--verbose"
	Identifiers() []string

	// ArgumentLabels returns the semantic names of the positional values the
	// property consumes, e.g. "PORT"
	ArgumentLabels() []string

	// Dependencies returns the identities this property depends on. They are
	// registered and instantiated alongside this property.
	Dependencies() []Identity

	// Description returns the help page description
	Description() string

	// Match reports whether the given token is one of the command identifiers
	Match(token string) bool

	// MarkIdentified records that the property appeared on the command line
	MarkIdentified()

	// Identified reports whether the property appeared on the command line
	Identified() bool

	// AddArgument appends a raw positional value to the argument buffer
	AddArgument(raw string)

	// RawArguments returns the accumulated raw argument buffer
	RawArguments() []string

	// Reset clears the raw argument buffer, so that re-specifying a flag
	// discards earlier values
	Reset()

	// NeedsParsing reports whether the buffer changed since the last pipeline
	// run (or the property was never parsed)
	NeedsParsing() bool

	// ParseArguments converts the raw buffer into the typed parsed value
	ParseArguments() error

	// OverwriteDefault replaces the built-in default value
	OverwriteDefault(value interface{}) error

	// Update computes the effective value: parsed value if present, default
	// otherwise
	Update() error

	// Validate checks property-specific invariants on the effective value
	Validate() error

	// LoadAction runs the post-load side effect
	LoadAction() error

	// Value returns the effective value
	Value() interface{}

	// Default returns the current (possibly overwritten) default value
	Default() interface{}

	// Syntax returns the help syntax fragment, e.g. "-p|--port <PORT>"
	Syntax() string

	// SortKey returns the help page ordering key
	SortKey() string
}

// Definition declares a property kind: its identity, command grammar and the
// conversion/validation strategy that turns raw arguments into a value of T.
type Definition[T any] struct {
	Identity       Identity
	Identifiers    []string
	ArgumentLabels []string
	Dependencies   []Identity
	Description    string
	Default        T

	// Parse converts the raw argument buffer into a value. It is only called
	// when the property was identified on the command line.
	Parse func(args []string) (T, error)

	// CoerceDefault adapts an overridden default of a foreign type (e.g. an
	// int64 decoded from a defaults file) to T. Optional.
	CoerceDefault func(value interface{}) (T, error)

	// Update adjusts the effective value after computation, e.g. to resolve a
	// relative directory against a parent property. Optional.
	Update func(p *Base[T]) error

	// Validate checks the effective value. Optional.
	Validate func(p *Base[T]) error

	// LoadAction runs the post-load side effect. Optional.
	LoadAction func(p *Base[T]) error

	// SortKey overrides the help ordering key. Defaults to the first command
	// identifier with dashes trimmed.
	SortKey string
}

// Base is the generic Property implementation every property kind builds on.
type Base[T any] struct {
	def Definition[T]
	svc *Service

	args         []string
	parsed       *T
	value        T
	defaultValue T
	identified   bool
	needsParsing bool
}

// NewBase instantiates a property from its definition, attached to the
// Service that resolves its dependencies.
func NewBase[T any](s *Service, def Definition[T]) *Base[T] {
	return &Base[T]{
		def:          def,
		svc:          s,
		defaultValue: def.Default,
		needsParsing: true,
	}
}

// Identity implements Property
func (b *Base[T]) Identity() Identity { return b.def.Identity }

// Identifiers implements Property
func (b *Base[T]) Identifiers() []string { return b.def.Identifiers }

// ArgumentLabels implements Property
func (b *Base[T]) ArgumentLabels() []string { return b.def.ArgumentLabels }

// Dependencies implements Property
func (b *Base[T]) Dependencies() []Identity { return b.def.Dependencies }

// Description implements Property
func (b *Base[T]) Description() string { return b.def.Description }

// Match implements Property. Matching is exact and case-sensitive.
func (b *Base[T]) Match(token string) bool {
	for _, id := range b.def.Identifiers {
		if token == id {
			return true
		}
	}
	return false
}

// MarkIdentified implements Property
func (b *Base[T]) MarkIdentified() { b.identified = true }

// Identified implements Property
func (b *Base[T]) Identified() bool { return b.identified }

// AddArgument implements Property
func (b *Base[T]) AddArgument(raw string) {
	b.args = append(b.args, raw)
	b.needsParsing = true
}

// RawArguments implements Property
func (b *Base[T]) RawArguments() []string { return b.args }

// Reset implements Property
func (b *Base[T]) Reset() {
	b.args = nil
	b.needsParsing = true
}

// NeedsParsing implements Property
func (b *Base[T]) NeedsParsing() bool { return b.needsParsing }

// ParseArguments implements Property
func (b *Base[T]) ParseArguments() error {
	b.needsParsing = false
	b.parsed = nil
	if !b.identified && len(b.args) == 0 {
		return nil
	}
	if b.def.Parse == nil {
		return errors.Newf(errors.ErrBadArgument, "property %s does not accept command-line values", b.def.Identity)
	}
	value, err := b.def.Parse(b.args)
	if err != nil {
		return err
	}
	b.parsed = &value
	return nil
}

// OverwriteDefault implements Property
func (b *Base[T]) OverwriteDefault(value interface{}) error {
	if typed, ok := value.(T); ok {
		b.defaultValue = typed
		return nil
	}
	if b.def.CoerceDefault != nil {
		typed, err := b.def.CoerceDefault(value)
		if err != nil {
			return errors.Wrapf(err, errors.ErrBadArgument,
				"default value %v is not usable for property %s", value, b.def.Identity)
		}
		b.defaultValue = typed
		return nil
	}
	return errors.Newf(errors.ErrBadArgument,
		"default value %v (%T) does not match property %s", value, value, b.def.Identity)
}

// Update implements Property
func (b *Base[T]) Update() error {
	if b.parsed != nil {
		b.value = *b.parsed
	} else {
		b.value = b.defaultValue
	}
	if b.def.Update != nil {
		return b.def.Update(b)
	}
	return nil
}

// Validate implements Property
func (b *Base[T]) Validate() error {
	if b.def.Validate != nil {
		return b.def.Validate(b)
	}
	return nil
}

// LoadAction implements Property
func (b *Base[T]) LoadAction() error {
	if b.def.LoadAction != nil {
		return b.def.LoadAction(b)
	}
	return nil
}

// Value implements Property
func (b *Base[T]) Value() interface{} { return b.value }

// Default implements Property
func (b *Base[T]) Default() interface{} { return b.defaultValue }

// Get returns the typed effective value. Intended for hooks and typed
// property handles; external callers usually go through Value[T].
func (b *Base[T]) Get() T { return b.value }

// SetValue replaces the effective value from an Update hook
func (b *Base[T]) SetValue(value T) { b.value = value }

// Service returns the Service this instance is attached to
func (b *Base[T]) Service() *Service { return b.svc }

// Dependency returns another property's loaded instance. It must only be
// called from pipeline hooks (Update, Validate, LoadAction), which run while
// the Service drives this property through the load pipeline.
func (b *Base[T]) Dependency(id Identity) (Property, error) {
	return b.svc.propertyLocked(id)
}

// Syntax implements Property
func (b *Base[T]) Syntax() string {
	syntax := strings.Join(b.def.Identifiers, "|")
	for _, label := range b.def.ArgumentLabels {
		syntax += fmt.Sprintf(" <%s>", label)
	}
	return syntax
}

// SortKey implements Property
func (b *Base[T]) SortKey() string {
	if b.def.SortKey != "" {
		return b.def.SortKey
	}
	if len(b.def.Identifiers) > 0 {
		return strings.TrimLeft(b.def.Identifiers[0], "-")
	}
	return string(b.def.Identity)
}
