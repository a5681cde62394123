// Package preset provides the common property kinds (boolean, integer,
// string, string list, map, file, directory) and a set of ready-to-register
// flags most applications want: test-mode, force, debug and the standard
// directory properties.
//
// Each kind is a factory constructor on top of the generic property
// descriptor; the conversion and validation strategy is supplied here, the
// lifecycle is driven by the properties package.
package preset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/props/pkg/errors"
	"github.com/arthur-debert/props/pkg/properties"
)

// Flag carries the command grammar shared by every property kind
type Flag struct {
	Identity    properties.Identity
	Identifiers []string
	Description string
}

// Boolean builds a boolean flag property. A bare flag parses as true; an
// optional single value is accepted in strconv.ParseBool syntax.
func Boolean(flag Flag, defaultValue bool) properties.Factory {
	return func(s *properties.Service) (properties.Property, error) {
		return properties.NewBase(s, booleanDefinition(flag, defaultValue)), nil
	}
}

func booleanDefinition(flag Flag, defaultValue bool) properties.Definition[bool] {
	return properties.Definition[bool]{
		Identity:      flag.Identity,
		Identifiers:   flag.Identifiers,
		Description:   flag.Description,
		Default:       defaultValue,
		Parse:         parseBool,
		CoerceDefault: coerceBool,
	}
}

// Integer builds an integer property taking exactly one value
func Integer(flag Flag, label string, defaultValue int) properties.Factory {
	return func(s *properties.Service) (properties.Property, error) {
		return properties.NewBase(s, properties.Definition[int]{
			Identity:       flag.Identity,
			Identifiers:    flag.Identifiers,
			ArgumentLabels: []string{label},
			Description:    flag.Description,
			Default:        defaultValue,
			Parse:          parseInt,
			CoerceDefault:  coerceInt,
		}), nil
	}
}

// String builds a string property taking exactly one value
func String(flag Flag, label string, defaultValue string) properties.Factory {
	return func(s *properties.Service) (properties.Property, error) {
		return properties.NewBase(s, properties.Definition[string]{
			Identity:       flag.Identity,
			Identifiers:    flag.Identifiers,
			ArgumentLabels: []string{label},
			Description:    flag.Description,
			Default:        defaultValue,
			Parse:          parseString,
			CoerceDefault:  coerceString,
		}), nil
	}
}

// StringList builds a property collecting every trailing value
func StringList(flag Flag, label string, defaultValue []string) properties.Factory {
	return func(s *properties.Service) (properties.Property, error) {
		return properties.NewBase(s, properties.Definition[[]string]{
			Identity:       flag.Identity,
			Identifiers:    flag.Identifiers,
			ArgumentLabels: []string{label},
			Description:    flag.Description,
			Default:        defaultValue,
			Parse: func(args []string) ([]string, error) {
				values := make([]string, len(args))
				copy(values, args)
				return values, nil
			},
			CoerceDefault: coerceStringList,
		}), nil
	}
}

// Map builds a property whose values are KEY=VALUE assignments
func Map(flag Flag, defaultValue map[string]string) properties.Factory {
	return func(s *properties.Service) (properties.Property, error) {
		return properties.NewBase(s, properties.Definition[map[string]string]{
			Identity:       flag.Identity,
			Identifiers:    flag.Identifiers,
			ArgumentLabels: []string{"KEY=VALUE"},
			Description:    flag.Description,
			Default:        defaultValue,
			Parse:          parseMap,
			CoerceDefault:  coerceStringMap,
		}), nil
	}
}

func parseBool(args []string) (bool, error) {
	switch len(args) {
	case 0:
		return true, nil
	case 1:
		value, err := strconv.ParseBool(args[0])
		if err != nil {
			return false, errors.Newf(errors.ErrBadArgument, "not a boolean value: %s", args[0])
		}
		return value, nil
	default:
		return false, errors.Newf(errors.ErrBadArgument, "expected at most one value, got %d", len(args))
	}
}

func parseInt(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.Newf(errors.ErrBadArgument, "expected exactly one value, got %d", len(args))
	}
	value, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Newf(errors.ErrBadArgument, "not an integer value: %s", args[0])
	}
	return value, nil
}

func parseString(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.Newf(errors.ErrBadArgument, "expected exactly one value, got %d", len(args))
	}
	return args[0], nil
}

func parseMap(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, errors.Newf(errors.ErrBadArgument, "not a KEY=VALUE assignment: %s", arg)
		}
		values[key] = value
	}
	return values, nil
}

func coerceBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return false, errors.Newf(errors.ErrBadArgument, "not a boolean value: %s", v)
		}
		return parsed, nil
	default:
		return false, errors.Newf(errors.ErrBadArgument, "cannot use %T as boolean", value)
	}
}

func coerceInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, errors.Newf(errors.ErrBadArgument, "not an integer value: %s", v)
		}
		return parsed, nil
	default:
		return 0, errors.Newf(errors.ErrBadArgument, "cannot use %T as integer", value)
	}
}

func coerceString(value interface{}) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", errors.Newf(errors.ErrBadArgument, "cannot use %T as string", value)
}

func coerceStringList(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []interface{}:
		values := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.Newf(errors.ErrBadArgument, "cannot use %T as string list element", item)
			}
			values = append(values, s)
		}
		return values, nil
	default:
		return nil, errors.Newf(errors.ErrBadArgument, "cannot use %T as string list", value)
	}
}

func coerceStringMap(value interface{}) (map[string]string, error) {
	switch v := value.(type) {
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		values := make(map[string]string, len(v))
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			s, ok := v[key].(string)
			if !ok {
				return nil, errors.Newf(errors.ErrBadArgument, "cannot use %T as map value", v[key])
			}
			values[key] = s
		}
		return values, nil
	default:
		return nil, errors.Newf(errors.ErrBadArgument, "cannot use %T as map", value)
	}
}
