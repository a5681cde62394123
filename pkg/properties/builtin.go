package properties

import (
	"strconv"

	"github.com/arthur-debert/props/pkg/errors"
	"github.com/arthur-debert/props/pkg/logging"
	"github.com/rs/zerolog"
)

// Identities of the built-in properties every Service pre-registers.
const (
	HelpID     Identity = "help"
	VerboseID  Identity = "verbose"
	LogLevelID Identity = "log-level"
)

var builtinIdentities = []Identity{HelpID, VerboseID, LogLevelID}

func init() {
	MustBind(HelpID, newHelpProperty)
	MustBind(VerboseID, newVerboseProperty)
	MustBind(LogLevelID, newLogLevelProperty)
}

func newHelpProperty(s *Service) (Property, error) {
	return NewBase(s, Definition[bool]{
		Identity:      HelpID,
		Identifiers:   []string{"-h", "--help"},
		Description:   "Prints the property overview page and exits.",
		Parse:         parseBoolFlag,
		CoerceDefault: coerceBool,
	}), nil
}

func newVerboseProperty(s *Service) (Property, error) {
	return NewBase(s, Definition[bool]{
		Identity:      VerboseID,
		Identifiers:   []string{"-v", "--verbose"},
		Description:   "Prints more information during execution to stdout.",
		Parse:         parseBoolFlag,
		CoerceDefault: coerceBool,
		Validate: func(p *Base[bool]) error {
			if p.Get() {
				p.Service().logger.Info().Msg("Verbose mode is enabled!")
			}
			return nil
		},
	}), nil
}

func newLogLevelProperty(s *Service) (Property, error) {
	return NewBase(s, Definition[string]{
		Identity:       LogLevelID,
		Identifiers:    []string{"--log-level"},
		ArgumentLabels: []string{"LEVEL"},
		Description:    "Sets the application log level (trace, debug, info, warn, error).",
		Default:        zerolog.InfoLevel.String(),
		Parse:          parseSingleString,
		CoerceDefault:  coerceString,
		Validate: func(p *Base[string]) error {
			if _, err := zerolog.ParseLevel(p.Get()); err != nil {
				return errors.Newf(errors.ErrValidation, "unknown log level %q", p.Get())
			}
			return nil
		},
		LoadAction: func(p *Base[string]) error {
			return logging.SetLevelByName(p.Get())
		},
	}), nil
}

// parseBoolFlag accepts a bare flag as true and an optional single value in
// strconv.ParseBool syntax.
func parseBoolFlag(args []string) (bool, error) {
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

func parseSingleString(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.Newf(errors.ErrBadArgument, "expected exactly one value, got %d", len(args))
	}
	return args[0], nil
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

func coerceString(value interface{}) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", errors.Newf(errors.ErrBadArgument, "cannot use %T as string", value)
}
