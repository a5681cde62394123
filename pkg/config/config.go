// Package config loads default-value overrides for properties from TOML or
// YAML files. A defaults file maps property identities to values; the values
// are applied as overridden defaults, so command-line arguments still win.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/props/pkg/errors"
	"github.com/arthur-debert/props/pkg/logging"
	"github.com/arthur-debert/props/pkg/paths"
	"github.com/arthur-debert/props/pkg/properties"
)

var log = logging.GetLogger("config")

// Load reads a defaults file into a flat identity-to-value map. The format is
// chosen by file extension: .toml, .yaml or .yml.
func Load(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "could not read defaults file %s", path)
	}

	values := make(map[string]interface{})
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "could not parse defaults file %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "could not parse defaults file %s", path)
		}
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported defaults file format: %s", path)
	}

	return values, nil
}

// Apply loads the defaults file and overrides the default value of every
// property it names. Must run before the arguments are analyzed.
func Apply(s *properties.Service, path string) error {
	values, err := Load(path)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		s.OverrideDefault(properties.Identity(id), values[id])
	}

	log.Debug().Str("path", path).Int("defaults", len(values)).Msg("Applied defaults file")
	return nil
}

// ApplyDefault applies the application's standard defaults file if one
// exists. A missing file is not an error.
func ApplyDefault(s *properties.Service) error {
	path := paths.ConfigFile(s.Name())
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return Apply(s, path)
}
