package preset

import (
	"path/filepath"

	"github.com/arthur-debert/props/pkg/errors"
	"github.com/arthur-debert/props/pkg/filehandler"
	"github.com/arthur-debert/props/pkg/properties"
	"github.com/arthur-debert/props/pkg/ui"
)

// Confirm is asked before a missing must-exist path is created on demand.
// Tests override it to avoid interactive prompts.
var Confirm filehandler.ConfirmFunc = ui.ConfirmCreate

// Path declares a file or directory property: its command grammar, default
// location and existence contract. A relative value is resolved against the
// Parent property's directory when one is declared.
type Path struct {
	Flag
	Label string

	// Default is the built-in path. DefaultFunc takes precedence when set and
	// lets the default depend on the owning service, e.g. on its name.
	Default     string
	DefaultFunc func(s *properties.Service) string

	// Parent names a directory property this path is resolved against when
	// the effective value is relative.
	Parent properties.Identity

	Existence  filehandler.ExistenceHandling
	AutoCreate filehandler.AutoMode
}

// File builds a file property from the path declaration
func File(def Path) properties.Factory {
	return pathFactory(def, filehandler.KindFile, "FILE")
}

// Directory builds a directory property from the path declaration
func Directory(def Path) properties.Factory {
	return pathFactory(def, filehandler.KindDirectory, "DIR")
}

func pathFactory(def Path, kind filehandler.Kind, fallbackLabel string) properties.Factory {
	return func(s *properties.Service) (properties.Property, error) {
		label := def.Label
		if label == "" {
			label = fallbackLabel
		}

		defaultValue := def.Default
		if def.DefaultFunc != nil {
			defaultValue = def.DefaultFunc(s)
		}

		var deps []properties.Identity
		if def.Parent != "" {
			deps = append(deps, def.Parent)
		}

		return properties.NewBase(s, properties.Definition[string]{
			Identity:       def.Identity,
			Identifiers:    def.Identifiers,
			ArgumentLabels: []string{label},
			Dependencies:   deps,
			Description:    def.Description,
			Default:        defaultValue,
			Parse:          parseString,
			CoerceDefault:  coerceString,
			Update: func(p *properties.Base[string]) error {
				return resolveAgainstParent(p, def.Parent)
			},
			LoadAction: func(p *properties.Base[string]) error {
				return filehandler.Apply(p.Get(), kind, def.Existence, def.AutoCreate, Confirm)
			},
		}), nil
	}
}

// resolveAgainstParent joins a relative path value onto the parent directory
// property's effective value.
func resolveAgainstParent(p *properties.Base[string], parent properties.Identity) error {
	if parent == "" || filepath.IsAbs(p.Get()) {
		return nil
	}

	dep, err := p.Dependency(parent)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNotAvailable,
			"parent directory %s of property %s is not available", parent, p.Identity())
	}
	base, ok := dep.Value().(string)
	if !ok {
		return errors.Newf(errors.ErrNotAvailable,
			"parent directory %s of property %s holds %T, not a path", parent, p.Identity(), dep.Value())
	}

	p.SetValue(filepath.Join(base, p.Get()))
	return nil
}
