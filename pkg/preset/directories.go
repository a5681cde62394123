package preset

import (
	"github.com/arthur-debert/props/pkg/filehandler"
	"github.com/arthur-debert/props/pkg/paths"
	"github.com/arthur-debert/props/pkg/properties"
)

// Identities of the standard directory properties
const (
	PrefixID properties.Identity = "prefix"
	TmpDirID properties.Identity = "tmp-dir"
	VarDirID properties.Identity = "var-dir"
	LogDirID properties.Identity = "log-dir"
)

func init() {
	properties.MustBind(PrefixID, Directory(Path{
		Flag: Flag{
			Identity:    PrefixID,
			Identifiers: []string{"--prefix"},
			Description: "Set the application prefix directory all other application directories derive from.",
		},
		DefaultFunc: func(s *properties.Service) string { return paths.Prefix(s.Name()) },
		Existence:   filehandler.May,
	}))

	properties.MustBind(TmpDirID, Directory(Path{
		Flag: Flag{
			Identity:    TmpDirID,
			Identifiers: []string{"--tmp"},
			Description: "Set the temporary directory used for short-lived application files.",
		},
		DefaultFunc: func(s *properties.Service) string { return paths.TmpDir(s.Name()) },
		Existence:   filehandler.Must,
		AutoCreate:  filehandler.AutoOn,
	}))

	properties.MustBind(VarDirID, Directory(Path{
		Flag: Flag{
			Identity:    VarDirID,
			Identifiers: []string{"--var"},
			Description: "Set the directory for variable application data. Relative paths are resolved against the prefix directory.",
		},
		Default:   paths.VarDir(),
		Parent:    PrefixID,
		Existence: filehandler.Must,
	}))

	properties.MustBind(LogDirID, Directory(Path{
		Flag: Flag{
			Identity:    LogDirID,
			Identifiers: []string{"--log-dir"},
			Description: "Set the directory log files are written to.",
		},
		DefaultFunc: func(s *properties.Service) string { return paths.StateDir(s.Name()) },
		Existence:   filehandler.Must,
		AutoCreate:  filehandler.AutoOn,
	}))
}
