package preset

import (
	"github.com/arthur-debert/props/pkg/properties"
)

// Identities of the ready-made flag properties
const (
	TestModeID properties.Identity = "test-mode"
	ForceID    properties.Identity = "force"
	DebugID    properties.Identity = "debug"
)

func init() {
	properties.MustBind(TestModeID, newTestModeProperty)
	properties.MustBind(ForceID, Boolean(Flag{
		Identity:    ForceID,
		Identifiers: []string{"-f", "--force"},
		Description: "Force the application to skip interactive confirmations.",
	}, false))
	properties.MustBind(DebugID, Boolean(Flag{
		Identity:    DebugID,
		Identifiers: []string{"--debug"},
		Description: "Enable debug facilities such as additional checks and output.",
	}, false))
}

// newTestModeProperty switches the owning service into test mode when the
// flag evaluates to true: faults surface to the caller instead of terminating
// the process.
func newTestModeProperty(s *properties.Service) (properties.Property, error) {
	def := booleanDefinition(Flag{
		Identity:    TestModeID,
		Identifiers: []string{"--test-mode"},
		Description: "Run in test mode: failures are reported to the caller instead of exiting.",
	}, false)
	def.LoadAction = func(p *properties.Base[bool]) error {
		if p.Get() {
			p.Service().EnableTestMode()
		}
		return nil
	}
	return properties.NewBase(s, def), nil
}

// ForceMode reports whether the force flag evaluates to true. Must not be
// called from pipeline hooks.
func ForceMode(s *properties.Service) bool {
	value, err := properties.Value[bool](s, ForceID)
	return err == nil && value
}

// DebugMode reports whether the debug flag evaluates to true. Must not be
// called from pipeline hooks.
func DebugMode(s *properties.Service) bool {
	value, err := properties.Value[bool](s, DebugID)
	return err == nil && value
}
