// Command props-example is a small demo application built on the property
// service. It registers a handful of preset properties, parses the command
// line and prints the values it ended up with.
//
// Try:
//
//	props-example --greet "good morning" -p 9000 -Denv=staging
//	props-example --help
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/arthur-debert/props/pkg/preset"
	"github.com/arthur-debert/props/pkg/properties"
	"github.com/arthur-debert/props/pkg/ui"
)

const (
	greetID properties.Identity = "example-greeting"
	portID  properties.Identity = "example-port"
)

func init() {
	properties.MustBind(greetID, preset.String(preset.Flag{
		Identity:    greetID,
		Identifiers: []string{"-g", "--greet"},
		Description: "The greeting printed at startup.",
	}, "TEXT", "hello"))
	properties.MustBind(portID, preset.Integer(preset.Flag{
		Identity:    portID,
		Identifiers: []string{"-p", "--port"},
		Description: "The port the example pretends to listen on.",
	}, "PORT", 8080))
}

func main() {
	s := properties.New("props-example")
	s.Register(greetID)
	s.Register(portID)
	s.Register(preset.ForceID)
	s.Register(preset.DebugID)

	if err := s.ParseOrExit(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	greeting, err := properties.Value[string](s, greetID)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err))
		os.Exit(1)
	}
	port, err := properties.Value[int](s, portID)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err))
		os.Exit(1)
	}

	fmt.Println(ui.Heading("Effective values"))
	fmt.Printf("  greeting: %s\n", greeting)
	fmt.Printf("  port:     %d\n", port)
	fmt.Printf("  force:    %t\n", preset.ForceMode(s))
	fmt.Printf("  debug:    %t\n", preset.DebugMode(s))
	fmt.Printf("  verbose:  %t\n", s.VerboseMode())

	ambient := properties.SystemProperties()
	if len(ambient) > 0 {
		keys := make([]string, 0, len(ambient))
		for key := range ambient {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Println(ui.Heading("Ambient properties"))
		for _, key := range keys {
			fmt.Printf("  %s=%s\n", key, ambient[key])
		}
	}
}
