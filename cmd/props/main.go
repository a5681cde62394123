package main

import (
	"os"

	// Import for its init() property bindings
	_ "github.com/arthur-debert/props/pkg/preset"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
