// Package paths provides XDG Base Directory compliant default locations for
// the preset directory properties. Values computed here are only defaults;
// every one of them can be overridden on the command line.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// EnvPrefix overrides the computed application prefix directory
const EnvPrefix = "PROPS_PREFIX"

// Prefix returns the default application prefix directory. The PROPS_PREFIX
// environment variable wins over the XDG data home.
func Prefix(appName string) string {
	if prefix := os.Getenv(EnvPrefix); prefix != "" {
		return prefix
	}
	return filepath.Join(xdg.DataHome, appName)
}

// TmpDir returns the default temporary directory for the application
func TmpDir(appName string) string {
	return filepath.Join(os.TempDir(), appName)
}

// VarDir returns the default directory for variable application data
// (databases, models) relative to the prefix.
func VarDir() string {
	return "var"
}

// StateDir returns the default directory for state files such as logs
func StateDir(appName string) string {
	return filepath.Join(xdg.StateHome, appName)
}

// CacheDir returns the default cache directory for the application
func CacheDir(appName string) string {
	return filepath.Join(xdg.CacheHome, appName)
}

// ConfigFile returns the default defaults-file location for the application
func ConfigFile(appName string) string {
	return filepath.Join(xdg.ConfigHome, appName, appName+".toml")
}
