package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixEnvOverride(t *testing.T) {
	t.Setenv(EnvPrefix, "/opt/myapp")
	assert.Equal(t, "/opt/myapp", Prefix("myapp"))
}

func TestPrefixDefault(t *testing.T) {
	t.Setenv(EnvPrefix, "")
	got := Prefix("myapp")
	assert.True(t, strings.HasSuffix(got, "myapp"), "prefix %q should end with app name", got)
}

func TestTmpDir(t *testing.T) {
	got := TmpDir("myapp")
	assert.Equal(t, "myapp", filepath.Base(got))
}

func TestVarDirIsRelative(t *testing.T) {
	assert.False(t, filepath.IsAbs(VarDir()), "var dir default is resolved against the prefix property")
}

func TestConfigFile(t *testing.T) {
	got := ConfigFile("myapp")
	assert.Equal(t, "myapp.toml", filepath.Base(got))
}
