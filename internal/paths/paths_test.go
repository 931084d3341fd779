package paths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	got, err := ResolveConfigDir("/flag/config")
	require.NoError(t, err)
	assert.Equal(t, "/flag/config", got, "flag wins over env")

	got, err = ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, "/env/config", got, "env wins when no flag")
}

func TestResolveConfigDirDefault(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG behavior is linux-only")
	}
	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	got, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "rolodex"), got)
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")

	got, err := ResolveDataDir("/flag/data", "/config/data")
	require.NoError(t, err)
	assert.Equal(t, "/flag/data", got, "flag wins over config and env")

	got, err = ResolveDataDir("", "/config/data")
	require.NoError(t, err)
	assert.Equal(t, "/config/data", got, "config wins over env")

	got, err = ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, "/env/data", got, "env wins when flag and config are empty")
}

func TestResolveDataDirFallsBackToCWD(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	got, err := ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultDataDirName, filepath.Base(got))
	assert.True(t, filepath.IsAbs(got))
}

func TestResolveDirsReturnAbsolutePaths(t *testing.T) {
	got, err := ResolveConfigDir("relative/config")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))

	got, err = ResolveDataDir("relative/data", "")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}
