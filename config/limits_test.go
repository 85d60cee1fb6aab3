package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schutzenberger/starfree/config"
)

func TestDefaultLimits(t *testing.T) {
	limits := config.DefaultLimits()
	require.Greater(t, limits.MaxDFAStates, 0)
	require.Greater(t, limits.MaxMonoidElements, 0)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "limits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_dfa_states: 10\n"), 0o644))

	limits, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 10, limits.MaxDFAStates)
	require.Equal(t, config.DefaultLimits().MaxMonoidElements, limits.MaxMonoidElements)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/limits.yaml")
	require.Error(t, err)
}
