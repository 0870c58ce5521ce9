package cli

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/datakit-labs/corpusload/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// standing in for t.Chdir which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "corpusload", cmd.Use)
	assert.Equal(t, Version, cmd.Version)

	// Global persistent flags
	for _, flag := range []string{"config", "data-dir", "dataset", "langs", "namespace", "max-files", "yes", "verbose", "output"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	// Subcommands
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, name := range []string{"fetch", "load", "audit", "run", "init", "version"} {
		assert.True(t, names[name], "subcommand %q should be registered", name)
	}
}

func TestRootCmd_Version(t *testing.T) {
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), Version)
}

func TestRootCmd_LoadsConfigForSubcommands(t *testing.T) {
	t.Cleanup(config.ResetConfig)
	chdir(t, t.TempDir())

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"version", "--langs", "de", "--max-files", "4"})

	require.NoError(t, cmd.Execute())

	cfg := config.GetCurrentConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"de"}, cfg.Languages)
	assert.Equal(t, 4, cfg.MaxFiles)
}

func TestGetConfig_Fallback(t *testing.T) {
	cfg := GetConfig(context.Background())
	assert.Equal(t, config.DefaultDataset, cfg.Dataset)
	assert.Equal(t, config.DefaultLanguages, cfg.Languages)
}
