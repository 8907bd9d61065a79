package config

import (
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points config resolution at a throwaway home directory and
// blanks any CRIT_* overrides leaking in from the host environment, so the
// suite never reads a developer's real config file. go-homedir caches the
// resolved dir, hence the Reset calls.
func isolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.Reset()
	t.Cleanup(homedir.Reset)

	for _, key := range []string{
		"CRIT_PROVIDER", "CRIT_ENDPOINT", "CRIT_API_KEY", "CRIT_MODEL",
		"CRIT_SUMMARY", "CRIT_DEBUG",
		"CRIT_VCS_PLATFORM", "CRIT_VCS_TOKEN", "CRIT_VCS_PROJECT", "CRIT_VCS_NUMBER",
	} {
		t.Setenv(key, "")
	}

	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	conf, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, "openai", conf.Provider)
	assert.Equal(t, DefaultEndpoint, conf.Endpoint)
	assert.True(t, conf.GenerateSummary)
	assert.False(t, conf.Debug)
	assert.Equal(t, "github", conf.VCS.Platform)
	assert.Zero(t, conf.Filters.MinLength)
	assert.Equal(t, "test", conf.Version)
}

func TestLoad_ReadsHomeConfigFile(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".config", ConfigDirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.yaml"),
		[]byte("provider: anthropic\nmodel: claude-3-5-sonnet-latest\n"),
		0o644,
	))

	conf, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, "anthropic", conf.Provider)
	assert.Equal(t, "claude-3-5-sonnet-latest", conf.Model)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultEndpoint, conf.Endpoint)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("CRIT_API_KEY", "sk-from-env")
	t.Setenv("CRIT_MODEL", "gpt-4o")
	t.Setenv("CRIT_ENDPOINT", "http://localhost:9999/v1/chat/completions")

	conf, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, "sk-from-env", conf.APIKey)
	assert.Equal(t, "gpt-4o", conf.Model)
	assert.Equal(t, "http://localhost:9999/v1/chat/completions", conf.Endpoint)
}

func TestProviderSettings_Absent(t *testing.T) {
	isolateHome(t)

	conf, err := Load("test")
	require.NoError(t, err)
	assert.Nil(t, conf.ProviderSettings("nope"))
}

func TestRedacted(t *testing.T) {
	assert.Equal(t, "(not set)", Redacted(""))
	assert.Equal(t, "***", Redacted("abc"))
	assert.Equal(t, "********6789", Redacted("sk-123456789"))
}
