// Package config tests policy resolution, defaults, file loading, and
// environment variable overrides.
// Related: internal/config/config.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amplifier-oss/hooks-notifications/internal/event"
)

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()

	pol, err := Resolve(nil)
	require.NoError(t, err)

	assert.Equal(t, "notify", pol.Command)
	assert.Equal(t, []string{"tool:error", "session:end"}, pol.EnabledEvents)
	assert.True(t, pol.NotifyOnAskUser)
}

func TestResolve_Overrides(t *testing.T) {
	t.Parallel()

	pol, err := Resolve(map[string]any{
		"notify_script":      "/usr/local/bin/push",
		"enabled_events":     []string{"tool:error"},
		"notify_on_ask_user": false,
	})
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/push", pol.Command)
	assert.Equal(t, []string{"tool:error"}, pol.EnabledEvents)
	assert.False(t, pol.NotifyOnAskUser)
}

func TestResolve_UnknownKeysIgnored(t *testing.T) {
	t.Parallel()

	pol, err := Resolve(map[string]any{
		"notify_script": "push",
		"volume":        11,
		"retries":       3,
	})
	require.NoError(t, err)
	assert.Equal(t, "push", pol.Command)
}

func TestResolve_EmptyScriptRejected(t *testing.T) {
	t.Parallel()

	_, err := Resolve(map[string]any{"notify_script": ""})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "notify_script", cfgErr.Key)
}

func TestResolve_UnrecognizedEventRejected(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"typo":            "tool:eror",
		"unsupported pre": "tool:pre",
		"empty entry":     "",
		"wrong case":      "Tool:Error",
	}

	for name, bad := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(map[string]any{
				"enabled_events": []string{"tool:error", bad},
			})
			require.Error(t, err, "entry %q must be rejected, not ignored", bad)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, "enabled_events", cfgErr.Key)
			assert.Contains(t, cfgErr.Error(), bad)
		})
	}
}

func TestResolve_EmptyEnabledEventsAllowed(t *testing.T) {
	t.Parallel()

	pol, err := Resolve(map[string]any{"enabled_events": []string{}})
	require.NoError(t, err)
	assert.Empty(t, pol.EnabledEvents)
	assert.True(t, pol.NotifyOnAskUser, "ask-user detection survives an empty event set")
}

func TestPolicy_Enabled(t *testing.T) {
	t.Parallel()

	pol, err := Resolve(map[string]any{"enabled_events": []string{"tool:error"}})
	require.NoError(t, err)

	assert.True(t, pol.Enabled(event.ToolError))
	assert.False(t, pol.Enabled(event.SessionEnd))
	assert.False(t, pol.Enabled(event.ToolPost))
}

func TestLoad_Defaults(t *testing.T) {
	// No t.Parallel(): isolates HOME so ~ expansion cannot find real settings
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	pol, err := Load("~/.amplifier/notify.yml")
	require.NoError(t, err)
	assert.Equal(t, "notify", pol.Command)
	assert.Equal(t, []string{"tool:error", "session:end"}, pol.EnabledEvents)
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "notify.yml")
	content := `notify_script: push
enabled_events:
  - tool:error
  - session:start
notify_on_ask_user: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	pol, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "push", pol.Command)
	assert.Equal(t, []string{"tool:error", "session:start"}, pol.EnabledEvents)
	assert.False(t, pol.NotifyOnAskUser)
}

func TestLoad_JSONFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "notify.json")
	content := `{"notify_script": "push", "enabled_events": ["session:end"]}`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	pol, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "push", pol.Command)
	assert.Equal(t, []string{"session:end"}, pol.EnabledEvents)
	assert.True(t, pol.NotifyOnAskUser, "keys absent from the file keep their defaults")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AMPLIFIER_NOTIFY_NOTIFY_SCRIPT", "env-notify")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "notify.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"notify_script": "file-notify"}`), 0644))

	pol, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "env-notify", pol.Command, "environment must win over the file")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	pol, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)
	assert.Equal(t, "notify", pol.Command)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "notify.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("notify_script = 'x'"), 0644))

	_, err := Load(configPath)
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoad_InvalidEventInFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "notify.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"enabled_events": ["tool:eror"]}`), 0644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool:eror")
}
