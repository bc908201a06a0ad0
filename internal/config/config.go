// Package config resolves the notification module's configuration into an
// immutable Policy.
//
// Configuration arrives either as the raw mapping the Amplifier runtime
// passes to a hook module at mount time (Resolve), or from a settings file
// plus environment for the standalone CLI (Load). Both paths share the same
// defaults and validation: unknown keys are ignored, but a typo inside
// enabled_events is rejected rather than silently dropped.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/amplifier-oss/hooks-notifications/internal/event"
)

// Policy is the resolved notification policy. It is constructed once at
// mount time and never mutated afterwards, so it is safe to share across
// concurrent event handlings.
type Policy struct {
	// Command is the notification executable, either a bare name resolved
	// via PATH or an absolute path.
	Command string `koanf:"notify_script" validate:"required"`

	// EnabledEvents lists the event types that produce a notification.
	// May be empty, in which case only ask-user detection fires.
	EnabledEvents []string `koanf:"enabled_events"`

	// NotifyOnAskUser enables detection of the AskUserQuestion tool inside
	// tool:post events, independent of EnabledEvents.
	NotifyOnAskUser bool `koanf:"notify_on_ask_user"`
}

// Enabled reports whether t is in the policy's enabled event set.
func (p *Policy) Enabled(t event.Type) bool {
	for _, e := range p.EnabledEvents {
		if event.Type(e) == t {
			return true
		}
	}
	return false
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]any {
	return map[string]any{
		"notify_script":      "notify",
		"enabled_events":     []string{string(event.ToolError), string(event.SessionEnd)},
		"notify_on_ask_user": true,
	}
}

// Resolve builds a Policy from the raw configuration mapping the runtime
// hands to the module. Recognized keys override defaults; unknown keys are
// ignored. Returns a *ConfigError for an empty notify_script or an
// unrecognized enabled_events entry.
func Resolve(raw map[string]any) (*Policy, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(GetDefaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if raw != nil {
		if err := k.Load(confmap.Provider(raw, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load config map: %w", err)
		}
	}
	return resolve(k)
}

// Load loads configuration for the standalone CLI.
// Priority: environment variables > config file > defaults.
// The file format is chosen by extension (.json, .yml, .yaml); a missing
// file is not an error, the defaults simply stand.
func Load(path string) (*Policy, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(GetDefaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		path = expandHomePath(path)
		if _, err := os.Stat(path); err == nil {
			parser, err := parserFor(path)
			if err != nil {
				return nil, err
			}
			if err := k.Load(file.Provider(path), parser); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		}
	}

	// Environment overrides (highest priority)
	if err := k.Load(env.Provider("AMPLIFIER_NOTIFY_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	return resolve(k)
}

func resolve(k *koanf.Koanf) (*Policy, error) {
	var p Policy
	if err := k.Unmarshal("", &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&p); err != nil {
		return nil, &ConfigError{Key: "notify_script", Reason: "must not be empty"}
	}

	for _, e := range p.EnabledEvents {
		if !event.Recognized(e) {
			return nil, &ConfigError{
				Key:    "enabled_events",
				Reason: fmt.Sprintf("unrecognized event type %q", e),
			}
		}
	}

	return &p, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Parser(), nil
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	default:
		return nil, &ConfigError{
			Key:    "config",
			Reason: fmt.Sprintf("unsupported config file extension %q", filepath.Ext(path)),
		}
	}
}

// envTransform converts environment variable names to config keys.
// Example: AMPLIFIER_NOTIFY_NOTIFY_SCRIPT -> notify_script
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "AMPLIFIER_NOTIFY_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
