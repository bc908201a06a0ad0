package config

import "fmt"

// ConfigError reports an invalid configuration value. It is fatal to module
// startup; the runtime decides whether to abort or skip mounting the module.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Key, e.Reason)
}
