package config

import (
	"fmt"
	"time"
)

// Probe executor kinds.
const (
	ProbeExec   = "exec"
	ProbeNative = "native"
)

// Measurement log backends.
const (
	StoreCSV    = "csv"
	StoreSqlite = "sqlite"
)

// Config holds the session configuration. It is built once at startup and
// read-only afterwards.
type Config struct {
	Target   string
	Interval time.Duration
	Timeout  time.Duration
	Count    int
	Probe    string
	Store    string
	LogPath  string
	ViewPath string
	Port     int
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("target host must be specified")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Count <= 0 {
		return fmt.Errorf("echo request count must be positive")
	}
	if c.Probe != ProbeExec && c.Probe != ProbeNative {
		return fmt.Errorf("unknown probe type %q", c.Probe)
	}
	if c.Store != StoreCSV && c.Store != StoreSqlite {
		return fmt.Errorf("unknown store type %q", c.Store)
	}
	if c.LogPath == "" {
		return fmt.Errorf("log path cannot be empty")
	}
	if c.ViewPath == "" {
		return fmt.Errorf("view path cannot be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
