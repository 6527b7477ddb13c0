// Package contract provides configuration, validation and shared utilities
// for internal architecture.
package contract

import "github.com/sprintcast/sprintcast/schema"

// Config holds the runtime configuration for a forecast invocation.
// This struct remains the "final, validated" config.
type Config struct {
	PlanPath   string
	Output     schema.OutputMode
	OutputFile string
	ReportFile string
	Force      bool
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
	UseEmojis  bool
}

// Clone returns a shallow copy of the config, used by MCP handlers that
// need per-request overrides without mutating the base config.
func (c *Config) Clone() *Config {
	dup := *c
	return &dup
}
