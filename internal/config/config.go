// Package config holds runtime settings for the portal and the machinery
// that layers them from defaults, an optional JSON file, and flags.
package config

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - DatabasePath: location of the local SQLite document store.
//   - StartFragment: optional deep link restored on startup, in the same
//     form the public site uses for profile links (e.g. "faculty-3").
//   - Debug: enables debug-level logging.
type Config struct {
	DatabasePath  string
	StartFragment string
	Debug         bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "portal.db"
	c.StartFragment = ""
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
