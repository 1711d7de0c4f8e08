// Package config loads runtime settings for the Framez client from three
// layered sources: built-in defaults, an optional JSON file, and
// command-line flags. Later sources take precedence.
package config

// Config holds runtime settings for the Framez client.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local secure-store SQLite database.
//   - DeviceSecret: secret used to derive the at-rest sealing key and to
//     sign session tokens. Defaults to a development value; installations
//     are expected to provision their own.
type Config struct {
	DatabaseDSN  string
	DeviceSecret string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "framez.db"
	c.DeviceSecret = "framez-dev-secret"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
