package config

import "time"

// Config holds runtime settings for the Pathshala CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api prefix.
//   - SessionFile: path of the local session file (plaintext JSON).
//   - RequestTimeout: end-to-end bound for a single HTTP request.
type Config struct {
	BaseURL        string
	SessionFile    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://edu-backend-m610.onrender.com/api"
	c.SessionFile = "session.json"
	c.RequestTimeout = 30 * time.Second
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
