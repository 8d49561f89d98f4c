package config

import "time"

// Config holds runtime settings for the template fill CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the template service (e.g. http://127.0.0.1:8080).
//   - RequestTimeout: per-request deadline applied to every service call.
//   - DownloadDir: directory generated documents are saved into.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	DownloadDir        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.RequestTimeout = 30 * time.Second
	c.DownloadDir = "downloads"
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
