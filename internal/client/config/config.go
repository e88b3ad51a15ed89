package config

import (
	"time"

	"github.com/dmitrijs2005/gophauth/internal/filex"
)

// DatabaseFile is the name of the local cache inside DataDir.
const DatabaseFile = "client.db"

// Config holds runtime settings for the gophauth CLI.
//
// Fields:
//   - ServerURL: base URL of the auth API.
//   - DataDir: directory holding the local token cache.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerURL      string
	DataDir        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:1163"
	c.DataDir = filex.DefaultDataDir("gophauth")
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then overlays the JSON file at path if path
// is not empty.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}
