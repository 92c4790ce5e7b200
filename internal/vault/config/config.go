package config

import (
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
)

// Config holds runtime settings for the vault CLI.
//
// Fields:
//   - DatabasePath: SQLite file backing the store.
//   - MaxUploadBytes: byte budget a stored payload must fit.
//   - MaxImageDimension: longest image side kept by the compression pipeline.
//   - ViewerAddr: host:port of the local viewer that resolves share links.
//   - ViewerShutdownTimeout: grace period for in-flight viewer requests.
//   - LogBackend, LogLevel, LogFormat: see logging.New.
type Config struct {
	DatabasePath          string
	MaxUploadBytes        int64
	MaxImageDimension     int
	ViewerAddr            string
	ViewerShutdownTimeout time.Duration
	LogBackend            string
	LogLevel              string
	LogFormat             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "vault.db"
	c.MaxUploadBytes = 10 * common.MiB
	c.MaxImageDimension = 2000
	c.ViewerAddr = "127.0.0.1:8088"
	c.ViewerShutdownTimeout = 5 * time.Second
	c.LogBackend = logging.BackendSlog
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
