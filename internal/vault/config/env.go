package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// dotEnvFile is loaded before reading the environment. Variables already set
// in the process environment win over the file.
var dotEnvFile = ".env"

const (
	envDatabasePath          = "VAULT_DB_PATH"
	envMaxUploadBytes        = "VAULT_MAX_UPLOAD_BYTES"
	envMaxImageDimension     = "VAULT_MAX_IMAGE_DIMENSION"
	envViewerAddr            = "VAULT_VIEWER_ADDR"
	envViewerShutdownTimeout = "VAULT_VIEWER_SHUTDOWN_TIMEOUT"
	envLogBackend            = "VAULT_LOG_BACKEND"
	envLogLevel              = "VAULT_LOG_LEVEL"
	envLogFormat             = "VAULT_LOG_FORMAT"
)

// parseEnv overlays Config with VAULT_* environment variables. A missing .env
// file is fine; a malformed one, or a malformed numeric value, panics like the
// other config stages.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	setString(&cfg.DatabasePath, envDatabasePath)
	setString(&cfg.ViewerAddr, envViewerAddr)
	setString(&cfg.LogBackend, envLogBackend)
	setString(&cfg.LogLevel, envLogLevel)
	setString(&cfg.LogFormat, envLogFormat)

	if v, ok := os.LookupEnv(envMaxUploadBytes); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			panic(err)
		}
		cfg.MaxUploadBytes = n
	}
	if v, ok := os.LookupEnv(envMaxImageDimension); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.MaxImageDimension = n
	}
	if v, ok := os.LookupEnv(envViewerShutdownTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.ViewerShutdownTimeout = d
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
