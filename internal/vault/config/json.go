package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/memoryvault/internal/flagx"
	"github.com/dmitrijs2005/memoryvault/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields left
// out of the file keep their previous value.
type JsonConfig struct {
	DatabasePath          *string         `json:"database_path"`
	MaxUploadBytes        *int64          `json:"max_upload_bytes"`
	MaxImageDimension     *int            `json:"max_image_dimension"`
	ViewerAddr            *string         `json:"viewer_addr"`
	ViewerShutdownTimeout *timex.Duration `json:"viewer_shutdown_timeout"`
	LogBackend            *string         `json:"log_backend"`
	LogLevel              *string         `json:"log_level"`
	LogFormat             *string         `json:"log_format"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config (or $VAULT_CONFIG). Without one it does nothing. Read or
// unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.MaxUploadBytes != nil {
		cfg.MaxUploadBytes = *jc.MaxUploadBytes
	}
	if jc.MaxImageDimension != nil {
		cfg.MaxImageDimension = *jc.MaxImageDimension
	}
	if jc.ViewerAddr != nil {
		cfg.ViewerAddr = *jc.ViewerAddr
	}
	if jc.ViewerShutdownTimeout != nil {
		cfg.ViewerShutdownTimeout = jc.ViewerShutdownTimeout.Duration
	}
	if jc.LogBackend != nil {
		cfg.LogBackend = *jc.LogBackend
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
}
