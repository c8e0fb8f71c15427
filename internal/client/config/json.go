package config

import (
	"encoding/json"
	"os"

	"github.com/akulinin/campusmarket/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; known
// fields are copied into the runtime Config afterwards.
type JsonConfig struct {
	APIBaseURL   string `json:"api_base_url"`
	DatabasePath string `json:"database_path"`
	MaxImages    int    `json:"max_images"`
	MaxImageMB   int64  `json:"max_image_mb"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. No flag means no JSON stage. Read or unmarshal
// failures panic: a config file that was explicitly pointed at must load.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.MaxImages > 0 {
		cfg.MaxImages = jc.MaxImages
	}
	if jc.MaxImageMB > 0 {
		cfg.MaxImageSize = jc.MaxImageMB << 20
	}
}
