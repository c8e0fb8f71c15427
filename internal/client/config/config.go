// Package config loads runtime settings for the campusmarket CLI.
//
// Sources are applied in order, later ones winning:
// defaults → .env/environment → JSON file (-c/-config) → command-line flags.
package config

// Config holds runtime settings for the CLI.
//
// MaxImageSize is in bytes. The backend originally enforced 5MB per image
// and later relaxed the limit to 10MB; the client default follows the
// current deployment.
type Config struct {
	APIBaseURL   string
	DatabasePath string
	MaxImages    int
	MaxImageSize int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.DatabasePath = "campusmarket.db"
	c.MaxImages = 5
	c.MaxImageSize = 10 << 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
