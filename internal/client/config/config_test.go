package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	require.Equal(t, "campusmarket.db", cfg.DatabasePath)
	require.Equal(t, 5, cfg.MaxImages)
	require.Equal(t, int64(10<<20), cfg.MaxImageSize)
}

func TestParseEnv(t *testing.T) {
	t.Setenv(envAPIBaseURL, "https://market.example.edu/api")
	t.Setenv(envDatabasePath, "/tmp/mkt.db")
	t.Setenv(envMaxImages, "3")
	t.Setenv(envMaxImageMB, "5")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "https://market.example.edu/api", cfg.APIBaseURL)
	require.Equal(t, "/tmp/mkt.db", cfg.DatabasePath)
	require.Equal(t, 3, cfg.MaxImages)
	require.Equal(t, int64(5<<20), cfg.MaxImageSize)
}

func TestParseEnv_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv(envMaxImages, "lots")
	t.Setenv(envMaxImageMB, "-1")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, 5, cfg.MaxImages)
	require.Equal(t, int64(10<<20), cfg.MaxImageSize)
}

func TestParseJson(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	data := `{"api_base_url":"https://json.example.edu/api","database_path":"json.db","max_images":2,"max_image_mb":8}`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cmd", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "https://json.example.edu/api", cfg.APIBaseURL)
	require.Equal(t, "json.db", cfg.DatabasePath)
	require.Equal(t, 2, cfg.MaxImages)
	require.Equal(t, int64(8<<20), cfg.MaxImageSize)
}

func TestParseJson_NoFlagKeepsConfig(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cmd"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cmd", "-a", "https://flags.example.edu/api", "-d", "flags.db", "-c", "ignored.json"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "https://flags.example.edu/api", cfg.APIBaseURL)
	require.Equal(t, "flags.db", cfg.DatabasePath)
}
