package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the settings of the crisprview web server.
type Config struct {
	// AppRoot holds the templates, static and js directories.
	AppRoot   string
	AssetsDir string

	Addr    string
	TLSCert string
	TLSKey  string

	LogLevel string
	LogFile  string
}

// Load reads configuration from environment variables and an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	}

	root := getEnvOrDefault("CRISPRVIEW_APP_ROOT", ".")
	return &Config{
		AppRoot:   root,
		AssetsDir: getEnvOrDefault("CRISPRVIEW_ASSETS_DIR", filepath.Join(root, "assets")),
		Addr:      getEnvOrDefault("CRISPRVIEW_ADDR", ":8080"),
		TLSCert:   os.Getenv("CRISPRVIEW_TLS_CERT"),
		TLSKey:    os.Getenv("CRISPRVIEW_TLS_KEY"),
		LogLevel:  getEnvOrDefault("CRISPRVIEW_LOG_LEVEL", "info"),
		LogFile:   getEnvOrDefault("CRISPRVIEW_LOG_FILE", filepath.Join("logs", "crisprview.log")),
	}
}

func (c *Config) TLSEnabled() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func (c *Config) TemplatesDir() string {
	return filepath.Join(c.AppRoot, "templates")
}

func (c *Config) StaticDir() string {
	return filepath.Join(c.AppRoot, "static")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
