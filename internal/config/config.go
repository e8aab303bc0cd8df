// Package config reads service settings from the environment. cmd/server
// loads a .env file first when one is present.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	GinMode     string

	AssetDir string
	DataDir  string
	FontDir  string

	FetchTimeout    time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	LoadConcurrency int
	PreviewMaxRatio float64
}

// Load reads the environment. GIN_MODE defaults to release in production and
// debug elsewhere.
func Load() *Config {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENV", "development"),
		AssetDir:        getEnv("ASSET_DIR", "assets"),
		DataDir:         getEnv("DATA_DIR", "data"),
		FontDir:         getEnv("FONT_DIR", ""),
		FetchTimeout:    time.Duration(getEnvAsInt("FETCH_TIMEOUT", 10)) * time.Second,
		ReadTimeout:     time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout:    time.Duration(getEnvAsInt("WRITE_TIMEOUT", 60)) * time.Second,
		LoadConcurrency: getEnvAsInt("LOAD_CONCURRENCY", 8),
		PreviewMaxRatio: getEnvAsFloat("PREVIEW_MAX_RATIO", 4),
	}
	mode := "debug"
	if cfg.IsProduction() {
		mode = "release"
	}
	cfg.GinMode = getEnv("GIN_MODE", mode)
	return cfg
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
