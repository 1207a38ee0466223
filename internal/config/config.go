package config

import (
	"os"
	"strconv"
	"strings"

	"godash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data      DataConfig
	Server    ServerConfig
	View      ViewConfig
	Paths     PathConfig
	Profiling ProfilingConfig
}

// DataConfig holds the dataset source settings
type DataConfig struct {
	Source string // file path (.csv, .tsv, .xlsx) or postgres://...?table=name
	Sheet  string // xlsx sheet, first sheet when empty
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
	Title   string
}

// ViewConfig holds the limits of the derived views
type ViewConfig struct {
	PreviewRows   int
	TopN          int
	MaxBins       int
	DensityPoints int
}

// PathConfig holds file system paths
type PathConfig struct {
	InsightsFile string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data:      *loadDataConfig(),
		Server:    *loadServerConfig(),
		View:      *loadViewConfig(),
		Paths:     *loadPathConfig(),
		Profiling: *loadProfilingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		Source: strings.TrimSpace(os.Getenv("DATA_SOURCE")),
		Sheet:  getEnvOrDefault("DATA_SHEET", ""),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
		Title:   getEnvOrDefault("DASHBOARD_TITLE", "Interactive Dashboard"),
	}
}

func loadViewConfig() *ViewConfig {
	return &ViewConfig{
		PreviewRows:   getEnvIntOrDefault("PREVIEW_ROWS", 100),
		TopN:          getEnvIntOrDefault("TOP_N", 10),
		MaxBins:       getEnvIntOrDefault("MAX_BINS", 50),
		DensityPoints: getEnvIntOrDefault("DENSITY_POINTS", 100),
	}
}

func loadPathConfig() *PathConfig {
	return &PathConfig{
		InsightsFile: getEnvOrDefault("INSIGHTS_FILE", ""),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if config.Data.Source == "" {
		return errors.ConfigInvalid("DATA_SOURCE is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric")
	}
	if config.View.PreviewRows < 0 {
		return errors.ConfigInvalid("PREVIEW_ROWS must not be negative")
	}
	if config.View.TopN <= 0 || config.View.TopN > 10 {
		return errors.ConfigInvalid("TOP_N must be between 1 and 10")
	}
	if config.View.MaxBins <= 0 {
		return errors.ConfigInvalid("MAX_BINS must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
