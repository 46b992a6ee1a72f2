package config

import (
	"os"
	"strconv"

	"gamefair/internal/errors"
)

// Config represents the complete engine configuration
type Config struct {
	Simulation SimulationConfig
	Report     ReportConfig
}

// SimulationConfig holds Monte Carlo settings
type SimulationConfig struct {
	Rounds      int
	Tolerance   float64
	Seed        int64
	SessionSize int
}

// ReportConfig holds export settings
type ReportConfig struct {
	OutputDir string
	Preset    string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Simulation: SimulationConfig{
			Rounds:      getEnvIntOrDefault("FAIR_ROUNDS", 1_000_000),
			Tolerance:   getEnvFloatOrDefault("FAIR_TOLERANCE", 0.001),
			Seed:        int64(getEnvIntOrDefault("FAIR_SEED", 42)),
			SessionSize: getEnvIntOrDefault("FAIR_SESSION_SIZE", 1000),
		},
		Report: ReportConfig{
			OutputDir: getEnvOrDefault("FAIR_OUTPUT_DIR", "."),
			Preset:    getEnvOrDefault("FAIR_PRESET", "v1_defaults"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Simulation.Rounds <= 0 {
		return errors.ConfigInvalid("FAIR_ROUNDS must be positive")
	}
	if config.Simulation.Tolerance <= 0 || config.Simulation.Tolerance >= 1 {
		return errors.ConfigInvalid("FAIR_TOLERANCE must be in (0,1)")
	}
	if config.Simulation.SessionSize <= 0 {
		return errors.ConfigInvalid("FAIR_SESSION_SIZE must be positive")
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

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
