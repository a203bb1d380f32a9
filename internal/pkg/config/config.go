package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server ServerConfig
	Scan   ScanConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type ScanConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type LogConfig struct {
	Level string
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Scan: ScanConfig{
			DefaultPageSize: getEnvAsInt("SCAN_DEFAULT_PAGE_SIZE", 50),
			MaxPageSize:     getEnvAsInt("SCAN_MAX_PAGE_SIZE", 500),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	// Page sizing must stay positive; nonsense env values fall back to the
	// defaults instead of poisoning the pagination math.
	if config.Scan.DefaultPageSize < 1 {
		config.Scan.DefaultPageSize = 50
	}
	if config.Scan.MaxPageSize < config.Scan.DefaultPageSize {
		config.Scan.MaxPageSize = config.Scan.DefaultPageSize
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
