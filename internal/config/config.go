package config

import (
	"os"
	"strconv"
)

// Config holds application configuration from environment variables.
type Config struct {
	Port        int
	DBPath      string
	DatasetPath string
	ImportOnly  bool // CLI flag: import the dataset, then exit
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:        envInt("YBBUS_PORT", 8080),
		DBPath:      envStr("YBBUS_DB_PATH", "./ybbus.db"),
		DatasetPath: envStr("YBBUS_DATASET", "./data/network.yaml"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
