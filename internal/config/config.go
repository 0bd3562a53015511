package config

import (
	"log/slog"
	"os"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
}

// LoadServerConfig loads configuration from environment variables.
// An empty FLIPPY_REDIS_URL disables the greedy move cache.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("FLIPPY_SERVER_HOST"),
		ServerPort:        getEnvMust("FLIPPY_SERVER_PORT"),
		RedisURL:          getEnvDefault("FLIPPY_REDIS_URL", ""),
		BasicAuthUsername: getEnvMust("FLIPPY_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("FLIPPY_BASIC_AUTH_PASS"),
		Token:             getEnvMust("FLIPPY_TOKEN"),
		Prefork:           getEnvMustBool("FLIPPY_PREFORK"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

// ClientConfig holds the settings for talking to a running server.
type ClientConfig struct {
	ServerURL string
	Token     string
}

// LoadClientConfig loads the client configuration from environment variables.
func LoadClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL: getEnvMust("FLIPPY_SERVER_URL"),
		Token:     getEnvMust("FLIPPY_TOKEN"),
	}
}
