package config

import "os"

// Config holds the settings read from the environment
type Config struct {
	Port        string
	Env         string
	PostgresURL string
	JWTSecret   string
	MetricsPort string
}

// Load reads the configuration from environment variables
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		PostgresURL: getEnv("POSTGRES_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", "supersecretjwtkey"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
