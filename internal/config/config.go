package config

import (
	"os"
	"strings"
)

type Config struct {
	RedisURI            string
	PostgresURI         string
	Port                string
	Environment         string   // ENV: production, development, etc.
	Host                string   // Raw HOST env (e.g. https://api.daygrove.app)
	AllowedHost         string   // Hostname only, for the production host check
	AllowedOrigins      []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
	AdminToken          string   // Guards the analytics endpoint
	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))
	host := getEnv("HOST", "http://localhost:8080")

	// The host check only applies in production; development skips it
	var allowedHost string
	if env == "production" {
		allowedHost = stripToHostname(host)
	}

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		if u := strings.TrimSpace(getEnv("FRONTEND_URL", "http://localhost:3000")); u != "" {
			allowedOrigins = append(allowedOrigins, u)
		}
	}

	return &Config{
		RedisURI:            getEnv("REDIS_URI", "redis://localhost:6379/0"),
		PostgresURI:         getEnv("POSTGRES_URI", ""),
		Port:                getEnv("PORT", "8080"),
		Environment:         env,
		Host:                host,
		AllowedHost:         allowedHost,
		AllowedOrigins:      allowedOrigins,
		AdminToken:          getEnv("ADMIN_TOKEN", ""),
		CloudinaryName:      getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func stripToHostname(host string) string {
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}
	if idx := strings.Index(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return strings.TrimSpace(host)
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
