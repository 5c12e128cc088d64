package config

import "strings"

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

func LoadServerConfig() ServerConfig {
	origins := strings.Split(
		GetEnvAsString("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return ServerConfig{
		Port:           GetEnvAsString("PORT", "8000"),
		AllowedOrigins: origins,
	}
}
