package config

import "os"

type Config struct {
	BackendURL      string
	ServerPort      string
	SessionDBPath   string
	CacheRefreshSec string
	CORSOrigins     string
}

func Load() *Config {
	return &Config{
		BackendURL:      getEnv("BACKEND_API_URL", "http://127.0.0.1:8000/api"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		SessionDBPath:   getEnv("SESSION_DB_PATH", "coin_session.db"),
		CacheRefreshSec: getEnv("CACHE_REFRESH_SEC", "0"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
