package config

import (
	"log"
	"os"
)

type Config struct {
	Port string

	LineChannelToken  string
	LineChannelSecret string

	GoogleAPIKey string
	GeminiModel  string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads all env vars and builds the config.
// Missing required vars are logged but not fatal: the server still has to
// answer webhooks, and the reply channel is where failures surface.
func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		LineChannelToken:  os.Getenv("LINE_CHANNEL_ACCESS_TOKEN"),
		LineChannelSecret: os.Getenv("LINE_CHANNEL_SECRET"),

		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	if cfg.LineChannelToken == "" {
		log.Println("[config] LINE_CHANNEL_ACCESS_TOKEN is not set")
	}
	if cfg.LineChannelSecret == "" {
		log.Println("[config] LINE_CHANNEL_SECRET is not set")
	}
	if cfg.GoogleAPIKey == "" {
		log.Println("[config] GOOGLE_API_KEY is not set")
	}

	return cfg
}
