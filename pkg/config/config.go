package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port      string
	Env       string
	MongoURI  string
	Database  string
	ClientURL string
	JWTSecret string
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "8002"),
		Env:       getEnv("ENV", "development"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://0.0.0.0:27017"),
		Database:  getEnv("MONGO_DATABASE", "music-app"),
		ClientURL: getEnv("CLIENT_URL", "*"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "" {
		logrus.Warn("JWT_SECRET is not set in production, the built-in default secret will be used")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
