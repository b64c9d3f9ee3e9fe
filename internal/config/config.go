package config

import (
	"log"
	"os"
)

// Config holds runtime configuration values, one per environment variable.
type Config struct {
	MongoURI          string // MongoDB connection string
	MongoDatabase     string // database name
	AccessTokenSecret string // secret used to sign access tokens
	Port              string // HTTP port to listen on
}

// Load reads configuration from environment variables. Missing required
// values exit with a fatal log message.
func Load() Config {
	return Config{
		MongoURI:          must("MONGO_URI"),
		MongoDatabase:     must("MONGO_DATABASE"),
		AccessTokenSecret: must("ACCESS_TOKEN_SECRET"),
		Port:              fallback("PORT", "5000"),
	}
}

func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func fallback(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
