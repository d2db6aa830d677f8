// Package config reads runtime settings from the environment, after
// loading a .env file when one is present.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/pooja2309/portfolio/internal/notify"
	"github.com/pooja2309/portfolio/internal/store"
)

// Config is everything the serve command needs.
type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	ContentFile string
	HashSalt    string
	// SaltGenerated is true when HASH_SALT was unset and a random salt
	// was created for this process.
	SaltGenerated bool
	Store         store.Options
	SMTP          notify.Config
}

// Load reads envFile (ignored if missing) and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: loading %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "release"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		ContentFile: os.Getenv("CONTENT_FILE"),
		HashSalt:    os.Getenv("HASH_SALT"),
		Store: store.Options{
			URL:        os.Getenv("DATABASE_URL"),
			SQLitePath: getEnv("SQLITE_PATH", "portfolio.db"),
		},
		SMTP: notify.Config{
			Host: os.Getenv("SMTP_HOST"),
			Port: os.Getenv("SMTP_PORT"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   os.Getenv("TO_EMAIL"),
		},
	}

	if cfg.HashSalt == "" {
		salt, err := randomSalt()
		if err != nil {
			return nil, err
		}
		cfg.HashSalt = salt
		cfg.SaltGenerated = true
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func randomSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("config: generating hash salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}
