package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	TLSTimeout     time.Duration
	WhoisTimeout   time.Duration
	AnalyzeTimeout time.Duration
	GeminiAPIKey   string
	GeminiModel    string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	tlsTimeout, err := getenvDuration("TLS_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	whoisTimeout, err := getenvDuration("WHOIS_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	analyzeTimeout, err := getenvDuration("ANALYZE_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:           getenv("PORT", "10000"),
		TLSTimeout:     tlsTimeout,
		WhoisTimeout:   whoisTimeout,
		AnalyzeTimeout: analyzeTimeout,
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getenv("GEMINI_MODEL", "gemini-2.0-flash"),
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, v)
	}
	return d, nil
}
