package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the bot needs at startup. The two tokens are
// required; everything else has a usable default.
type Config struct {
	DiscordToken      string
	FinnhubToken      string
	FinnhubBaseURL    string
	RequestTimeoutSec int
	AnnounceChannel   string
	LogLevel          string
	LogFile           string
}

func Default() Config {
	return Config{
		FinnhubBaseURL:    "https://finnhub.io",
		RequestTimeoutSec: 10,
		AnnounceChannel:   "general",
		LogLevel:          "info",
	}
}

// Load reads configuration from the process environment. A .env file in the
// working directory is loaded first when present (a missing file is fine).
// A missing credential is a startup error; the process must not run without
// both tokens.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	applyEnv(&cfg)

	if cfg.DiscordToken == "" {
		return cfg, errors.New("DISCORD_TOKEN not set")
	}
	if cfg.FinnhubToken == "" {
		return cfg, errors.New("FINNHUB_TOKEN not set")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DISCORD_TOKEN"); v != "" {
		cfg.DiscordToken = v
	}
	if v := os.Getenv("FINNHUB_TOKEN"); v != "" {
		cfg.FinnhubToken = v
	}
	if v := os.Getenv("FINNHUB_BASE_URL"); v != "" {
		cfg.FinnhubBaseURL = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		var x int
		fmt.Sscanf(v, "%d", &x)
		if x > 0 {
			cfg.RequestTimeoutSec = x
		}
	}
	if v := os.Getenv("ANNOUNCE_CHANNEL"); v != "" {
		cfg.AnnounceChannel = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

// RequestTimeout is the bound applied to each outbound API call and to the
// handling of a single inbound command.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}
