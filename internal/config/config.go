package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the TCP address the HTTP server listens on.
	Addr string `env:"GAMERATING_ADDR"`

	// DSN is handed to the sqlite3 driver, ":memory:" keeps the records for
	// the lifetime of the process only.
	DSN string `env:"GAMERATING_DSN"`

	// Fixtures inserts a few sample ratings on startup.
	Fixtures bool `env:"GAMERATING_FIXTURES"`

	ReadTimeout  Duration `env:"GAMERATING_READ_TIMEOUT"`
	WriteTimeout Duration `env:"GAMERATING_WRITE_TIMEOUT"`
	IdleTimeout  Duration `env:"GAMERATING_IDLE_TIMEOUT"`

	// RateLimit is the number of API requests per second accepted across all
	// clients, 0 disables the limiter.
	RateLimit float64 `env:"GAMERATING_RATE_LIMIT"`
	RateBurst int     `env:"GAMERATING_RATE_BURST"`
}

func Default() *Config {
	return &Config{
		Addr:         ":8080",
		DSN:          ":memory:",
		ReadTimeout:  Duration(5 * time.Second),
		WriteTimeout: Duration(5 * time.Second),
		IdleTimeout:  Duration(10 * time.Second),
		RateBurst:    1,
	}
}

// Load returns the default configuration overridden by, in order, the JSON
// file at path (if not empty), the given dotenv files (or ./.env, if it
// exists) and the environment.
func Load(path string, envFiles ...string) (*Config, error) {
	c := Default()

	if path != "" {
		if err := c.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load dotenv: %w", err)
	}

	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) readFile(path string) error {
	log.Printf("debug: reading conf from %s", path)

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("unable to decode %s: %w", path, err)
	}

	return nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return errors.New("empty listen address")
	}

	if c.DSN == "" {
		return errors.New("empty DSN")
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("negative rate limit: %f", c.RateLimit)
	}

	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("rate burst must be ≥ 1, got %d", c.RateBurst)
	}

	return nil
}

// Duration is a time.Duration read from and written to text as "1m30s".
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	*d = Duration(v)
	return nil
}
