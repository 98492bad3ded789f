// Package config loads HTTP server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Server holds the settings of `minatgo serve`.
type Server struct {
	Addr            string        `env:"MINATGO_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"MINATGO_LOG_LEVEL" envDefault:"info"`
	AllowOrigins    []string      `env:"MINATGO_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	ShutdownTimeout time.Duration `env:"MINATGO_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	AdminPasswordHash string        `env:"MINATGO_ADMIN_PASSWORD_HASH"`
	JWTSecret         string        `env:"MINATGO_JWT_SECRET"`
	TokenTTL          time.Duration `env:"MINATGO_TOKEN_TTL" envDefault:"1h"`
	LoginEvery        time.Duration `env:"MINATGO_LOGIN_RATE" envDefault:"12s"`
	LoginBurst        int           `env:"MINATGO_LOGIN_BURST" envDefault:"5"`

	AMQPURL      string `env:"MINATGO_AMQP_URL"`
	AMQPExchange string `env:"MINATGO_AMQP_EXCHANGE" envDefault:"minatgo.events"`
}

// LoadDotEnv reads files (default ".env") into the process environment
// without overriding variables that are already set. Missing files are
// ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ParseEnv fills target from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer loads .env and parses Server settings.
func LoadServer() (Server, error) {
	var cfg Server
	if err := LoadDotEnv(); err != nil {
		return cfg, err
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// AdminEnabled reports whether admin login is configured.
func (s Server) AdminEnabled() bool {
	return s.AdminPasswordHash != "" && s.JWTSecret != ""
}
