package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config selects and configures the insight provider. An empty Provider
// disables the feature.
type Config struct {
	Provider string        `env:"MINATGO_LLM_PROVIDER"`
	Timeout  time.Duration `env:"MINATGO_LLM_TIMEOUT" envDefault:"30s"`

	Anthropic  ProviderConfig `envPrefix:"MINATGO_ANTHROPIC_"`
	OpenAI     ProviderConfig `envPrefix:"MINATGO_OPENAI_"`
	Gemini     ProviderConfig `envPrefix:"MINATGO_GEMINI_"`
	OpenRouter ProviderConfig `envPrefix:"MINATGO_OPENROUTER_"`

	Retry RetryConfig `envPrefix:"MINATGO_LLM_RETRY_"`
}

// ProviderConfig holds credentials and model for one provider.
type ProviderConfig struct {
	APIKey  string `env:"API_KEY"`
	Model   string `env:"MODEL"`
	BaseURL string `env:"BASE_URL"`
}

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	InitialWait time.Duration `env:"INITIAL_WAIT" envDefault:"1s"`
	MaxWait     time.Duration `env:"MAX_WAIT" envDefault:"10s"`
	Multiplier  float64       `env:"MULTIPLIER" envDefault:"2"`
}

var defaultModels = map[string]string{
	"anthropic":  "claude-haiku",
	"openai":     "gpt-4o-mini",
	"gemini":     "gemini-flash",
	"openrouter": "google/gemini-2.0-flash-exp",
}

// standardKeys are checked in order when MINATGO_LLM_PROVIDER is unset.
var standardKeys = []struct{ provider, env string }{
	{"gemini", "GEMINI_API_KEY"},
	{"openai", "OPENAI_API_KEY"},
	{"anthropic", "ANTHROPIC_API_KEY"},
	{"openrouter", "OPENROUTER_API_KEY"},
}

// LoadConfig reads MINATGO_* variables from the process environment.
func LoadConfig() (Config, error) {
	return loadConfig(env.Options{})
}

// LoadConfigFrom reads configuration from vars instead of the process
// environment.
func LoadConfigFrom(vars map[string]string) (Config, error) {
	return loadConfig(env.Options{Environment: vars})
}

func loadConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse LLM config: %w", err)
	}

	lookup := os.Getenv
	if opts.Environment != nil {
		lookup = func(k string) string { return opts.Environment[k] }
	}
	if cfg.Provider == "" {
		for _, k := range standardKeys {
			if v := lookup(k.env); v != "" {
				cfg.Provider = k.provider
				pc := cfg.providerConfig()
				if pc.APIKey == "" {
					pc.APIKey = v
				}
				break
			}
		}
	}

	if pc := cfg.providerConfig(); pc != nil && pc.Model == "" {
		pc.Model = defaultModels[cfg.Provider]
	}
	return cfg, nil
}

// Enabled reports whether a provider was selected.
func (c Config) Enabled() bool { return c.Provider != "" }

func (c *Config) providerConfig() *ProviderConfig {
	switch c.Provider {
	case "anthropic":
		return &c.Anthropic
	case "openai":
		return &c.OpenAI
	case "gemini":
		return &c.Gemini
	case "openrouter":
		return &c.OpenRouter
	}
	return nil
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "", "mock":
		return nil
	}
	pc := c.providerConfig()
	if pc == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if pc.APIKey == "" {
		return fmt.Errorf("an API key is required for the %s provider", c.Provider)
	}
	return nil
}
