package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr      string `env:"ZZP_ADDR" envDefault:":5000"`
	SubmissionDir string `env:"SUBMISSION_DIR" envDefault:"submissions"`
	DefaultLang   string `env:"ZZP_DEFAULT_LANG" envDefault:"nl"`
	FallbackLang  string `env:"ZZP_FALLBACK_LANG" envDefault:"nl"`
	SessionSecret string `env:"ZZP_SECRET" envDefault:"not-for-production"`
	GelfAddr      string `env:"GELF_ADDR"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
