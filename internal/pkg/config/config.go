package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Panel    PanelCfg    `yaml:"panel"`
	Web      WebCfg      `yaml:"web"`
	Telegram TelegramCfg `yaml:"telegram"`
	Drafts   DraftsCfg   `yaml:"drafts"`
	Locales  LocalesCfg  `yaml:"locales"`
}

type PanelCfg struct {
	BaseURL           string `yaml:"base_url" env:"PANEL_BASE_URL"`
	RequestTimeoutSec int    `yaml:"request_timeout_sec" env:"PANEL_REQUEST_TIMEOUT_SEC"`
}

func (p PanelCfg) RequestTimeout() time.Duration {
	return time.Duration(p.RequestTimeoutSec) * time.Second
}

type WebCfg struct {
	Listen   string `yaml:"listen" env:"WEB_LISTEN"`
	TopUpURL string `yaml:"top_up_url" env:"WEB_TOP_UP_URL"`
}

type TelegramCfg struct {
	Token string `yaml:"token" env:"TELEGRAM_TOKEN"`
	// Panel API tokens keyed by telegram user ID. Session issuance itself
	// lives in the panel, the bot only carries tokens it was given.
	Tokens map[int64]string `yaml:"tokens"`
}

type DraftsCfg struct {
	Path string `yaml:"path" env:"DRAFTS_PATH"`
}

type LocalesCfg struct {
	Supported []string `yaml:"supported"`
	Default   string   `yaml:"default" env:"DEFAULT_LOCALE"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env overrides: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Panel.RequestTimeoutSec == 0 {
		c.Panel.RequestTimeoutSec = 10
	}
	if c.Web.Listen == "" {
		c.Web.Listen = ":8080"
	}
	if c.Drafts.Path == "" {
		c.Drafts.Path = "drafts.db"
	}
	if len(c.Locales.Supported) == 0 {
		c.Locales.Supported = []string{"en", "ru", "uz"}
	}
	if c.Locales.Default == "" {
		c.Locales.Default = c.Locales.Supported[0]
	}
}
