package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
panel:
  base_url: https://panel.example.com/api/v1
  request_timeout_sec: 5
web:
  listen: :9090
  top_up_url: https://panel.example.com/top-up
telegram:
  token: bot-token
  tokens:
    123456789: panel-token
drafts:
  path: /tmp/drafts.db
locales:
  supported: [en, ru]
  default: ru
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://panel.example.com/api/v1", cfg.Panel.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Panel.RequestTimeout())
	assert.Equal(t, ":9090", cfg.Web.Listen)
	assert.Equal(t, "bot-token", cfg.Telegram.Token)
	assert.Equal(t, "panel-token", cfg.Telegram.Tokens[123456789])
	assert.Equal(t, "/tmp/drafts.db", cfg.Drafts.Path)
	assert.Equal(t, []string{"en", "ru"}, cfg.Locales.Supported)
	assert.Equal(t, "ru", cfg.Locales.Default)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
panel:
  base_url: https://panel.example.com/api/v1
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Panel.RequestTimeout())
	assert.Equal(t, ":8080", cfg.Web.Listen)
	assert.Equal(t, "drafts.db", cfg.Drafts.Path)
	assert.Equal(t, []string{"en", "ru", "uz"}, cfg.Locales.Supported)
	assert.Equal(t, "en", cfg.Locales.Default)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PANEL_BASE_URL", "https://other.example.com/api")
	t.Setenv("WEB_LISTEN", ":7070")

	path := writeConfig(t, `
panel:
  base_url: https://panel.example.com/api/v1
web:
  listen: :9090
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://other.example.com/api", cfg.Panel.BaseURL)
	assert.Equal(t, ":7070", cfg.Web.Listen)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
