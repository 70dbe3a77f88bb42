package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
server:
  port: 9090
  readTimeout: 20
database:
  driver: sqlite
  database: ledger.db
logger:
  level: debug
whatsapp:
  verifyToken: file-verify
  apiToken: file-token
  phoneNumberId: "1234567890"
  manualEntrySecret: file-secret
`

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := writeConfig(t, Test, testConfigYAML)

	cfg, err := LoadConfigFrom(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "ledger.db", cfg.Database.Database)
	assert.Equal(t, "debug", cfg.Logger.Level)

	assert.Equal(t, "file-verify", cfg.WhatsApp.VerifyToken)
	assert.Equal(t, "file-token", cfg.WhatsApp.APIToken)
	assert.Equal(t, "1234567890", cfg.WhatsApp.PhoneNumberID)
	assert.Equal(t, "file-secret", cfg.WhatsApp.ManualEntrySecret)
	assert.Equal(t, "https://graph.facebook.com", cfg.WhatsApp.APIBaseURL)
	assert.Equal(t, "v17.0", cfg.WhatsApp.APIVersion)
	assert.Equal(t, 10*time.Second, cfg.WhatsApp.RequestTimeout)
	assert.Equal(t, uint32(5), cfg.WhatsApp.BreakerFailureThreshold)
	assert.Equal(t, 30*time.Second, cfg.WhatsApp.BreakerOpenTimeout)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(Test, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Empty(t, cfg.WhatsApp.ManualEntrySecret)
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	dir := writeConfig(t, Test, testConfigYAML)

	t.Setenv("WHATSAPP_VERIFY_TOKEN", "env-verify")
	t.Setenv("WHATSAPP_SECRET_KEY", "env-secret")
	t.Setenv("WL_WHATSAPP_API_TOKEN", "prefixed-token")
	t.Setenv("WHATSAPP_API_TOKEN", "plain-token")
	t.Setenv("WL_DB_DRIVER", "postgres")
	t.Setenv("WL_SERVER_PORT", "7000")

	cfg, err := LoadConfigFrom(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, "env-verify", cfg.WhatsApp.VerifyToken)
	assert.Equal(t, "env-secret", cfg.WhatsApp.ManualEntrySecret)
	assert.Equal(t, "prefixed-token", cfg.WhatsApp.APIToken)
	assert.Equal(t, "1234567890", cfg.WhatsApp.PhoneNumberID)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	dir := writeConfig(t, Test, "server: [unclosed")

	_, err := LoadConfigFrom(Test, dir)
	assert.Error(t, err)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("WL_ENV", "PRODUCTION")
	assert.Equal(t, Production, getEnvironment())

	t.Setenv("WL_ENV", "")
	assert.Equal(t, Development, getEnvironment())
}
