package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.Address())
	require.Equal(t, "./data/primeestate.db", cfg.Database.Path)
	require.NotEmpty(t, cfg.Chat.WelcomeMessage)
	require.Contains(t, cfg.Chat.SignificantActions, "mortgage calculator")
	require.Equal(t, 60, cfg.Chat.SessionTTLMinutes)
	require.True(t, cfg.Chat.SeedCatalog)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
admin:
  api_key: secret
chat:
  welcome_message: "Hi there!"
  session_ttl_minutes: 15
  seed_catalog: false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "secret", cfg.Admin.APIKey)
	require.Equal(t, "Hi there!", cfg.Chat.WelcomeMessage)
	require.Equal(t, 15, cfg.Chat.SessionTTLMinutes)
	require.False(t, cfg.Chat.SeedCatalog)
}
