package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"password_hash_cost": 8,
			"version": "2.0.0",
			"log_level": "error"
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"shutdown_timeout": 1000000000,
			"allowed_origins": ["http://localhost:3000"]
		},
		"storage": {
			"db": { "driver": "sqlite", "dsn": "/var/lib/vault.db" }
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 8, cfg.App.PasswordHashCost)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "/var/lib/vault.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	dir := t.TempDir()

	malformed := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{not valid json"), 0o600))

	badDuration := filepath.Join(dir, "duration.json")
	require.NoError(t, os.WriteFile(badDuration, []byte(`{"app":{"token_duration":"forever"}}`), 0o600))

	boolDuration := filepath.Join(dir, "bool.json")
	require.NoError(t, os.WriteFile(boolDuration, []byte(`{"server":{"request_timeout":true}}`), 0o600))

	for name, path := range map[string]string{
		"missing file":  filepath.Join(dir, "absent.json"),
		"malformed":     malformed,
		"bad duration":  badDuration,
		"bool duration": boolDuration,
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := parseJSON(path)
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
