package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultServerConfiguration(t *testing.T) {
	cfg := DefaultServerConfiguration()
	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 0, cfg.WriteTimeout)
	assert.True(t, cfg.LogRequests)
	require.NotNil(t, cfg.CORS)
	assert.True(t, cfg.CORS.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfiguration)
		wantErr string
	}{
		{"valid", func(c *ServerConfiguration) {}, ""},
		{"port zero", func(c *ServerConfiguration) { c.HTTPPort = 0 }, "httpPort"},
		{"port too high", func(c *ServerConfiguration) { c.HTTPPort = 70000 }, "httpPort"},
		{"negative read timeout", func(c *ServerConfiguration) { c.ReadTimeout = -1 }, "readTimeout"},
		{"write timeout set", func(c *ServerConfiguration) { c.WriteTimeout = 30 }, "writeTimeout"},
		{"negative idle timeout", func(c *ServerConfiguration) { c.IdleTimeout = -5 }, "idleTimeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultServerConfiguration()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := &ServerConfiguration{Host: "127.0.0.1", HTTPPort: 9090}
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
}

func TestLoadFromFile_ValidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := `
httpPort: 9000
host: 127.0.0.1
logLevel: debug
trustedProxies:
  - 10.0.0.0/8
cors:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxies)
	require.NotNil(t, cfg.CORS)
	assert.False(t, cfg.CORS.Enabled)
	// Fields absent from the file keep defaults.
	assert.Equal(t, 30, cfg.ReadTimeout)
}

func TestLoadFromFile_ValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")
	content := `{"httpPort": 8081, "logFormat": "json"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.HTTPPort)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFromFile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{ nope }`), 0644))

	cfg, err := LoadFromFile(path)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("httpPort: [unclosed"), 0644))

	cfg, err := LoadFromFile(path)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoadFromFile_NotFound(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadFromFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cfg, err := LoadFromFile(path)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPort, "9999")
	t.Setenv(EnvHost, "192.168.1.1")
	t.Setenv(EnvLogLevel, "warn")

	cfg := DefaultServerConfiguration()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, 9999, cfg.HTTPPort)
	assert.Equal(t, "192.168.1.1", cfg.Host)
	assert.Equal(t, "warn", cfg.LogLevel)
	// Untouched variable keeps the prior value.
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestApplyEnv_InvalidPort(t *testing.T) {
	t.Setenv(EnvPort, "not-a-port")

	cfg := DefaultServerConfiguration()
	err := cfg.ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvPort)
}
