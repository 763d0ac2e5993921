package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testYAML = `
env:
  env: development
  serviceName: storm
  log:
    level: info
http:
  port: 8000
secretKey:
  access: from-file-secret
auth:
  bcryptCost: 4
  accessTokenTTL: 30m
`

func writeConfig(t *testing.T, body string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeConfig(t, testYAML)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "storm", cfg.Env.ServiceName)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, "from-file-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeConfig(t, testYAML)
	t.Setenv("SECRETKEY_ACCESS", "from-env-secret")
	t.Setenv("AUTH_ACCESSTOKENTTL", "5m")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env-secret", cfg.SecretKey.Access)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file config.yaml not found")
}

func TestFinalize_AppliesDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SecretKey.Access = "dev-secret"
	cfg.Auth = &AuthConfig{BcryptCost: 99}

	cfg, err := finalize(cfg)
	require.NoError(t, err)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORS.AllowOrigins)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
}

func TestValidate_SecretRules(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		wantErr string
	}{
		{name: "missing secret", env: "development", secret: "", wantErr: "secretKey.access must be provided"},
		{name: "blank secret", env: "development", secret: "   ", wantErr: "secretKey.access must be provided"},
		{name: "short secret in production", env: "production", secret: "short", wantErr: "at least 32 bytes"},
		{name: "short secret outside production", env: "development", secret: "short"},
		{name: "long secret in production", env: "Production", secret: "0123456789abcdef0123456789abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Env.Env = tt.env
			cfg.SecretKey.Access = tt.secret

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
