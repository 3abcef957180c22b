package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
host = "127.0.0.1"
port = 9090
log_level = "debug"

[tmdb]
base_url = "https://api.example.org"
image_base_url = "https://img.example.org/w500"
api_key = "secret"
timeout_ms = 5000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "https://api.example.org", cfg.TMDB.BaseURL)
	assert.Equal(t, "secret", cfg.TMDB.APIKey)
	assert.Equal(t, 5000, cfg.TMDB.TimeoutMS)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[tmdb]
api_key = "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "https://api.themoviedb.org", cfg.TMDB.BaseURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500", cfg.TMDB.ImageBaseURL)
	assert.Equal(t, 3000, cfg.TMDB.TimeoutMS)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("MF_TMDB_KEY", "from-env")

	path := writeConfig(t, `
[tmdb]
api_key = "${MF_TMDB_KEY}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.TMDB.APIKey)
}

func TestLoad_EnvSubstitution_UnsetLeftAlone(t *testing.T) {
	path := writeConfig(t, `
[tmdb]
api_key = "${MF_DEFINITELY_UNSET_VAR}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "${MF_DEFINITELY_UNSET_VAR}", cfg.TMDB.APIKey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_BadTOML(t *testing.T) {
	path := writeConfig(t, `[server`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080, LogLevel: "info"},
		TMDB:   TMDBConfig{BaseURL: "https://api.themoviedb.org", APIKey: "secret", TimeoutMS: 3000},
	}
	assert.Empty(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 70000, LogLevel: "loud"},
		TMDB:   TMDBConfig{BaseURL: "not a url", TimeoutMS: -1},
	}

	errs := cfg.Validate()
	assert.Len(t, errs, 5)
	assert.Contains(t, errs[0], "server.port")
	assert.Contains(t, errs[1], "server.log_level")
	assert.Contains(t, errs[2], "tmdb.api_key")
	assert.Contains(t, errs[3], "tmdb.timeout_ms")
	assert.Contains(t, errs[4], "tmdb.base_url")
}
