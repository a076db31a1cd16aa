package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigBody = `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
statistics:
  viewer_name: viewer-main
  export_dir: export
summary:
  cache_ttl_seconds: 30
search:
  base_url: http://localhost:8983
  timeout_seconds: 10
`

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(body)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	cfg, err := LoadConfig(writeTempConfig(t, validConfigBody))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data", cfg.FileStorage.RootDir)
	assert.Equal(t, "viewer-main", cfg.Statistics.ViewerName)
	assert.Equal(t, "export", cfg.Statistics.ExportDir)
	assert.Equal(t, 30, cfg.Summary.CacheTTLSeconds)
	assert.Equal(t, "http://localhost:8983", cfg.Search.BaseURL)
	assert.Equal(t, 10, cfg.Search.TimeoutSeconds)
}

func TestLoadConfig_MissingPort(t *testing.T) {
	body := `server:
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
statistics:
  viewer_name: viewer-main
  export_dir: export
summary:
  cache_ttl_seconds: 30
search:
  base_url: http://localhost:8983
  timeout_seconds: 10
`

	cfg, err := LoadConfig(writeTempConfig(t, body))
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "port")
}

func TestLoadConfig_InvalidPortRange(t *testing.T) {
	body := `server:
  port: 70000
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
statistics:
  viewer_name: viewer-main
  export_dir: export
summary:
  cache_ttl_seconds: 30
search:
  base_url: http://localhost:8983
  timeout_seconds: 10
`

	cfg, err := LoadConfig(writeTempConfig(t, body))
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "port")
}

func TestLoadConfig_MissingViewerName(t *testing.T) {
	body := `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
statistics:
  export_dir: export
summary:
  cache_ttl_seconds: 30
search:
  base_url: http://localhost:8983
  timeout_seconds: 10
`

	cfg, err := LoadConfig(writeTempConfig(t, body))
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "viewername")
}

func TestLoadConfig_InvalidSearchBaseURL(t *testing.T) {
	body := `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
statistics:
  viewer_name: viewer-main
  export_dir: export
summary:
  cache_ttl_seconds: 30
search:
  base_url: not-a-url
  timeout_seconds: 10
`

	cfg, err := LoadConfig(writeTempConfig(t, body))
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "baseurl")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("does-not-exist.yml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
