package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pberrors "github.com/alexisbeaulieu97/pokebrowse/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig().API.BaseURL, cfg.API.BaseURL)
	require.Equal(t, "info", cfg.Log.Level)
	require.Zero(t, cfg.HTTP.Timeout)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `api:
  base_url: "http://localhost:8080/api/v2"
http:
  timeout: 15s
data_dir: /tmp/pokebrowse
log:
  level: debug
  human: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/api/v2", cfg.API.BaseURL)
	require.Equal(t, "pokebrowse", cfg.API.UserAgent, "unset keys keep defaults")
	require.Equal(t, 15*time.Second, cfg.HTTP.Timeout)
	require.Equal(t, "/tmp/pokebrowse", cfg.DataDir)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.Log.Human)
	require.Equal(t, filepath.Join("/tmp/pokebrowse", "pokebrowse.db"), cfg.StorePath())
	require.Equal(t, filepath.Join("/tmp/pokebrowse", "pokebrowse.log"), cfg.LogFilePath())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv("POKEBROWSE_LOG__LEVEL", "warn")
	t.Setenv("POKEBROWSE_DATA_DIR", "/var/lib/pokebrowse")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, "/var/lib/pokebrowse", cfg.DataDir)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]struct {
		contents string
		field    string
	}{
		"non http base url": {contents: "api:\n  base_url: ftp://example.com\n", field: "api.base_url"},
		"unknown log level": {contents: "log:\n  level: loud\n", field: "log.level"},
		"negative timeout":  {contents: "http:\n  timeout: -1s\n", field: "http.timeout"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.contents))
			require.Error(t, err)

			var validationErr *pberrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "api: [unterminated\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.DataDir = "/srv/pokebrowse"
	cfg.HTTP.Timeout = 30 * time.Second
	cfg.Log.File = "/var/log/pokebrowse.log"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))
}
