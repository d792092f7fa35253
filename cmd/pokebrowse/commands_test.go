package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pokebrowse/internal/catalog"
	"github.com/alexisbeaulieu97/pokebrowse/internal/pokeapi/pokeapitest"
)

// writeTestConfig points the CLI at baseURL with state under a temp dir.
func writeTestConfig(t *testing.T, baseURL string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := fmt.Sprintf(`api:
  base_url: %q
data_dir: %q
log:
  level: warn
  human: false
`, baseURL, filepath.Join(dir, "data"))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	stdout, _, err := executeCommand("version")
	require.NoError(t, err)
	require.Contains(t, stdout, "pokebrowse 1.2.3")
	require.Contains(t, stdout, "abcdef1")
	require.Contains(t, stdout, "2026-10-03")
}

func TestPageCommand_TableOutput(t *testing.T) {
	srv := pokeapitest.New(t, 151)
	cfgPath := writeTestConfig(t, srv.URL)

	stdout, _, err := executeCommand("page", "1", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "ID  NAME")
	require.Contains(t, stdout, "bulbasaur")
	require.Contains(t, stdout, "raticate")
	require.NotContains(t, stdout, "pokemon-021")
	require.Contains(t, stdout, "Page 1 of 7")
}

func TestPageCommand_LastPageIsPartial(t *testing.T) {
	srv := pokeapitest.New(t, 151)
	cfgPath := writeTestConfig(t, srv.URL)

	stdout, _, err := executeCommand("page", "7", "--json", "--config", cfgPath)
	require.NoError(t, err)

	var payload pokemonPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, 7, payload.Page)
	require.Equal(t, 7, payload.TotalPages)
	require.Equal(t, 20, payload.Count, "the API serves a full page past the catalog ceiling")
	require.Equal(t, 121, payload.Pokemon[0].ID)
}

func TestPageCommand_JSONOutput(t *testing.T) {
	srv := pokeapitest.New(t, 151)
	cfgPath := writeTestConfig(t, srv.URL)

	stdout, _, err := executeCommand("page", "2", "--json", "--config", cfgPath)
	require.NoError(t, err)

	var payload pokemonPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, 2, payload.Page)
	require.Equal(t, catalog.PageSize, payload.Count)
	require.Len(t, payload.Pokemon, catalog.PageSize)
	require.Equal(t, 21, payload.Pokemon[0].ID)
	require.Equal(t, 40, payload.Pokemon[19].ID)
}

func TestPageCommand_RejectsOutOfRange(t *testing.T) {
	srv := pokeapitest.New(t, 151)
	cfgPath := writeTestConfig(t, srv.URL)

	for _, arg := range []string{"0", "8", "abc"} {
		_, _, err := executeCommand("page", arg, "--config", cfgPath)
		require.Error(t, err, arg)
		require.Contains(t, err.Error(), "Choose a page between 1 and 7.")
	}

	_, _, err := executeCommand("page", "8", "--config", cfgPath)
	require.ErrorIs(t, err, catalog.ErrPageOutOfRange)
	require.Zero(t, srv.ListCalls(), "rejected pages never reach the API")
}

func TestPageCommand_NetworkFailure(t *testing.T) {
	srv := pokeapitest.New(t, 151)
	srv.FailDetail(3, http.StatusBadGateway)
	cfgPath := writeTestConfig(t, srv.URL)

	_, _, err := executeCommand("page", "1", "--config", cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to fetch page")
	require.Contains(t, err.Error(), "unexpected status 502")
}

func TestSearchCommand(t *testing.T) {
	srv := pokeapitest.New(t, 151)
	cfgPath := writeTestConfig(t, srv.URL)

	stdout, _, err := executeCommand("search", "CHAR", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, `Found 3 Pokémon matching "CHAR"`)
	require.Contains(t, stdout, "charmander")
	require.Contains(t, stdout, "charizard")
	require.NotContains(t, stdout, "squirtle")
}

func TestSearchCommand_NoMatches(t *testing.T) {
	srv := pokeapitest.New(t, 151)
	cfgPath := writeTestConfig(t, srv.URL)

	stdout, _, err := executeCommand("search", "missingno", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, `No Pokémon found matching "missingno"`)
	require.Contains(t, stdout, "Try searching for a different Pokémon name")
}

func TestSearchCommand_JSONOutput(t *testing.T) {
	srv := pokeapitest.New(t, 151)
	cfgPath := writeTestConfig(t, srv.URL)

	stdout, _, err := executeCommand("search", "pokemon-12", "--json", "--config", cfgPath)
	require.NoError(t, err)

	var payload pokemonPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "pokemon-12", payload.Query)
	// The catalog stops at 124: pokemon-120 through pokemon-124.
	require.Equal(t, 5, payload.Count)
}

func TestSearchCommand_CatalogFailure(t *testing.T) {
	srv := pokeapitest.New(t, 151)
	srv.FailList(http.StatusServiceUnavailable)
	cfgPath := writeTestConfig(t, srv.URL)

	_, _, err := executeCommand("search", "pika", "--config", cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to search")
}

func TestThemeCommand_PersistsAcrossRuns(t *testing.T) {
	cfgPath := writeTestConfig(t, "http://127.0.0.1:1")

	stdout, _, err := executeCommand("theme", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "Current theme: light")

	stdout, _, err = executeCommand("theme", "toggle", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "Theme set to dark")

	stdout, _, err = executeCommand("theme", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "Current theme: dark")

	stdout, _, err = executeCommand("theme", "light", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "Theme set to light")

	_, _, err = executeCommand("theme", "sepia", "--config", cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Use light, dark or toggle.")
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	stdout, _, err := executeCommand("config", "init", "--config", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "Wrote default configuration")
	require.FileExists(t, path)

	_, _, err = executeCommand("config", "init", "--config", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "--force")

	_, _, err = executeCommand("config", "init", "--force", "--config", path)
	require.NoError(t, err)

	stdout, _, err = executeCommand("config", "show", "--config", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "base_url: https://pokeapi.co/api/v2")
	require.Contains(t, stdout, "level: info")
}

func TestConfigShow_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))

	_, _, err := executeCommand("config", "show", "--config", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")
	require.Contains(t, err.Error(), "log.level")
}
