package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/dexter/internal/logtail"
)

const pikachuJSON = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"weight": 60,
	"types": [{"slot": 1, "type": {"name": "electric", "url": ""}}],
	"sprites": {"front_default": "https://img.example/sprite/25.png"}
}`

func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/pokemon/25", "/api/v2/pokemon/pikachu":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(pikachuJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestShow_PrintsRecordByNameAndNumber(t *testing.T) {
	server := catalogServer(t)
	cfgPath := writeConfig(t, fmt.Sprintf("api_base = %q\nlog_file = \"\"\n", server.URL+"/api/v2"))

	for _, term := range []string{"  PikaChu ", "25", "0025"} {
		var out bytes.Buffer
		err := Show(context.Background(), Options{ConfigPath: cfgPath}, term, &out)
		require.NoError(t, err, term)

		text := out.String()
		assert.Contains(t, text, "pikachu", term)
		assert.Contains(t, text, "#25", term)
		assert.Contains(t, text, "Type: electric", term)
		assert.Contains(t, text, "image https://img.example/sprite/25.png", term)
		assert.Contains(t, text, "Artwork of pikachu", term)
	}
}

func TestShow_NotFoundIsLogged(t *testing.T) {
	server := catalogServer(t)
	logPath := filepath.Join(t.TempDir(), "dexter.log")
	cfgPath := writeConfig(t, fmt.Sprintf("api_base = %q\n", server.URL+"/api/v2"))

	var out bytes.Buffer
	err := Show(context.Background(), Options{ConfigPath: cfgPath, LogFile: logPath}, "missingno", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missingno: not found")
	assert.Empty(t, out.String())

	entries, err := logtail.ReadEntries(logPath, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0].Level)
	assert.Equal(t, "lookup failed", entries[0].Message)
	assert.Equal(t, "show", entries[0].Fields["component"])
	assert.Equal(t, "missingno", entries[0].Fields["target"])
}

func TestShow_EmptyTerm(t *testing.T) {
	err := Show(context.Background(), Options{}, "   ", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrEmptyTerm)
}

func TestLoadConfig_AppliesOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfgPath := writeConfig(t, "start_id = 7\n")

	cfg, err := loadConfig(Options{ConfigPath: cfgPath})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.StartID)

	cfg, err = loadConfig(Options{ConfigPath: cfgPath, StartID: 151, LogFile: "~/dexter-test.log"})
	require.NoError(t, err)
	assert.Equal(t, 151, cfg.StartID)
	assert.Equal(t, filepath.Join(home, "dexter-test.log"), cfg.LogFile)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	cfgPath := writeConfig(t, "start_id = [")
	_, err := loadConfig(Options{ConfigPath: cfgPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
