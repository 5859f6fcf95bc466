package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metroart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"results_page_size: 5",
		"max_concurrent_fetches: 4",
		"nationality_catalog: derived",
		"timeout: 5s",
		"cache_ttl: 1m",
	}, "\n")), 0644))

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, settings.ResultsPageSize)
	assert.Equal(t, 4, settings.MaxConcurrentFetches)
	assert.Equal(t, CatalogDerived, settings.NationalityCatalog)
	assert.Equal(t, 5*time.Second, settings.Timeout)
	assert.Equal(t, time.Minute, settings.CacheTTL)
	assert.Equal(t, 30, settings.NationalityFetchLimit)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("METROART_LOG_LEVEL", "debug")
	t.Setenv("METROART_AUTHOR_FETCH_LIMIT", "7")

	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, 7, settings.AuthorFetchLimit)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metroart.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"nationality_catalog": "random"}`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metroart.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"results_page_size": `), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "metroart.json")

	settings := DefaultSettings()
	settings.ResultsPageSize = 25
	settings.HighlightOnly = true
	settings.CacheTTL = 90 * time.Second
	require.NoError(t, settings.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"empty base url", func(s *Settings) { s.BaseURL = "" }},
		{"zero workers", func(s *Settings) { s.MaxConcurrentFetches = 0 }},
		{"zero page size", func(s *Settings) { s.ResultsPageSize = 0 }},
		{"zero department limit", func(s *Settings) { s.DepartmentFetchLimit = 0 }},
		{"negative rate", func(s *Settings) { s.RequestsPerSecond = -1 }},
		{"unknown catalog", func(s *Settings) { s.NationalityCatalog = "both" }},
	}

	require.NoError(t, DefaultSettings().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer

	settings := DefaultSettings()
	logger, closer, err := settings.NewLogger(&buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_SilentAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer

	settings := DefaultSettings()
	settings.LogLevel = "error"
	logger, _, err := settings.NewLogger(&buf)
	require.NoError(t, err)

	logger.Warn().Msg("api failure")
	assert.Empty(t, buf.String())
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metroart.log")

	settings := DefaultSettings()
	settings.LogFile = path
	logger, closer, err := settings.NewLogger(nil)
	require.NoError(t, err)

	logger.Warn().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
