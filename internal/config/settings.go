package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/handiism/metroart/internal/http"
	"github.com/handiism/metroart/internal/met"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the public collection API root.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// EnvPrefix is the prefix of environment overrides, e.g. METROART_LOG_LEVEL.
const EnvPrefix = "METROART"

// Nationality catalog modes.
const (
	CatalogStatic  = "static"
	CatalogDerived = "derived"
)

// Settings holds all configuration options.
type Settings struct {
	// API settings
	BaseURL           string        `json:"base_url" mapstructure:"base_url"`
	UserAgent         string        `json:"user_agent" mapstructure:"user_agent"`
	Timeout           time.Duration `json:"timeout" mapstructure:"timeout"`
	RequestsPerSecond int           `json:"requests_per_second" mapstructure:"requests_per_second"`

	// Fetch settings
	MaxConcurrentFetches  int    `json:"max_concurrent_fetches" mapstructure:"max_concurrent_fetches"`
	DepartmentFetchLimit  int    `json:"department_fetch_limit" mapstructure:"department_fetch_limit"`
	NationalityFetchLimit int    `json:"nationality_fetch_limit" mapstructure:"nationality_fetch_limit"`
	AuthorFetchLimit      int    `json:"author_fetch_limit" mapstructure:"author_fetch_limit"`
	DepartmentQuery       string `json:"department_query" mapstructure:"department_query"`
	HighlightOnly         bool   `json:"highlight_only" mapstructure:"highlight_only"`

	// Display settings
	ResultsPageSize     int    `json:"results_page_size" mapstructure:"results_page_size"`
	NationalityPageSize int    `json:"nationality_page_size" mapstructure:"nationality_page_size"`
	NationalityCatalog  string `json:"nationality_catalog" mapstructure:"nationality_catalog"` // static, derived

	// Object cache settings
	CacheSize int           `json:"cache_size" mapstructure:"cache_size"`
	CacheTTL  time.Duration `json:"cache_ttl" mapstructure:"cache_ttl"`

	// Log settings
	LogLevel string `json:"log_level" mapstructure:"log_level"`
	LogFile  string `json:"log_file" mapstructure:"log_file"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:           DefaultBaseURL,
		UserAgent:         http.DefaultUserAgent,
		Timeout:           30 * time.Second,
		RequestsPerSecond: 0,

		MaxConcurrentFetches:  1,
		DepartmentFetchLimit:  20,
		NationalityFetchLimit: 30,
		AuthorFetchLimit:      20,
		DepartmentQuery:       "art",
		HighlightOnly:         false,

		ResultsPageSize:     10,
		NationalityPageSize: 15,
		NationalityCatalog:  CatalogStatic,

		CacheSize: 256,
		CacheTTL:  10 * time.Minute,

		LogLevel: "warn",
	}
}

// Load reads settings from a configuration file and the environment.
//
// When path is empty, "metroart.{json,yaml,toml}" is looked up in the
// current directory and in the user config directory. A missing file is
// not an error: defaults and environment overrides apply.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v, DefaultSettings())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("metroart")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "metroart"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// setDefaults registers every field so that environment overrides work
// without a config file.
func setDefaults(v *viper.Viper, s *Settings) {
	v.SetDefault("base_url", s.BaseURL)
	v.SetDefault("user_agent", s.UserAgent)
	v.SetDefault("timeout", s.Timeout)
	v.SetDefault("requests_per_second", s.RequestsPerSecond)

	v.SetDefault("max_concurrent_fetches", s.MaxConcurrentFetches)
	v.SetDefault("department_fetch_limit", s.DepartmentFetchLimit)
	v.SetDefault("nationality_fetch_limit", s.NationalityFetchLimit)
	v.SetDefault("author_fetch_limit", s.AuthorFetchLimit)
	v.SetDefault("department_query", s.DepartmentQuery)
	v.SetDefault("highlight_only", s.HighlightOnly)

	v.SetDefault("results_page_size", s.ResultsPageSize)
	v.SetDefault("nationality_page_size", s.NationalityPageSize)
	v.SetDefault("nationality_catalog", s.NationalityCatalog)

	v.SetDefault("cache_size", s.CacheSize)
	v.SetDefault("cache_ttl", s.CacheTTL)

	v.SetDefault("log_level", s.LogLevel)
	v.SetDefault("log_file", s.LogFile)
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	if s.BaseURL == "" {
		return errors.New("base_url must not be empty")
	}
	if s.MaxConcurrentFetches < 1 {
		return fmt.Errorf("max_concurrent_fetches must be at least 1, got %d", s.MaxConcurrentFetches)
	}
	if s.ResultsPageSize < 1 || s.NationalityPageSize < 1 {
		return errors.New("page sizes must be at least 1")
	}
	for name, limit := range map[string]int{
		"department_fetch_limit":  s.DepartmentFetchLimit,
		"nationality_fetch_limit": s.NationalityFetchLimit,
		"author_fetch_limit":      s.AuthorFetchLimit,
	} {
		if limit < 1 {
			return fmt.Errorf("%s must be at least 1, got %d", name, limit)
		}
	}
	if s.RequestsPerSecond < 0 || s.CacheSize < 0 {
		return errors.New("requests_per_second and cache_size must not be negative")
	}
	switch s.NationalityCatalog {
	case CatalogStatic, CatalogDerived:
	default:
		return fmt.Errorf("nationality_catalog must be %q or %q, got %q", CatalogStatic, CatalogDerived, s.NationalityCatalog)
	}
	return nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.fileView(), "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// fileView renders durations as Go duration strings so the saved file is
// readable and loads back through viper.
func (s *Settings) fileView() map[string]any {
	return map[string]any{
		"base_url":                s.BaseURL,
		"user_agent":              s.UserAgent,
		"timeout":                 s.Timeout.String(),
		"requests_per_second":     s.RequestsPerSecond,
		"max_concurrent_fetches":  s.MaxConcurrentFetches,
		"department_fetch_limit":  s.DepartmentFetchLimit,
		"nationality_fetch_limit": s.NationalityFetchLimit,
		"author_fetch_limit":      s.AuthorFetchLimit,
		"department_query":        s.DepartmentQuery,
		"highlight_only":          s.HighlightOnly,
		"results_page_size":       s.ResultsPageSize,
		"nationality_page_size":   s.NationalityPageSize,
		"nationality_catalog":     s.NationalityCatalog,
		"cache_size":              s.CacheSize,
		"cache_ttl":               s.CacheTTL.String(),
		"log_level":               s.LogLevel,
		"log_file":                s.LogFile,
	}
}

// ToClientOptions converts settings to http.Options.
func (s *Settings) ToClientOptions() http.Options {
	return http.Options{
		BaseURL:           s.BaseURL,
		UserAgent:         s.UserAgent,
		Timeout:           s.Timeout,
		RequestsPerSecond: s.RequestsPerSecond,
	}
}

// ToCacheOptions converts settings to met.CacheOptions.
func (s *Settings) ToCacheOptions() met.CacheOptions {
	return met.CacheOptions{
		Size: s.CacheSize,
		TTL:  s.CacheTTL,
	}
}
