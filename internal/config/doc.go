// Package config provides configuration management for metroart.
//
// This package handles:
//   - Default configuration values
//   - Loading settings from a file and METROART_* environment variables
//   - Saving settings as JSON
//   - Logger construction at the configured level
//   - Conversion to http.Options and met.CacheOptions for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Sequential fetches, 10 artworks per page
//	// 20/30/20 objects fetched per department/nationality/author search
//	// Static nationality catalog
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/metroart.yaml")
//	if err != nil {
//	    // the file exists but is unreadable or invalid
//	}
//
// Environment variables override file values:
//
//	METROART_LOG_LEVEL=debug METROART_MAX_CONCURRENT_FETCHES=4 metroart-tui
//
// # Saving Settings
//
//	settings.ResultsPageSize = 20
//	err := settings.Save("/path/to/metroart.json")
//
// # Logging
//
// API failures are logged at warn level. Setting log_level to "error"
// silences them; "debug" also traces every decoded response.
package config
