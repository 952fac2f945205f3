// Package config provides configuration management for playlist-lab.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Overrides from .env files and PLAYLIST_LAB_* environment variables
//   - Conversion to logging.Config
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// k = 2 clusters, genre weight 1.0
//	// extended M3U export
//	// 600x300 snapshots
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment Overrides
//
//	// PLAYLIST_LAB_DEFAULT_K=3 PLAYLIST_LAB_LOG_LEVEL=debug
//	err := settings.LoadEnv()
//
// # Saving Settings
//
//	settings.PlaylistFormat = "pls"
//	err := settings.Save("/path/to/config.json")
package config
