// Package config provides settings persistence for lugn.
//
// This package handles:
//   - Loading and saving settings from the JSON settings file
//   - Default configuration values
//   - The standard settings file location under the XDG config dir
//
// # Default Settings
//
// Use DefaultSettings() to get the documented defaults:
//
//	settings := config.DefaultSettings()
//	// Breathe in 4s, hold 4s, out 6s
//	// No favorite strategy, sound enabled
//
// # Loading from File
//
// Load never fails; missing, unreadable, or malformed files yield the
// defaults so a broken settings file can never take the app down:
//
//	settings := config.Load(config.DefaultPath())
//
// # Saving Settings
//
//	settings.FavoriteStrategy = "deep_breathing"
//	err := settings.Save(config.DefaultPath())
package config
