package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	ioutils "github.com/yeager/lugn/internal/io"
)

// FileName is the settings file name inside the config directory.
const FileName = "settings.json"

// Settings holds all persisted configuration options.
type Settings struct {
	// Breathing cycle durations in seconds.
	BreatheIn   int `json:"breathe_in"`
	BreatheHold int `json:"breathe_hold"`
	BreatheOut  int `json:"breathe_out"`

	// FavoriteStrategy is the ID of the strategy pinned to the top of
	// the strategies list. Empty when none is pinned.
	FavoriteStrategy string `json:"favorite_strategy"`

	// SoundEnabled gates the spoken prompt of the emergency flow.
	SoundEnabled bool `json:"sound_enabled"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BreatheIn:        4,
		BreatheHold:      4,
		BreatheOut:       6,
		FavoriteStrategy: "",
		SoundEnabled:     true,
	}
}

// DefaultPath returns the standard settings file location,
// $XDG_CONFIG_HOME/lugn/settings.json.
func DefaultPath() string {
	return filepath.Join(ioutils.UserConfigDir(), FileName)
}

// Load reads settings from a JSON file.
//
// Load never fails: a missing, unreadable, or malformed file yields
// DefaultSettings(). A valid partial file overrides only the keys it
// contains. Out-of-range durations are reset to their defaults so a
// hand-edited file cannot stall the breathing cycle.
func Load(path string) *Settings {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}

	if err := json.Unmarshal(data, settings); err != nil {
		// Discard whatever was partially decoded.
		return DefaultSettings()
	}

	settings.normalize()
	return settings
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Durations returns the breathing phase durations as time.Durations.
func (s *Settings) Durations() (in, hold, out time.Duration) {
	return time.Duration(s.BreatheIn) * time.Second,
		time.Duration(s.BreatheHold) * time.Second,
		time.Duration(s.BreatheOut) * time.Second
}

// normalize resets duration values a hand-edited file may have pushed
// outside the usable range. Inhale and exhale must be at least one
// second; hold may be zero.
func (s *Settings) normalize() {
	def := DefaultSettings()
	if s.BreatheIn < 1 {
		s.BreatheIn = def.BreatheIn
	}
	if s.BreatheHold < 0 {
		s.BreatheHold = def.BreatheHold
	}
	if s.BreatheOut < 1 {
		s.BreatheOut = def.BreatheOut
	}
}
