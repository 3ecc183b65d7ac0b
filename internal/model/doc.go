// Package model defines the core data structures used throughout
// the lugn application.
//
// # Track
//
// Track represents one playable audio file, discovered at runtime
// from the music directories:
//
//	track := model.NewTrack("bach_air", "/usr/share/lugn/music/bach_air.ogg",
//	    "Air on the G String", "J.S. Bach")
//	fmt.Println(track.DisplayName()) // "Air on the G String — J.S. Bach"
//
// # Session
//
// Session records one completed self-regulation exercise for the
// session log:
//
//	s := model.NewSession(model.SessionBreathing, 120, 7, 3, time.Now())
//
// # Strategy
//
// Strategy is one entry of the static calming-strategies catalog.
// The catalog itself lives in the strategy package; the favorite
// marker lives in config.Settings.
package model
