package model

import (
	"path/filepath"
	"strings"
)

// Track represents one playable audio file.
//
// Track contains everything the player and the UI need to know about
// a piece of music:
//   - ID for stable identification (the file name for discovered files)
//   - Path, the absolute location of the audio file on disk
//   - Title and optional Composer for display
//
// Tracks are discovered from the music directories at runtime, never
// persisted. Two tracks are the same track exactly when their resolved
// paths are equal.
//
// Example:
//
//	track := model.NewTrack("satie_gymnopedie1", "/usr/share/lugn/music/satie_gymnopedie1.ogg",
//	    "Gymnopédie No. 1", "Erik Satie")
//	fmt.Println(track.DisplayName()) // "Gymnopédie No. 1 — Erik Satie"
type Track struct {
	// ID identifies the track. Bundled tracks use their catalog ID;
	// discovered files use their file name.
	ID string

	// Path is the absolute path to the audio file.
	Path string

	// Title is the human-readable track title.
	Title string

	// Composer is the composer or artist name.
	// Empty string if unknown.
	Composer string
}

// NewTrack creates a new Track.
//
// Parameters:
//   - id: Stable identifier (catalog ID or file name)
//   - path: Absolute path to the audio file
//   - title: Display title
//   - composer: Composer name (empty string if unknown)
func NewTrack(id, path, title, composer string) Track {
	return Track{
		ID:       id,
		Path:     path,
		Title:    title,
		Composer: composer,
	}
}

// DisplayName returns the title, suffixed with the composer when one
// is known.
//
// Example:
//
//	Track{Title: "Clair de Lune", Composer: "Claude Debussy"}.DisplayName()
//	// "Clair de Lune — Claude Debussy"
func (t Track) DisplayName() string {
	if t.Composer == "" {
		return t.Title
	}
	return t.Title + " — " + t.Composer
}

// TitleFromPath derives a display title from an audio file path.
//
// The extension is stripped, underscores become spaces, and each word
// is capitalized. Used for discovered files that carry no readable
// metadata.
//
// Example:
//
//	model.TitleFromPath("/home/u/music/clair_de_lune.ogg") // "Clair De Lune"
func TitleFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := strings.Fields(strings.ReplaceAll(stem, "_", " "))
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
