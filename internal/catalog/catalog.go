package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	ioutils "github.com/yeager/lugn/internal/io"
	"github.com/yeager/lugn/internal/model"
)

// bundledTrack is one entry of the fixed catalog shipped with the
// application. The file is looked up by exact name across the search
// directories; the first directory containing it wins.
type bundledTrack struct {
	id       string
	file     string
	title    string
	composer string
}

var bundledTracks = []bundledTrack{
	{
		id:       "satie_gymnopedie1",
		file:     "satie_gymnopedie1.mp3",
		title:    "Gymnopédie No. 1",
		composer: "Erik Satie",
	},
	{
		id:       "debussy_clair_de_lune",
		file:     "debussy_clair_de_lune.mp3",
		title:    "Clair de Lune",
		composer: "Claude Debussy",
	},
	{
		id:       "bach_air",
		file:     "bach_air.mp3",
		title:    "Air on the G String",
		composer: "J.S. Bach",
	},
	{
		id:       "beethoven_moonlight",
		file:     "beethoven_moonlight.mp3",
		title:    "Moonlight Sonata",
		composer: "Ludwig van Beethoven",
	},
}

// audioExtensions is the allow-list for scanned files, matched
// case-insensitively.
var audioExtensions = []string{".mp3", ".ogg", ".opus", ".wav", ".flac"}

// Catalog discovers playable tracks from an ordered list of music
// directories.
//
// The list a scan returns is bundled tracks first (in catalog order;
// entries missing from disk are silently omitted), then every other
// audio file found in the directories, in directory order and then
// lexicographic filename order. No resolved path appears twice, even
// when directories overlap through symlinks.
//
// Example:
//
//	cat := catalog.New(catalog.DefaultDirs(), logger)
//	for _, track := range cat.Tracks() {
//	    fmt.Println(track.DisplayName())
//	}
type Catalog struct {
	dirs   []string
	logger *zap.Logger
}

// New creates a Catalog over the given directories, searched in order.
func New(dirs []string, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{dirs: dirs, logger: logger}
}

// DefaultDirs returns the standard search order: the system-wide
// bundled music, then the user's data and config music directories.
func DefaultDirs() []string {
	return []string{
		filepath.Join("/usr/share", "lugn", "music"),
		filepath.Join(ioutils.UserDataDir(), "music"),
		filepath.Join(ioutils.UserConfigDir(), "music"),
	}
}

// Dirs returns the search directories in order.
func (c *Catalog) Dirs() []string {
	out := make([]string, len(c.dirs))
	copy(out, c.dirs)
	return out
}

// Tracks returns every available track.
//
// Filesystem trouble (missing directory, unreadable entry) is treated
// as "no tracks here" and never surfaces as an error. MP3 files found
// outside the bundled catalog are enriched from their ID3 tags where
// possible.
func (c *Catalog) Tracks() []model.Track {
	seen := make(map[string]bool)
	var tracks []model.Track

	for _, b := range bundledTracks {
		path, ok := c.findFile(b.file)
		if !ok {
			continue
		}
		resolved := resolvePath(path)
		if seen[resolved] {
			continue
		}
		seen[resolved] = true
		tracks = append(tracks, model.NewTrack(b.id, path, b.title, b.composer))
	}

	bundledCount := len(tracks)

	for _, dir := range c.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if !hasAudioExtension(name) {
				continue
			}
			path := filepath.Join(dir, name)
			resolved := resolvePath(path)
			if seen[resolved] {
				continue
			}
			seen[resolved] = true
			tracks = append(tracks, model.NewTrack(name, path, model.TitleFromPath(path), ""))
		}
	}

	c.enrichFromTags(tracks[bundledCount:])

	return tracks
}

// findFile locates a bundled file by exact name, first directory wins.
func (c *Catalog) findFile(filename string) (string, bool) {
	for _, dir := range c.dirs {
		path := filepath.Join(dir, filename)
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// resolvePath canonicalizes a path for duplicate detection. Symlink
// resolution failure falls back to lexical cleaning; discovery must
// never error out.
func resolvePath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return filepath.Clean(path)
}

func hasAudioExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range audioExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
