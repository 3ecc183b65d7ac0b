package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"

	"github.com/yeager/lugn/internal/model"
)

// touch creates an empty file.
func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
}

// writeTaggedMP3 writes a file carrying only an ID3v2 tag, which is
// all the probe reads.
func writeTaggedMP3(t *testing.T, path, title, composer string) {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	if title != "" {
		tag.SetTitle(title)
	}
	if composer != "" {
		tag.AddTextFrame("TCOM", id3v2.EncodingUTF8, composer)
	}

	var buf bytes.Buffer
	if _, err := tag.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func paths(tracks []model.Track) []string {
	out := make([]string, len(tracks))
	for i, tr := range tracks {
		out[i] = tr.Path
	}
	return out
}

func TestCatalog_BundledCatalogOrder(t *testing.T) {
	dir := t.TempDir()
	// Create out of catalog order; the listing must not care.
	touch(t, filepath.Join(dir, "beethoven_moonlight.mp3"))
	touch(t, filepath.Join(dir, "satie_gymnopedie1.mp3"))

	cat := New([]string{dir}, nil)
	tracks := cat.Tracks()

	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}
	if tracks[0].ID != "satie_gymnopedie1" || tracks[1].ID != "beethoven_moonlight" {
		t.Errorf("order = %s, %s; want catalog order satie, beethoven", tracks[0].ID, tracks[1].ID)
	}
	if tracks[0].Title != "Gymnopédie No. 1" || tracks[0].Composer != "Erik Satie" {
		t.Errorf("bundled metadata = %q/%q, want catalog values", tracks[0].Title, tracks[0].Composer)
	}
}

func TestCatalog_BundledFirstDirectoryWins(t *testing.T) {
	system := t.TempDir()
	user := t.TempDir()
	touch(t, filepath.Join(system, "bach_air.mp3"))
	touch(t, filepath.Join(user, "bach_air.mp3"))

	cat := New([]string{system, user}, nil)
	tracks := cat.Tracks()

	var bundled []model.Track
	for _, tr := range tracks {
		if tr.ID == "bach_air" {
			bundled = append(bundled, tr)
		}
	}
	if len(bundled) != 1 {
		t.Fatalf("bach_air listed %d times, want 1", len(bundled))
	}
	if bundled[0].Path != filepath.Join(system, "bach_air.mp3") {
		t.Errorf("bundled path = %q, want the first directory's copy", bundled[0].Path)
	}

	// The user directory's copy is a distinct file, so it still shows
	// up as a discovered track.
	if len(tracks) != 2 {
		t.Errorf("got %d tracks, want bundled + user copy", len(tracks))
	}
}

func TestCatalog_DiscoveredOrderingAndTitles(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	touch(t, filepath.Join(first, "zebra_song.ogg"))
	touch(t, filepath.Join(first, "autumn_rain.wav"))
	touch(t, filepath.Join(second, "morning_birds.opus"))

	cat := New([]string{first, second}, nil)
	tracks := cat.Tracks()

	want := []string{
		filepath.Join(first, "autumn_rain.wav"),
		filepath.Join(first, "zebra_song.ogg"),
		filepath.Join(second, "morning_birds.opus"),
	}
	got := paths(tracks)
	if len(got) != len(want) {
		t.Fatalf("got %d tracks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("track %d = %q, want %q (directory order, then filename order)", i, got[i], want[i])
		}
	}

	if tracks[0].Title != "Autumn Rain" {
		t.Errorf("derived title = %q, want %q", tracks[0].Title, "Autumn Rain")
	}
	if tracks[0].ID != "autumn_rain.wav" {
		t.Errorf("discovered ID = %q, want file name", tracks[0].ID)
	}
	if tracks[0].Composer != "" {
		t.Errorf("discovered composer = %q, want empty", tracks[0].Composer)
	}
}

func TestCatalog_ExtensionAllowList(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "keep.mp3"))
	touch(t, filepath.Join(dir, "KEEP2.MP3"))
	touch(t, filepath.Join(dir, "skip.txt"))
	touch(t, filepath.Join(dir, "skip.m4a"))
	touch(t, filepath.Join(dir, "noextension"))

	cat := New([]string{dir}, nil)
	tracks := cat.Tracks()

	if len(tracks) != 2 {
		t.Fatalf("got %d tracks %v, want the 2 mp3 files", len(tracks), paths(tracks))
	}
}

func TestCatalog_NoDuplicateResolvedPaths(t *testing.T) {
	realDir := t.TempDir()
	linkDir := t.TempDir()
	target := filepath.Join(realDir, "forest_walk.flac")
	touch(t, target)

	if err := os.Symlink(target, filepath.Join(linkDir, "forest_walk.flac")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	cat := New([]string{realDir, linkDir}, nil)
	tracks := cat.Tracks()

	if len(tracks) != 1 {
		t.Errorf("symlinked file listed %d times, want 1: %v", len(tracks), paths(tracks))
	}
}

func TestCatalog_MissingDirectoriesAreSilent(t *testing.T) {
	cat := New([]string{"/nonexistent/lugn-a", "/nonexistent/lugn-b"}, nil)

	if tracks := cat.Tracks(); len(tracks) != 0 {
		t.Errorf("got %d tracks from missing dirs, want 0", len(tracks))
	}
}

func TestCatalog_ID3Enrichment(t *testing.T) {
	dir := t.TempDir()
	writeTaggedMP3(t, filepath.Join(dir, "spring_rain.mp3"), "Spring Rain Suite", "Jan Johansson")
	touch(t, filepath.Join(dir, "untagged_tune.mp3"))

	cat := New([]string{dir}, nil)
	tracks := cat.Tracks()

	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}

	byID := map[string]model.Track{}
	for _, tr := range tracks {
		byID[tr.ID] = tr
	}

	tagged := byID["spring_rain.mp3"]
	if tagged.Title != "Spring Rain Suite" || tagged.Composer != "Jan Johansson" {
		t.Errorf("tagged track = %q/%q, want ID3 values", tagged.Title, tagged.Composer)
	}

	untagged := byID["untagged_tune.mp3"]
	if untagged.Title != "Untagged Tune" {
		t.Errorf("untagged track title = %q, want filename-derived", untagged.Title)
	}
}

func TestCatalog_BundledKeepCatalogMetadata(t *testing.T) {
	dir := t.TempDir()
	// Even a bundled file with its own (possibly wrong) tags keeps the
	// catalog's title and composer.
	writeTaggedMP3(t, filepath.Join(dir, "debussy_clair_de_lune.mp3"), "Wrong Title", "Wrong Composer")

	cat := New([]string{dir}, nil)
	tracks := cat.Tracks()

	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}
	if tracks[0].Title != "Clair de Lune" || tracks[0].Composer != "Claude Debussy" {
		t.Errorf("bundled metadata = %q/%q, want catalog values", tracks[0].Title, tracks[0].Composer)
	}
}
