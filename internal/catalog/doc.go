// Package catalog discovers the playable tracks on disk.
//
// # Directories
//
// Tracks are collected from an ordered list of directories, by default:
//
//  1. /usr/share/lugn/music (system-wide, bundled tracks)
//  2. $XDG_DATA_HOME/lugn/music (per-user)
//  3. $XDG_CONFIG_HOME/lugn/music (per-user, legacy location)
//
// Directories that do not exist are skipped silently so a fresh
// install with no music yet still starts.
//
// # Listing Order
//
// The listing is deterministic: the bundled classical pieces come
// first, in catalog order, followed by every other audio file grouped
// by directory and sorted by file name within each directory. A file
// reachable through more than one directory entry (for example via a
// symlink) is listed once.
//
// # Metadata
//
// Bundled tracks carry curated titles and composers. Discovered
// tracks derive their title from the file name; MP3 files are
// additionally probed for ID3 title and composer frames, a few files
// at a time.
//
// # Basic Usage
//
//	cat := catalog.New(catalog.DefaultDirs(), logger)
//	for _, track := range cat.Tracks() {
//	    fmt.Println(track.DisplayName())
//	}
//
// # Watching
//
// Watch returns a Watcher whose Events channel coalesces file system
// changes in the music directories, so a UI can refresh its track
// list when files are added or removed:
//
//	watcher, err := cat.Watch()
//	if err == nil {
//	    defer watcher.Close()
//	    go func() {
//	        for range watcher.Events {
//	            refresh()
//	        }
//	    }()
//	}
package catalog
