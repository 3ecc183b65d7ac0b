package ioutils

import (
	"os"
	"path/filepath"
)

// appDirName is the per-application directory created under each XDG
// base directory.
const appDirName = "lugn"

// UserConfigDir returns the application config directory,
// $XDG_CONFIG_HOME/lugn, falling back to ~/.config/lugn.
//
// The directory is not created; callers that write use EnsureDir first.
//
// Example:
//
//	path := filepath.Join(ioutils.UserConfigDir(), "settings.json")
func UserConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// UserDataDir returns the application data directory,
// $XDG_DATA_HOME/lugn, falling back to ~/.local/share/lugn.
// User-supplied music lives in its music/ subdirectory.
func UserDataDir() string {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// UserStateDir returns the application state directory,
// $XDG_STATE_HOME/lugn, falling back to ~/.local/state/lugn.
// The log file is written here.
func UserStateDir() string {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// xdgDir resolves one XDG base directory plus the application subdir.
// A missing home directory degrades to the current directory rather
// than failing; path resolution is never fatal.
func xdgDir(envVar, homeSuffix string) string {
	if base := os.Getenv(envVar); base != "" {
		return filepath.Join(base, appDirName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, homeSuffix, appDirName)
}

// EnsureDir creates a directory and all parent directories if they
// don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := ioutils.EnsureDir(ioutils.UserConfigDir())
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
