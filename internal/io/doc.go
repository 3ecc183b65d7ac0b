// Package ioutils provides filesystem path utilities for lugn.
//
// This package contains functions for:
//   - Resolving XDG base directories (config, data, state)
//   - Directory creation
//
// # Path Resolution
//
// Each resolver honors its XDG environment variable and falls back to
// the conventional home subdirectory:
//
//	ioutils.UserConfigDir() // $XDG_CONFIG_HOME/lugn or ~/.config/lugn
//	ioutils.UserDataDir()   // $XDG_DATA_HOME/lugn or ~/.local/share/lugn
//	ioutils.UserStateDir()  // $XDG_STATE_HOME/lugn or ~/.local/state/lugn
//
// Resolution never fails; a missing home directory degrades to a
// relative path.
//
// # Directory Creation
//
//	err := ioutils.EnsureDir(ioutils.UserConfigDir())
package ioutils
