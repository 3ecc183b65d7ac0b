// Package strategy holds the static calming-strategies catalog and
// the 1–10 stress scale (emoji faces, scale marks, suggestion texts).
//
// Both are pure data with lookup helpers; the user's favorite strategy
// is persisted in config.Settings, not here.
package strategy
