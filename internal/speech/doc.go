// Package speech reads short reassuring phrases aloud.
//
// Synthesis is fire and forget: Say returns immediately and failures
// are swallowed after a debug log entry, since a missing speech engine
// must never get in the way of the rest of the app.
//
// Two engines are tried in order:
//
//  1. piper with the sv_SE-nst-medium voice, its raw output piped to
//     aplay
//  2. espeak-ng with the Swedish voice
//
// Both are external commands; nothing is spoken on systems without
// them.
package speech
