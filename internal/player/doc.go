// Package player provides looping single-track music playback.
//
// # State Machine
//
// A Player is in exactly one of three states:
//
//   - stopped: no pipeline, no current track
//   - playing: one pipeline streaming the current track
//   - paused: one pipeline suspended, current track remembered
//
// Play and PlayNext replace the pipeline, Pause and Resume flip
// between playing and paused, Stop tears everything down. Toggle maps
// a single key to the obvious action for the current state.
//
// # Pipelines
//
// Audio output runs through the Pipeline interface. The production
// implementation decodes a file with beep, loops it indefinitely,
// resamples it to a fixed speaker rate and applies the volume:
//
//	file -> decode -> loop -> resample -> volume -> ctrl -> speaker
//
// Tracks therefore repeat until the listener acts; a calming piece
// should not cut to silence after three minutes. A pipeline only ends
// on its own when the stream fails, in which case the player logs the
// error and returns to stopped.
//
// # Stale Callbacks
//
// The end-of-stream callback fires from the speaker's goroutine and
// may arrive after the pipeline it belongs to was already replaced.
// Each pipeline is stamped with a generation number and callbacks
// from older generations are dropped.
package player
