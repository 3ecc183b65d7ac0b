// Package session persists the exercise log.
//
// The log is a JSON array in the XDG config directory, capped at the
// most recent 200 entries. Reads are best-effort (a broken file reads
// as empty); writes report their errors.
package session
