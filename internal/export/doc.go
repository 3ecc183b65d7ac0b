// Package export encodes the session log for sharing, e.g. with a
// therapist or caregiver.
//
// Supported formats: CSV (header plus one row per session), JSON
// (indented array), and YAML (sequence). The session store stays
// format-agnostic; everything format-shaped lives here.
package export
