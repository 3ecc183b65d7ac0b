package model

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the layout used for session timestamps, chosen for
// readability in exported files rather than machine precision.
const DateFormat = "2006-01-02 15:04"

// Session types recorded in the session log.
const (
	// SessionBreathing is a completed guided breathing exercise.
	SessionBreathing = "breathing"

	// SessionEmergency is an acute calm-down flow.
	SessionEmergency = "emergency"
)

// Session records one completed self-regulation exercise.
//
// Sessions are appended to the session log and can be exported for
// sharing with a therapist or caregiver. Stress ratings use the 1–10
// scale; zero means the user skipped the rating.
//
// Example:
//
//	s := model.NewSession(model.SessionBreathing, 120, 7, 3, time.Now())
//	// s.Date = "2026-08-22 14:30", s.ID = random uuid
type Session struct {
	// ID uniquely identifies the session entry.
	ID string `json:"id" yaml:"id"`

	// Date is the local start time, formatted with DateFormat.
	Date string `json:"date" yaml:"date"`

	// Type is the kind of exercise, e.g. SessionBreathing.
	Type string `json:"type" yaml:"type"`

	// DurationSeconds is how long the exercise lasted.
	DurationSeconds int `json:"duration" yaml:"duration"`

	// StressBefore is the self-reported stress level (1–10) before
	// the exercise. Zero if not recorded.
	StressBefore int `json:"stress_before" yaml:"stress_before"`

	// StressAfter is the self-reported stress level (1–10) after
	// the exercise. Zero if not recorded.
	StressAfter int `json:"stress_after" yaml:"stress_after"`
}

// NewSession creates a Session stamped with the given start time.
//
// Parameters:
//   - sessionType: One of the Session* constants
//   - durationSeconds: Exercise length in seconds
//   - stressBefore, stressAfter: 1–10 ratings, zero when skipped
//   - start: Local start time, formatted into Date
func NewSession(sessionType string, durationSeconds, stressBefore, stressAfter int, start time.Time) Session {
	return Session{
		ID:              uuid.NewString(),
		Date:            start.Format(DateFormat),
		Type:            sessionType,
		DurationSeconds: durationSeconds,
		StressBefore:    stressBefore,
		StressAfter:     stressAfter,
	}
}
