package model

import (
	"testing"
	"time"
)

func TestTitleFromPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/usr/share/lugn/music/clair_de_lune.ogg", "Clair De Lune"},
		{"/home/u/music/rain sounds.mp3", "Rain Sounds"},
		{"forest_walk.flac", "Forest Walk"},
		{"single.wav", "Single"},
		{"already Spaced title.opus", "Already Spaced Title"},
		{"__odd___underscores__.mp3", "Odd Underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := TitleFromPath(tt.input)
			if got != tt.want {
				t.Errorf("TitleFromPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrack_DisplayName(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		want  string
	}{
		{
			name:  "with composer",
			track: NewTrack("bach_air", "/m/bach_air.ogg", "Air on the G String", "J.S. Bach"),
			want:  "Air on the G String — J.S. Bach",
		},
		{
			name:  "without composer",
			track: NewTrack("rain", "/m/rain.mp3", "Rain", ""),
			want:  "Rain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewSession(t *testing.T) {
	start := time.Date(2026, 8, 22, 14, 30, 45, 0, time.Local)
	s := NewSession(SessionBreathing, 120, 7, 3, start)

	if s.ID == "" {
		t.Error("NewSession should assign a non-empty ID")
	}
	if s.Date != "2026-08-22 14:30" {
		t.Errorf("Session.Date = %q, want %q", s.Date, "2026-08-22 14:30")
	}
	if s.Type != SessionBreathing {
		t.Errorf("Session.Type = %q, want %q", s.Type, SessionBreathing)
	}
	if s.DurationSeconds != 120 {
		t.Errorf("Session.DurationSeconds = %d, want 120", s.DurationSeconds)
	}
	if s.StressBefore != 7 || s.StressAfter != 3 {
		t.Errorf("stress ratings = %d/%d, want 7/3", s.StressBefore, s.StressAfter)
	}
}

func TestNewSession_UniqueIDs(t *testing.T) {
	a := NewSession(SessionEmergency, 0, 0, 0, time.Now())
	b := NewSession(SessionEmergency, 0, 0, 0, time.Now())
	if a.ID == b.ID {
		t.Errorf("two sessions got the same ID %q", a.ID)
	}
}
