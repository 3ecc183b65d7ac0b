package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yeager/lugn/internal/model"
)

func sampleSessions() []model.Session {
	start := time.Date(2026, 8, 22, 14, 30, 0, 0, time.Local)
	return []model.Session{
		model.NewSession(model.SessionBreathing, 120, 7, 3, start),
		model.NewSession(model.SessionEmergency, 0, 9, 0, start.Add(2*time.Hour)),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	sessions := sampleSessions()

	if err := Write(&buf, FormatCSV, sessions); err != nil {
		t.Fatalf("Write(csv) error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "date,type,duration_seconds,stress_before,stress_after" {
		t.Errorf("csv header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "breathing,120,7,3") {
		t.Errorf("first row = %q, want breathing session fields", lines[1])
	}
	if !strings.Contains(lines[2], "emergency,0,9,0") {
		t.Errorf("second row = %q, want emergency session fields", lines[2])
	}
}

func TestWrite_JSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	sessions := sampleSessions()

	if err := Write(&buf, FormatJSON, sessions); err != nil {
		t.Fatalf("Write(json) error = %v", err)
	}

	var decoded []model.Session
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("exported json does not parse: %v", err)
	}
	if len(decoded) != len(sessions) {
		t.Fatalf("round trip produced %d sessions, want %d", len(decoded), len(sessions))
	}
	for i := range sessions {
		if decoded[i] != sessions[i] {
			t.Errorf("session %d = %+v, want %+v", i, decoded[i], sessions[i])
		}
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	sessions := sampleSessions()

	if err := Write(&buf, FormatYAML, sessions); err != nil {
		t.Fatalf("Write(yaml) error = %v", err)
	}

	var decoded []model.Session
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("exported yaml does not parse: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("yaml lists %d sessions, want 2", len(decoded))
	}
	if decoded[0].Type != model.SessionBreathing || decoded[1].Type != model.SessionEmergency {
		t.Errorf("yaml session types = %q/%q", decoded[0].Type, decoded[1].Type)
	}
}

func TestWrite_EmptyLog(t *testing.T) {
	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, format, nil); err != nil {
				t.Errorf("Write(%s, empty) error = %v", format, err)
			}
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, Format("xml"), nil); err == nil {
		t.Error("Write(xml) should fail")
	}
}
