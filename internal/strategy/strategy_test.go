package strategy

import "testing"

func TestAll_CatalogShape(t *testing.T) {
	all := All()

	if len(all) != 8 {
		t.Fatalf("len(All()) = %d, want 8", len(all))
	}

	seen := map[string]bool{}
	for _, s := range all {
		if s.ID == "" || s.Icon == "" || s.Name == "" || s.Description == "" {
			t.Errorf("strategy %+v has empty fields", s)
		}
		if seen[s.ID] {
			t.Errorf("duplicate strategy ID %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	All()[0].Name = "mutated"
	if All()[0].Name == "mutated" {
		t.Error("All() exposes the internal catalog slice")
	}
}

func TestFind(t *testing.T) {
	if _, ok := Find("deep_breathing"); !ok {
		t.Error(`Find("deep_breathing") not found`)
	}
	if _, ok := Find("nope"); ok {
		t.Error(`Find("nope") unexpectedly found`)
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cold_water", "Cold water"},
		{"my own trick", "my own trick"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DisplayName(tt.input); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSuggestion_Bands(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "You seem calm. Great! Keep doing what you're doing."},
		{3, "You seem calm. Great! Keep doing what you're doing."},
		{4, "Getting a bit tense. Try a short breathing exercise."},
		{5, "Getting a bit tense. Try a short breathing exercise."},
		{6, "High stress. Take a break now. Try the breathing exercise or one of the strategies."},
		{7, "High stress. Take a break now. Try the breathing exercise or one of the strategies."},
		{8, "Very high stress. Press the emergency button or go to breathing immediately. You are safe. 💙"},
		{10, "Very high stress. Press the emergency button or go to breathing immediately. You are safe. 💙"},
	}

	for _, tt := range tests {
		if got := Suggestion(tt.level); got != tt.want {
			t.Errorf("Suggestion(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestStressEmoji(t *testing.T) {
	if got := StressEmoji(1); got != "😊" {
		t.Errorf("StressEmoji(1) = %q, want 😊", got)
	}
	if got := StressEmoji(10); got != "💥" {
		t.Errorf("StressEmoji(10) = %q, want 💥", got)
	}
	if got := StressEmoji(99); got != "😐" {
		t.Errorf("StressEmoji(99) = %q, want neutral fallback", got)
	}
}
