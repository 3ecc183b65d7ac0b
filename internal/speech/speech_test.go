package speech

import (
	"testing"
	"time"
)

func TestSpeaker_SayDispatchesAsync(t *testing.T) {
	spoken := make(chan string, 1)

	s := New(nil)
	s.synth = func(text string) { spoken <- text }

	s.Say("Du är trygg")

	select {
	case got := <-spoken:
		if got != "Du är trygg" {
			t.Errorf("synthesized %q, want the original text", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Say never dispatched to the synthesizer")
	}
}

func TestSpeaker_SayWaitRunsSynchronously(t *testing.T) {
	var spoken []string

	s := New(nil)
	s.synth = func(text string) { spoken = append(spoken, text) }

	s.SayWait("Ta ett djupt andetag")

	if len(spoken) != 1 || spoken[0] != "Ta ett djupt andetag" {
		t.Errorf("spoken = %v, want the text synthesized before returning", spoken)
	}
}

func TestSpeaker_SayIgnoresBlankText(t *testing.T) {
	spoken := make(chan string, 1)

	s := New(nil)
	s.synth = func(text string) { spoken <- text }

	s.Say("")
	s.Say("   \n\t")
	s.SayWait(" ")

	select {
	case got := <-spoken:
		t.Errorf("blank text %q reached the synthesizer", got)
	case <-time.After(50 * time.Millisecond):
	}
}
