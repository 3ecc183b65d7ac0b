package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GiGurra/cmder"
	"go.uber.org/zap"
)

const (
	// piperModel is the Swedish neural voice used for synthesis.
	piperModel = "sv_SE-nst-medium"

	// piperSampleRate matches the raw output rate of the piper model.
	piperSampleRate = "22050"

	// commandTimeout caps each external command. Speech that takes
	// longer than this has gone wrong.
	commandTimeout = 10 * time.Second
)

// Speaker reads short phrases aloud using whatever speech synthesis
// the system offers: piper with a Swedish voice first, espeak-ng as
// the fallback.
type Speaker struct {
	logger *zap.Logger

	// synth performs the actual synthesis. Swapped out in tests.
	synth func(text string)
}

// New creates a Speaker. A nil logger disables logging.
func New(logger *zap.Logger) *Speaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Speaker{logger: logger}
	s.synth = s.speak
	return s
}

// Say queues text for speech and returns immediately. Blank text is
// ignored. Synthesis failures are logged, never surfaced; speech is
// a comfort, not a requirement.
func (s *Speaker) Say(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	go s.synth(text)
}

// SayWait speaks text and blocks until playback finishes. For callers
// whose process would otherwise exit mid-sentence.
func (s *Speaker) SayWait(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	s.synth(text)
}

func (s *Speaker) speak(text string) {
	ctx := context.Background()

	err := s.sayWithPiper(ctx, text)
	if err == nil {
		return
	}
	s.logger.Debug("piper speech failed, trying espeak-ng", zap.Error(err))

	if err := s.sayWithEspeak(ctx, text); err != nil {
		s.logger.Debug("espeak-ng speech failed", zap.Error(err))
	}
}

// sayWithPiper synthesizes text to raw PCM with piper and plays it
// through aplay.
func (s *Speaker) sayWithPiper(ctx context.Context, text string) error {
	synth := cmder.New("piper", "--model", piperModel, "--output-raw").
		WithStdIn(strings.NewReader(text)).
		WithAttemptTimeout(commandTimeout).
		Run(ctx)
	if synth.Err != nil {
		return fmt.Errorf("piper synthesis failed: %w", synth.Err)
	}
	if synth.StdOut == "" {
		return errors.New("piper produced no audio")
	}

	play := cmder.New("aplay", "-r", piperSampleRate, "-f", "S16_LE", "-q").
		WithStdIn(strings.NewReader(synth.StdOut)).
		WithAttemptTimeout(commandTimeout).
		Run(ctx)
	if play.Err != nil {
		return fmt.Errorf("aplay playback failed: %w", play.Err)
	}
	return nil
}

func (s *Speaker) sayWithEspeak(ctx context.Context, text string) error {
	res := cmder.New("espeak-ng", "-v", "sv", text).
		WithAttemptTimeout(commandTimeout).
		Run(ctx)
	if res.Err != nil {
		return fmt.Errorf("espeak-ng failed: %w", res.Err)
	}
	return nil
}
