package player

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// outputSampleRate is the fixed rate the speaker runs at. Every track
// is resampled to it, so files with different rates can follow each
// other through the same speaker.
const outputSampleRate = beep.SampleRate(44100)

// resampleQuality trades CPU for resampling accuracy. 4 is beep's
// recommended middle ground.
const resampleQuality = 4

// Pipeline is one playable audio stream. A Pipeline plays exactly one
// file, looping it until Close is called or the stream fails.
type Pipeline interface {
	// Start begins playback. onEnd is called at most once, from its
	// own goroutine, when the stream stops on its own; a non-nil
	// error means the stream failed mid-play. Looping streams only
	// end on failure.
	Start(onEnd func(error))

	// Pause suspends playback, keeping the stream position.
	Pause()

	// Resume continues a paused stream.
	Resume()

	// SetVolume changes the playback volume, where 0 is silent and 1
	// is full volume.
	SetVolume(volume float64)

	// Close stops playback and releases the underlying file.
	Close()
}

// pipelineFactory builds a Pipeline for an audio file. Tests swap in
// a fake so the state machine can run without a sound card.
type pipelineFactory func(path string, volume float64) (Pipeline, error)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the audio device once for the whole process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(outputSampleRate, outputSampleRate.N(100*time.Millisecond))
	})
	return speakerErr
}

// beepPipeline plays a single file through the beep speaker:
// decode, loop forever, resample to the speaker rate, apply volume.
type beepPipeline struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
}

// newBeepPipeline opens and decodes path, ready to Start.
func newBeepPipeline(path string, volume float64) (Pipeline, error) {
	if err := initSpeaker(); err != nil {
		return nil, fmt.Errorf("failed to initialize audio output: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}

	streamer, format, err := decode(path, file)
	if err != nil {
		file.Close()
		return nil, err
	}

	loop, err := beep.Loop2(streamer)
	if err != nil {
		streamer.Close()
		file.Close()
		return nil, fmt.Errorf("failed to loop stream: %w", err)
	}

	p := &beepPipeline{
		file:     file,
		streamer: streamer,
		volume: &effects.Volume{
			Streamer: beep.Resample(resampleQuality, format.SampleRate, outputSampleRate, loop),
			Base:     2,
		},
	}
	// Not yet attached to the speaker, no lock needed.
	p.applyVolume(volume)
	p.ctrl = &beep.Ctrl{Streamer: p.volume}

	return p, nil
}

// decode picks a decoder from the file extension.
func decode(path string, file *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		return mp3.Decode(file)
	case ".wav":
		return wav.Decode(file)
	case ".ogg":
		return vorbis.Decode(file)
	case ".flac":
		return flac.Decode(file)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q", ext)
	}
}

func (p *beepPipeline) Start(onEnd func(error)) {
	// The callback runs inside the speaker loop with its lock held,
	// so hand the result off to a fresh goroutine before the caller
	// touches the speaker again.
	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		err := p.ctrl.Err()
		go onEnd(err)
	})))
}

func (p *beepPipeline) Pause() {
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

func (p *beepPipeline) Resume() {
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
}

func (p *beepPipeline) SetVolume(volume float64) {
	speaker.Lock()
	p.applyVolume(volume)
	speaker.Unlock()
}

// applyVolume maps linear volume to beep's exponential scale. Base 2
// with exponent log2(v) yields a gain of exactly v, and 0 switches to
// the Silent flag since log2(0) has no value.
func (p *beepPipeline) applyVolume(volume float64) {
	if volume <= 0 {
		p.volume.Silent = true
		return
	}
	p.volume.Silent = false
	p.volume.Volume = math.Log2(volume)
}

func (p *beepPipeline) Close() {
	speaker.Clear()
	p.streamer.Close()
	p.file.Close()
}
