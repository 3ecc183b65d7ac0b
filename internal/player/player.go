package player

import (
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/yeager/lugn/internal/model"
)

// DefaultVolume is the starting volume. Deliberately gentle; the
// music is there to calm, not to startle.
const DefaultVolume = 0.3

// PlaybackState represents the current state of playback.
type PlaybackState string

// Playback states.
const (
	StateStopped PlaybackState = "stopped"
	StatePlaying PlaybackState = "playing"
	StatePaused  PlaybackState = "paused"
)

// TrackSource lists the tracks available for playback. It is consulted
// on every Play and PlayNext so the player always sees the current
// state of the music directories.
type TrackSource interface {
	Tracks() []model.Track
}

// Player plays one track at a time from a TrackSource, looping it
// until told otherwise.
//
// At most one pipeline exists at any moment: starting a track tears
// down whatever was playing before. All methods are safe for
// concurrent use.
//
// # Basic Usage
//
//	p := player.New(catalog, logger)
//	p.Play("")       // first track
//	p.PlayNext()     // following track, wrapping at the end
//	p.Toggle()       // pause
//	p.Toggle()       // resume
//	p.Stop()
type Player struct {
	mu sync.Mutex

	source TrackSource
	logger *zap.Logger

	pipeline Pipeline
	state    PlaybackState
	current  *model.Track
	volume   float64

	// generation identifies the active pipeline. End callbacks carry
	// the generation they were started with, so a callback from a
	// pipeline that has since been replaced is ignored.
	generation uint64

	newPipeline pipelineFactory
}

// New creates a Player reading tracks from source. A nil logger
// disables logging.
func New(source TrackSource, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		source:      source,
		logger:      logger,
		state:       StateStopped,
		volume:      DefaultVolume,
		newPipeline: newBeepPipeline,
	}
}

// Play starts playing the track with the given ID, replacing any
// current playback. An empty ID plays the first available track.
// Returns false if the track does not exist or cannot be played; an
// unknown ID leaves current playback untouched.
func (p *Player) Play(trackID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	tracks := p.source.Tracks()
	if len(tracks) == 0 {
		p.logger.Warn("no tracks available to play")
		return false
	}

	track := tracks[0]
	if trackID != "" {
		found := false
		for _, tr := range tracks {
			if tr.ID == trackID {
				track = tr
				found = true
				break
			}
		}
		if !found {
			p.logger.Warn("track not found", zap.String("track", trackID))
			return false
		}
	}

	return p.playTrackLocked(track)
}

// PlayNext plays the track after the current one, wrapping around at
// the end of the list. With nothing current, or when the current
// track has disappeared from the source, it starts from the first
// track. Returns false if there are no tracks or playback fails.
func (p *Player) PlayNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	tracks := p.source.Tracks()
	if len(tracks) == 0 {
		p.logger.Warn("no tracks available to play")
		return false
	}

	next := 0
	if p.current != nil {
		for i, tr := range tracks {
			if tr.ID == p.current.ID {
				next = (i + 1) % len(tracks)
				break
			}
		}
	}

	return p.playTrackLocked(tracks[next])
}

// playTrackLocked stops current playback and starts track. The caller
// must hold p.mu.
func (p *Player) playTrackLocked(track model.Track) bool {
	p.stopLocked()

	pipe, err := p.newPipeline(track.Path, p.volume)
	if err != nil {
		p.logger.Warn("cannot play track",
			zap.String("track", track.ID),
			zap.String("path", track.Path),
			zap.Error(err))
		return false
	}

	p.generation++
	generation := p.generation
	pipe.Start(func(err error) {
		p.onStreamEnd(generation, err)
	})

	p.pipeline = pipe
	current := track
	p.current = &current
	p.state = StatePlaying

	p.logger.Info("playing track",
		zap.String("track", track.ID),
		zap.String("title", track.Title))
	return true
}

// onStreamEnd handles a pipeline ending on its own. Pipelines loop,
// so this only happens when the stream fails.
func (p *Player) onStreamEnd(generation uint64, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A stale callback from a pipeline that was already replaced.
	if generation != p.generation {
		return
	}

	if err != nil {
		p.logger.Error("playback failed",
			zap.String("track", p.currentIDLocked()),
			zap.Error(err))
	} else {
		p.logger.Info("playback ended", zap.String("track", p.currentIDLocked()))
	}
	p.stopLocked()
}

// Pause suspends playback. The current track is remembered so Resume
// and PlayNext continue from it.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StatePlaying || p.pipeline == nil {
		return
	}
	p.pipeline.Pause()
	p.state = StatePaused
	p.logger.Debug("playback paused", zap.String("track", p.currentIDLocked()))
}

// Resume continues a paused track.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StatePaused || p.pipeline == nil {
		return
	}
	p.pipeline.Resume()
	p.state = StatePlaying
	p.logger.Debug("playback resumed", zap.String("track", p.currentIDLocked()))
}

// Stop ends playback and forgets the current track.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pipeline != nil {
		p.logger.Debug("playback stopped", zap.String("track", p.currentIDLocked()))
	}
	p.stopLocked()
}

// Toggle pauses a playing track, resumes a paused one, and otherwise
// starts playing from the first track.
func (p *Player) Toggle() {
	p.mu.Lock()
	playing := p.state == StatePlaying
	paused := p.state == StatePaused && p.pipeline != nil
	p.mu.Unlock()

	switch {
	case playing:
		p.Pause()
	case paused:
		p.Resume()
	default:
		p.Play("")
	}
}

// SetVolume sets the playback volume, clamped to [0, 1]. The new
// volume applies to the current pipeline immediately and to every
// pipeline started afterwards. Returns the volume actually applied.
func (p *Player) SetVolume(volume float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = lo.Clamp(volume, 0, 1)
	if p.pipeline != nil {
		p.pipeline.SetVolume(p.volume)
	}
	return p.volume
}

// Volume returns the current volume in [0, 1].
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// State returns the current playback state.
func (p *Player) State() PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// IsPlaying returns true while a track is actively playing.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == StatePlaying
}

// CurrentTrack returns the playing or paused track, if any.
func (p *Player) CurrentTrack() (model.Track, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return model.Track{}, false
	}
	return *p.current, true
}

// Tracks lists the tracks available from the source.
func (p *Player) Tracks() []model.Track {
	return p.source.Tracks()
}

// stopLocked tears down the pipeline and resets to stopped. The
// caller must hold p.mu.
func (p *Player) stopLocked() {
	p.generation++
	if p.pipeline != nil {
		p.pipeline.Close()
		p.pipeline = nil
	}
	p.current = nil
	p.state = StateStopped
}

// currentIDLocked returns the current track ID for logging. The
// caller must hold p.mu.
func (p *Player) currentIDLocked() string {
	if p.current == nil {
		return ""
	}
	return p.current.ID
}
