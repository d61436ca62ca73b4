package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/core"
)

// Engine synthesizes cues and plays them through the beep speaker.
// Each cue is rendered once into a PCM buffer and replayed from cache,
// so the hot path never synthesizes.
type Engine struct {
	config *Config

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu       sync.Mutex // Protects cache and lastPlay
	cache    [core.SoundTypeCount]*beep.Buffer
	lastPlay [core.SoundTypeCount]time.Time
}

// NewEngine creates an audio engine
func NewEngine(cfg ...*Config) *Engine {
	config := DefaultConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		config = cfg[0]
	}

	e := &Engine{config: config}
	e.muted.Store(!config.Enabled)
	return e
}

// Start opens the speaker. A device failure drops to silent mode rather
// than erroring; the game runs without sound.
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	rate := beep.SampleRate(e.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferLength)); err != nil {
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil // Silent mode, not an error
	}

	e.running.Store(true)
	return nil
}

// Stop closes the speaker
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	if !e.silentMode.Load() {
		speaker.Close()
	}
}

// Play queues a cue for playback. Returns false when the engine is
// stopped, muted, silent, or throttling a repeat of the same cue.
func (e *Engine) Play(st core.SoundType) bool {
	if !e.running.Load() || e.muted.Load() || e.silentMode.Load() {
		return false
	}
	if st < 0 || st >= core.SoundTypeCount {
		return false
	}

	e.mu.Lock()
	now := time.Now()
	if now.Sub(e.lastPlay[st]) < constant.MinSoundGap {
		e.mu.Unlock()
		return false
	}
	e.lastPlay[st] = now

	buf := e.cache[st]
	if buf == nil {
		buf = e.render(st)
		e.cache[st] = buf
	}
	e.mu.Unlock()

	speaker.Play(buf.Streamer(0, buf.Len()))
	return true
}

// render pulls one cue's streamer into a replayable buffer
func (e *Engine) render(st core.SoundType) *beep.Buffer {
	format := beep.Format{
		SampleRate:  beep.SampleRate(e.config.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}

	buf := beep.NewBuffer(format)
	buf.Append(Synthesize(st, e.config))
	return buf
}

// ToggleMute flips the mute flag, returning the new muted state
func (e *Engine) ToggleMute() bool {
	newMute := !e.muted.Load()
	e.muted.Store(newMute)
	return newMute
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsRunning reports whether Start succeeded, including silent mode
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}
