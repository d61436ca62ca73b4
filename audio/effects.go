package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/core"
)

// cue is a finite oscillator with linear attack/release shaping baked in
type cue struct {
	wave     WaveType
	freq     float64
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	attack   int
	release  int
}

func newCue(wave WaveType, freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &cue{
		wave:    wave,
		freq:    freq,
		rate:    rate,
		total:   rate.N(duration),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (c *cue) Stream(samples [][2]float64) (n int, ok bool) {
	if c.position >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.position >= c.total {
			// Partial batch; the next call reports drained
			return i, true
		}

		var val float64
		switch c.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * c.phase)
		case WaveSquare:
			if c.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (c.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		vol := 1.0
		if c.attack > 0 && c.position < c.attack {
			vol = float64(c.position) / float64(c.attack)
		}
		if tail := c.total - c.position; c.release > 0 && tail < c.release {
			vol = math.Min(vol, float64(tail)/float64(c.release))
		}

		samples[i][0] = val * vol
		samples[i][1] = val * vol

		c.phase += c.freq / float64(c.rate)
		c.phase -= math.Floor(c.phase) // Keep in [0, 1)
		c.position++
	}
	return len(samples), true
}

func (c *cue) Err() error { return nil }

// newVolume wraps a streamer with a gain stage.
// math.Log2(0) is -Inf, so zero volume switches to silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue synthesis

// crashCue is a low saw thump for obstacle impacts
func crashCue(cfg *Config, rate beep.SampleRate) beep.Streamer {
	osc := newCue(WaveSaw, 70.0, constant.CrashSoundDuration, constant.CrashSoundAttack, constant.CrashSoundRelease, rate)
	return newVolume(osc, cfg.gain(core.SoundCrash))
}

// hitCue is a short noise burst for zombie contact
func hitCue(cfg *Config, rate beep.SampleRate) beep.Streamer {
	osc := newCue(WaveNoise, 0, constant.HitSoundDuration, constant.HitSoundAttack, constant.HitSoundRelease, rate)
	return newVolume(osc, cfg.gain(core.SoundHit))
}

// scoreCue is a bell ding for a projectile kill: fundamental plus a
// faster-decaying octave overtone
func scoreCue(cfg *Config, rate beep.SampleRate) beep.Streamer {
	fund := newCue(WaveSine, 880.0, constant.ScoreSoundDuration, constant.ScoreSoundAttack, constant.ScoreSoundRelease, rate)
	over := newCue(WaveSine, 1760.0, constant.ScoreSoundDuration, constant.ScoreSoundAttack, constant.ScoreSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, cfg.gain(core.SoundScore))
}

// turboCue is a two-note spool-up for the boost trigger
func turboCue(cfg *Config, rate beep.SampleRate) beep.Streamer {
	low := newCue(WaveSquare, 196.0, constant.TurboSoundNoteDuration, constant.TurboSoundAttack, constant.TurboSoundRelease, rate)
	high := newCue(WaveSquare, 392.0, constant.TurboSoundNoteDuration, constant.TurboSoundAttack, constant.TurboSoundRelease, rate)

	sequence := beep.Seq(low, high)
	return newVolume(sequence, cfg.gain(core.SoundTurbo))
}

// shotCue is a clipped click for each projectile
func shotCue(cfg *Config, rate beep.SampleRate) beep.Streamer {
	osc := newCue(WaveSquare, 1240.0, constant.ShotSoundDuration, constant.ShotSoundAttack, constant.ShotSoundRelease, rate)
	return newVolume(osc, cfg.gain(core.SoundShot))
}

// winCue is a rising three-note jingle (C5 E5 G5) at the finish line
func winCue(cfg *Config, rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99}

	streams := make([]beep.Streamer, len(notes))
	for i, freq := range notes {
		streams[i] = newCue(WaveSquare, freq, constant.WinSoundNoteDuration, constant.WinSoundAttack, constant.WinSoundNoteRelease, rate)
	}
	return newVolume(beep.Seq(streams...), cfg.gain(core.SoundWin))
}

// loseCue is a long low drone (G2) for a dead run
func loseCue(cfg *Config, rate beep.SampleRate) beep.Streamer {
	osc := newCue(WaveSaw, 98.0, constant.LoseSoundDuration, constant.LoseSoundAttack, constant.LoseSoundRelease, rate)
	return newVolume(osc, cfg.gain(core.SoundLose))
}

// Synthesize returns the streamer for the given cue type, or nil for an
// unknown type
func Synthesize(st core.SoundType, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	switch st {
	case core.SoundCrash:
		return crashCue(cfg, rate)
	case core.SoundHit:
		return hitCue(cfg, rate)
	case core.SoundScore:
		return scoreCue(cfg, rate)
	case core.SoundTurbo:
		return turboCue(cfg, rate)
	case core.SoundShot:
		return shotCue(cfg, rate)
	case core.SoundWin:
		return winCue(cfg, rate)
	case core.SoundLose:
		return loseCue(cfg, rate)
	default:
		return nil
	}
}
