package audio

import (
	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/core"
)

// Config carries synthesis and output parameters
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	CueVolumes   [core.SoundTypeCount]float64
	SampleRate   int
}

// DefaultConfig returns the stock mix
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: 0.8,
		SampleRate:   constant.AudioSampleRate,
	}
	for i := range cfg.CueVolumes {
		cfg.CueVolumes[i] = 1.0
	}
	// Contact cues fire constantly in a horde; keep them under the rest
	cfg.CueVolumes[core.SoundHit] = 0.6
	cfg.CueVolumes[core.SoundShot] = 0.7
	return cfg
}

// gain is the effective unity-relative volume for one cue
func (c *Config) gain(st core.SoundType) float64 {
	return c.CueVolumes[st] * c.MasterVolume
}
