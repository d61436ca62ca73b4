package constant

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferLength sizes the speaker buffer; shorter cuts latency at
	// the cost of underruns on slow terminals
	AudioBufferLength = time.Second / 10

	// MinSoundGap throttles repeats of the same cue so contact storms
	// don't stack into noise
	MinSoundGap = 50 * time.Millisecond
)

// Crash Cue Timing (obstacle bounce)
const (
	CrashSoundDuration = 120 * time.Millisecond
	CrashSoundAttack   = 2 * time.Millisecond
	CrashSoundRelease  = 80 * time.Millisecond
)

// Hit Cue Timing (zombie contact)
const (
	HitSoundDuration = 70 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 40 * time.Millisecond
)

// Score Cue Timing (projectile kill)
const (
	ScoreSoundDuration        = 250 * time.Millisecond
	ScoreSoundAttack          = 5 * time.Millisecond
	ScoreSoundRelease         = 180 * time.Millisecond
	ScoreSoundOvertoneRelease = 90 * time.Millisecond
)

// Turbo Cue Timing (boost trigger)
const (
	TurboSoundNoteDuration = 120 * time.Millisecond
	TurboSoundAttack       = 10 * time.Millisecond
	TurboSoundRelease      = 70 * time.Millisecond
)

// Shot Cue Timing (projectile fired)
const (
	ShotSoundDuration = 60 * time.Millisecond
	ShotSoundAttack   = 1 * time.Millisecond
	ShotSoundRelease  = 40 * time.Millisecond
)

// Win Jingle Timing
const (
	WinSoundNoteDuration = 140 * time.Millisecond
	WinSoundAttack       = 5 * time.Millisecond
	WinSoundNoteRelease  = 90 * time.Millisecond
)

// Lose Drone Timing
const (
	LoseSoundDuration = 500 * time.Millisecond
	LoseSoundAttack   = 10 * time.Millisecond
	LoseSoundRelease  = 350 * time.Millisecond
)
