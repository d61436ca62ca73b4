package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundCrash  SoundType = iota // Obstacle bounce-back
	SoundHit                     // Zombie contact
	SoundScore                   // Projectile kill
	SoundTurbo                   // Turbo trigger
	SoundShot                    // Projectile fired
	SoundWin                     // Finish line reached
	SoundLose                    // Health depleted or wrong way
	SoundTypeCount
)
