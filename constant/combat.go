package constant

import "time"

// Collision half-extents; tests compare |dx| and |dy| against these boxes
const (
	ObstacleHitBox = 25.0
	ZombieHitBox   = 20.0
	BulletHitBox   = 10.0
)

// Projectiles
const (
	// BulletSpeed is flight speed in world units per second
	BulletSpeed = 2000.0

	// BulletSpawnInterval is the firing cadence while the fire input is held
	BulletSpawnInterval = 300 * time.Millisecond

	// BulletLifetime despawns projectiles that never connect
	BulletLifetime = time.Second

	// BulletZ is the topmost draw layer
	BulletZ = 15.0
)

// Win/lose thresholds on progress
const (
	// LoseProgress ends the run when the vehicle drives this far the wrong way
	LoseProgress = -0.1

	// WinProgress ends the run at the finish line; progress clamps here
	WinProgress = 1.0
)
