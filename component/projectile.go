package component

import (
	"time"

	"github.com/lixenwraith/deadrun/vmath"
)

// ProjectileComponent marks a fired bullet entity
type ProjectileComponent struct {
	Dir       vmath.Vec3 // Unit flight direction
	SpawnedAt time.Time  // Game time of creation; despawn after BulletLifetime
}
