package component

import (
	"github.com/lixenwraith/deadrun/vmath"
)

// PositionComponent is the world transform shared by all entity kinds
type PositionComponent struct {
	Pos vmath.Vec3
}
