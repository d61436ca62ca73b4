package component

// EnemyComponent marks a pursuing zombie entity
// Pursuit state is recomputed each tick; only the visual identity persists
type EnemyComponent struct {
	Variant int     // Sprite atlas row
	Scale   float64 // Render scale (heavy variants are larger)
	Heavy   bool
}
