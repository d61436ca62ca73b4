package constant

// Camera follow and zoom policy
const (
	// CameraLerp is the per-tick interpolation factor toward the follow target
	CameraLerp = 0.05

	// CameraLeadY keeps the view ahead of the vehicle along the travel axis
	CameraLeadY = 200.0

	// Zoom is orthographic scale: larger shows more world. A run opens tight,
	// widens to the cruise scale, then tightens again near the finish
	CameraZoomDefault = 1.0
	CameraZoomMax     = 2.0
	CameraZoomFinish  = 1.8

	// CameraZoomInRate / CameraZoomOutRate are zoom units per second
	CameraZoomInRate  = 0.2
	CameraZoomOutRate = 0.1

	// CameraZoomProgressGate starts the finish zoom-in
	CameraZoomProgressGate = 0.90
)
