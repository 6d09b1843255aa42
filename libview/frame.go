package libview

import "github.com/go-gl/mathgl/mgl32"

// Clock provides a monotonically increasing time in seconds.
type Clock interface {
	Now() float64
}

// Timing derives the per-frame delta used to scale movement.
type Timing struct {
	clock Clock
	last  float64
	delta float32
}

func NewTiming(clock Clock) *Timing {
	return &Timing{clock: clock, last: clock.Now()}
}

// Update computes the time elapsed since the previous call. A stalled or
// rewound clock yields a zero delta, which skips movement for the frame.
func (t *Timing) Update() {
	now := t.clock.Now()
	delta := now - t.last
	t.last = now
	if delta < 0 {
		delta = 0
	}
	t.delta = float32(delta)
}

func (t *Timing) Delta() float32 {
	return t.delta
}

// Lens holds the fixed projection parameters. Near and far are shared by both
// projection modes so a toggle does not change depth precision.
type Lens struct {
	ViewportWidth  float32
	ViewportHeight float32
	Near           float32
	Far            float32
	// Half-extent of the orthographic volume, scaled by the aspect ratio for
	// left/right.
	OrthoExtent float32
}

func DefaultLens() Lens {
	return Lens{
		ViewportWidth:  1000,
		ViewportHeight: 800,
		Near:           0.1,
		Far:            100,
		OrthoExtent:    10,
	}
}

func (l Lens) Aspect() float32 {
	return l.ViewportWidth / l.ViewportHeight
}

// ProjectionMatrix builds the matrix for the given mode. Perspective uses the
// camera's vertical FOV, orthographic the fixed half-extent volume.
func (l Lens) ProjectionMatrix(mode Mode, fovDegrees float32) mgl32.Mat4 {
	if mode == ModeOrthographic {
		e := l.OrthoExtent
		return mgl32.Ortho(-e*l.Aspect(), e*l.Aspect(), -e, e, l.Near, l.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), l.Aspect(), l.Near, l.Far)
}
