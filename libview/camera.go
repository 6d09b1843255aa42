// Package libview implements the interactive camera for the viewer: the camera
// pose itself, the translation of raw input into camera motion, the
// perspective/orthographic projection state machine and the per-frame matrix
// publication.
package libview

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction of a single movement step, relative to the camera basis. MoveUp
// and MoveDown travel along the world up axis, not the camera's up vector.
type Direction int

const (
	MoveForward Direction = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

const (
	MinSpeed  = 0.5
	MaxSpeed  = 10.0
	SpeedStep = 0.5

	// Keep the pitch strictly inside (-90, 90) so the up vector never flips.
	PitchLimit = 89.0
)

// Camera holds the pose and motion parameters of the fly camera. Front, Right
// and Up are always unit length and consistent with Yaw and Pitch; any code
// that overwrites the angles directly must call RecomputeBasis afterwards.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3
	// Degrees
	Yaw   float32
	Pitch float32
	// Vertical FOV in degrees, only used by the perspective projection
	Fov   float32
	Speed float32
}

// NewCamera returns a camera with the default scene framing, looking slightly
// down at the scene center. Yaw and pitch are derived from the seed direction
// so the basis invariant holds from the start.
func NewCamera() *Camera {
	cam := &Camera{
		Position: mgl32.Vec3{0, 5, 12},
		WorldUp:  mgl32.Vec3{0, 1, 0},
		Fov:      80,
		Speed:    2.5,
	}
	seed := mgl32.Vec3{0, -0.5, -2}.Normalize()
	cam.Yaw = mgl32.RadToDeg(math32.Atan2(seed.Z(), seed.X()))
	cam.Pitch = mgl32.RadToDeg(math32.Asin(seed.Y()))
	cam.RecomputeBasis()
	return cam
}

// ApplyMouseDelta turns a cursor offset into a yaw/pitch change. Positive dy
// pitches the camera up; callers flip the raw screen delta accordingly. A zero
// delta still recomputes the basis.
func (cam *Camera) ApplyMouseDelta(dx, dy, sensitivity float32) {
	cam.Yaw += dx * sensitivity
	cam.Pitch += dy * sensitivity
	if cam.Pitch > PitchLimit {
		cam.Pitch = PitchLimit
	} else if cam.Pitch < -PitchLimit {
		cam.Pitch = -PitchLimit
	}
	cam.RecomputeBasis()
}

// RecomputeBasis rebuilds the orthonormal front/right/up vectors from the
// current yaw and pitch. Call it after any external overwrite of the pose.
func (cam *Camera) RecomputeBasis() {
	yaw := mgl32.DegToRad(cam.Yaw)
	pitch := mgl32.DegToRad(cam.Pitch)
	cam.Front = mgl32.Vec3{
		math32.Cos(pitch) * math32.Cos(yaw),
		math32.Sin(pitch),
		math32.Cos(pitch) * math32.Sin(yaw),
	}.Normalize()
	cam.Right = cam.Front.Cross(cam.WorldUp).Normalize()
	cam.Up = cam.Right.Cross(cam.Front).Normalize()
}

// ApplyMovement moves the camera one step in the given direction, scaled by
// the elapsed frame time. A non-positive delta is skipped entirely, which
// protects against a stalled or rewound clock.
func (cam *Camera) ApplyMovement(dir Direction, delta float32) {
	if delta <= 0 {
		return
	}
	dist := cam.Speed * delta
	switch dir {
	case MoveForward:
		cam.Position = cam.Position.Add(cam.Front.Mul(dist))
	case MoveBackward:
		cam.Position = cam.Position.Sub(cam.Front.Mul(dist))
	case MoveLeft:
		cam.Position = cam.Position.Sub(cam.Right.Mul(dist))
	case MoveRight:
		cam.Position = cam.Position.Add(cam.Right.Mul(dist))
	case MoveUp:
		cam.Position = cam.Position.Add(cam.WorldUp.Mul(dist))
	case MoveDown:
		cam.Position = cam.Position.Sub(cam.WorldUp.Mul(dist))
	}
}

// AdjustSpeed nudges the movement speed by scroll steps, clamped to
// [MinSpeed, MaxSpeed].
func (cam *Camera) AdjustSpeed(scroll float32) {
	cam.Speed += scroll * SpeedStep
	cam.Speed = math32.Min(math32.Max(cam.Speed, MinSpeed), MaxSpeed)
}

// ViewMatrix returns the look-at matrix for the current pose.
func (cam *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(cam.Position, cam.Position.Add(cam.Front), cam.Up)
}
