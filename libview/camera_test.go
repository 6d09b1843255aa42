package libview_test

import (
	"testing"

	"garden-gl/libview"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPitchStaysClamped(t *testing.T) {
	cam := libview.NewCamera()

	deltas := []struct{ dx, dy float32 }{
		{0, 10000}, {50, 500}, {0, -30000}, {-120, 0}, {0, 2500}, {3, -3},
	}
	for _, d := range deltas {
		cam.ApplyMouseDelta(d.dx, d.dy, libview.MouseSensitivity)
		if cam.Pitch > libview.PitchLimit || cam.Pitch < -libview.PitchLimit {
			t.Fatalf("pitch %v left the safe interval", cam.Pitch)
		}
		if cam.Up.Y() <= 0 {
			t.Fatalf("up vector flipped, up.y = %v at pitch %v", cam.Up.Y(), cam.Pitch)
		}
	}
}

func TestSpeedClamp(t *testing.T) {
	cam := libview.NewCamera()
	if cam.Speed != 2.5 {
		t.Fatalf("initial speed should be 2.5 but is %v", cam.Speed)
	}

	cam.AdjustSpeed(-100)
	if cam.Speed != libview.MinSpeed {
		t.Errorf("speed should clamp to exactly %v but is %v", libview.MinSpeed, cam.Speed)
	}

	cam.AdjustSpeed(100)
	if cam.Speed != libview.MaxSpeed {
		t.Errorf("speed should clamp to exactly %v but is %v", libview.MaxSpeed, cam.Speed)
	}

	cam.AdjustSpeed(-1)
	if cam.Speed != libview.MaxSpeed-libview.SpeedStep {
		t.Errorf("speed should step down to %v but is %v", libview.MaxSpeed-libview.SpeedStep, cam.Speed)
	}
}

func TestBasisStaysOrthonormal(t *testing.T) {
	cam := libview.NewCamera()
	cam.ApplyMouseDelta(123, -45, libview.MouseSensitivity)

	if !near(cam.Front.Len(), 1, 1e-5) || !near(cam.Right.Len(), 1, 1e-5) || !near(cam.Up.Len(), 1, 1e-5) {
		t.Errorf("basis vectors not unit length: %v %v %v", cam.Front.Len(), cam.Right.Len(), cam.Up.Len())
	}
	if !near(cam.Front.Dot(cam.Right), 0, 1e-5) || !near(cam.Front.Dot(cam.Up), 0, 1e-5) || !near(cam.Right.Dot(cam.Up), 0, 1e-5) {
		t.Errorf("basis vectors not orthogonal")
	}
}

func TestZeroDeltaRecomputesBasis(t *testing.T) {
	cam := libview.NewCamera()
	want := *cam

	// Simulate an external pose overwrite that left the basis stale.
	cam.Front = mgl32.Vec3{5, 5, 5}
	cam.Up = mgl32.Vec3{0, 0, 0}

	cam.ApplyMouseDelta(0, 0, libview.MouseSensitivity)
	vec3Near(t, "front", cam.Front, want.Front, 1e-6)
	vec3Near(t, "up", cam.Up, want.Up, 1e-6)
}

func TestMovementSkipsNonPositiveDelta(t *testing.T) {
	cam := libview.NewCamera()
	before := cam.Position

	cam.ApplyMovement(libview.MoveForward, 0)
	cam.ApplyMovement(libview.MoveForward, -0.5)
	vec3Near(t, "position", cam.Position, before, 0)
}

func TestMovementDirections(t *testing.T) {
	cam := libview.NewCamera()
	start := cam.Position
	dist := cam.Speed * 0.25

	cam.ApplyMovement(libview.MoveForward, 0.25)
	vec3Near(t, "forward step", cam.Position, start.Add(cam.Front.Mul(dist)), 1e-5)

	cam.ApplyMovement(libview.MoveBackward, 0.25)
	vec3Near(t, "backward step", cam.Position, start, 1e-5)

	// Vertical motion follows the world up axis, not the camera's up vector.
	cam.ApplyMouseDelta(0, 200, libview.MouseSensitivity)
	cam.ApplyMovement(libview.MoveUp, 0.25)
	vec3Near(t, "ascend step", cam.Position, start.Add(cam.WorldUp.Mul(dist)), 1e-5)
}

func TestViewMatrixCentersEye(t *testing.T) {
	cam := libview.NewCamera()
	cam.ApplyMouseDelta(77, 13, libview.MouseSensitivity)

	view := cam.ViewMatrix()
	eye := view.Mul4x1(cam.Position.Vec4(1))
	vec3Near(t, "transformed eye", eye.Vec3(), mgl32.Vec3{}, 1e-5)

	// A point one unit along front ends up on the negative z axis.
	ahead := view.Mul4x1(cam.Position.Add(cam.Front).Vec4(1))
	vec3Near(t, "transformed look target", ahead.Vec3(), mgl32.Vec3{0, 0, -1}, 1e-5)
}
