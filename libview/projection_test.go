package libview_test

import (
	"testing"

	"garden-gl/libview"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInitialModeIsPerspective(t *testing.T) {
	cam := libview.NewCamera()
	modes := libview.NewModeController(cam)
	if modes.Active() != libview.ModePerspective {
		t.Fatalf("initial mode should be perspective but is %v", modes.Active())
	}
}

func TestToggleRoundTripRestoresFraming(t *testing.T) {
	cam := libview.NewCamera()
	modes := libview.NewModeController(cam)

	// Walk somewhere first so the framing is not the construction default.
	cam.ApplyMouseDelta(120, -40, libview.MouseSensitivity)
	cam.ApplyMovement(libview.MoveForward, 0.7)
	before := cam.ViewMatrix()

	modes.ToggleTo(libview.ModeOrthographic)
	modes.ToggleTo(libview.ModePerspective)

	mat4Near(t, "view matrix after round trip", cam.ViewMatrix(), before, 1e-6)
}

func TestToggleIntoActiveModeIsIdempotent(t *testing.T) {
	cam := libview.NewCamera()
	modes := libview.NewModeController(cam)
	before := *cam

	modes.ToggleTo(libview.ModePerspective)

	if *cam != before {
		t.Errorf("toggle into the active mode altered camera state: %+v != %+v", *cam, before)
	}
	if modes.Active() != libview.ModePerspective {
		t.Errorf("mode changed on idempotent toggle")
	}
}

func TestOrthographicDefaultFraming(t *testing.T) {
	cam := libview.NewCamera()
	modes := libview.NewModeController(cam)

	modes.ToggleTo(libview.ModeOrthographic)

	vec3Near(t, "position", cam.Position, mgl32.Vec3{0, 15, 0}, 0)
	if cam.Pitch != -89 {
		t.Errorf("pitch should be -89 but is %v", cam.Pitch)
	}
	if cam.Front.Y() > -0.999 {
		t.Errorf("front should point almost straight down but is %v", cam.Front)
	}
	if cam.Up.Y() <= 0 {
		t.Errorf("up vector flipped in the top-down framing: %v", cam.Up)
	}
}

func TestSnapshotTracksMotionWhileActive(t *testing.T) {
	cam := libview.NewCamera()
	modes := libview.NewModeController(cam)

	modes.ToggleTo(libview.ModeOrthographic)
	cam.ApplyMovement(libview.MoveUp, 1)
	moved := cam.Position

	modes.ToggleTo(libview.ModePerspective)
	modes.ToggleTo(libview.ModeOrthographic)

	// The snapshot is the last live state of the mode, not an immutable default.
	vec3Near(t, "position", cam.Position, moved, 0)
}

func TestSpeedAndFovSurviveToggles(t *testing.T) {
	cam := libview.NewCamera()
	modes := libview.NewModeController(cam)

	cam.AdjustSpeed(3)
	cam.Fov = 55
	speed := cam.Speed

	modes.ToggleTo(libview.ModeOrthographic)
	if cam.Speed != speed || cam.Fov != 55 {
		t.Errorf("speed and fov are mode-independent, got speed %v fov %v", cam.Speed, cam.Fov)
	}
	modes.ToggleTo(libview.ModePerspective)
	if cam.Speed != speed || cam.Fov != 55 {
		t.Errorf("speed and fov must survive the round trip, got speed %v fov %v", cam.Speed, cam.Fov)
	}
}
