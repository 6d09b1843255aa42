package libview_test

import (
	"testing"

	"garden-gl/libview"
)

func newTranslator() (*libview.Camera, *libview.ModeController, *libview.Translator) {
	cam := libview.NewCamera()
	modes := libview.NewModeController(cam)
	return cam, modes, libview.NewTranslator(cam, modes, libview.DefaultBindings())
}

func TestFirstCursorSampleAppliesZeroDelta(t *testing.T) {
	cam, _, tr := newTranslator()
	yaw, pitch := cam.Yaw, cam.Pitch

	// Absolute coordinates of the first sample must not matter.
	tr.CursorMoved(999, 1)
	if cam.Yaw != yaw || cam.Pitch != pitch {
		t.Fatalf("first cursor sample changed orientation: yaw %v -> %v, pitch %v -> %v", yaw, cam.Yaw, pitch, cam.Pitch)
	}

	tr.CursorMoved(1000, 1)
	if !near(cam.Yaw, yaw+1*libview.MouseSensitivity, 1e-5) {
		t.Errorf("second sample should apply a delta of exactly (1, 0), yaw is %v", cam.Yaw)
	}
	if !near(cam.Pitch, pitch, 1e-5) {
		t.Errorf("second sample should not change pitch, pitch is %v", cam.Pitch)
	}
}

func TestResetCursorGuardsNextSample(t *testing.T) {
	cam, _, tr := newTranslator()
	tr.CursorMoved(100, 100)
	tr.CursorMoved(110, 100)
	yaw := cam.Yaw

	tr.ResetCursor()
	tr.CursorMoved(5000, -3000)
	if cam.Yaw != yaw {
		t.Errorf("sample after reset should apply a zero delta, yaw %v -> %v", yaw, cam.Yaw)
	}
}

func TestVerticalCursorSignConvention(t *testing.T) {
	cam, _, tr := newTranslator()
	tr.CursorMoved(0, 100)
	pitch := cam.Pitch

	// Cursor moving up the screen (smaller y) pitches the camera up.
	tr.CursorMoved(0, 80)
	if cam.Pitch <= pitch {
		t.Errorf("upward cursor motion should increase pitch, pitch %v -> %v", pitch, cam.Pitch)
	}
}

func TestHeldToggleKeyFiresOnce(t *testing.T) {
	cam, modes, tr := newTranslator()
	held := keys{libview.DefaultBindings().Orthographic: true}

	tr.ProcessKeys(held, 1./60.)
	if modes.Active() != libview.ModeOrthographic {
		t.Fatalf("toggle did not fire on the press edge")
	}

	// Nudge the camera; further held frames must not restore the snapshot.
	cam.Position = cam.Position.Add(cam.Front)
	moved := cam.Position
	for i := 0; i < 10; i++ {
		tr.ProcessKeys(held, 1./60.)
	}
	vec3Near(t, "position", cam.Position, moved, 0)
	if modes.Transitions() != 1 {
		t.Errorf("holding the toggle key across 11 frames should fire exactly one transition, fired %d", modes.Transitions())
	}

	// Releasing and pressing again is a new edge, but into the active mode it
	// stays an idempotent no-op.
	tr.ProcessKeys(keys{}, 1./60.)
	tr.ProcessKeys(held, 1./60.)
	if modes.Transitions() != 1 {
		t.Errorf("re-press into the active mode should not transition, fired %d", modes.Transitions())
	}
}

func TestDiagonalMovementIsAdditive(t *testing.T) {
	cam, _, tr := newTranslator()
	b := libview.DefaultBindings()
	start := cam.Position

	tr.ProcessKeys(keys{b.Forward: true, b.Right: true}, 0.5)

	// Both keys apply independently, so the diagonal step is longer than a
	// single-axis step by sqrt(2).
	step := cam.Speed * 0.5
	displacement := cam.Position.Sub(start).Len()
	if !near(displacement, step*1.41421356, 1e-4) {
		t.Errorf("diagonal displacement should be %v but is %v", step*1.41421356, displacement)
	}
}

func TestScrollAdjustsSpeed(t *testing.T) {
	cam, _, tr := newTranslator()

	tr.Scroll(2)
	if cam.Speed != 2.5+2*libview.SpeedStep {
		t.Errorf("scroll should step speed to %v but is %v", 2.5+2*libview.SpeedStep, cam.Speed)
	}
	tr.Scroll(-100)
	if cam.Speed != libview.MinSpeed {
		t.Errorf("scroll should clamp speed to %v but is %v", libview.MinSpeed, cam.Speed)
	}
}
