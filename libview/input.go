package libview

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// MouseSensitivity scales raw cursor deltas (pixels) into degrees.
const MouseSensitivity = 0.1

// KeySource answers whether a key is held down this frame. The glfw window
// satisfies it through a thin adapter; tests provide their own.
type KeySource interface {
	IsKeyDown(key glfw.Key) bool
}

// Bindings maps the camera actions onto keys.
type Bindings struct {
	Forward, Backward, Left, Right glfw.Key
	Ascend, Descend                glfw.Key
	Perspective, Orthographic      glfw.Key
}

func DefaultBindings() Bindings {
	return Bindings{
		Forward:      glfw.KeyW,
		Backward:     glfw.KeyS,
		Left:         glfw.KeyA,
		Right:        glfw.KeyD,
		Ascend:       glfw.KeyQ,
		Descend:      glfw.KeyE,
		Perspective:  glfw.KeyP,
		Orthographic: glfw.KeyO,
	}
}

// Translator maps raw per-frame input samples onto camera and mode controller
// calls. It owns the first-cursor-sample guard and the previous-frame key
// state needed to edge-trigger the projection toggles.
type Translator struct {
	cam      *Camera
	modes    *ModeController
	bindings Bindings

	firstCursor bool
	lastCursor  mgl32.Vec2

	perspectiveWasDown  bool
	orthographicWasDown bool
}

func NewTranslator(cam *Camera, modes *ModeController, bindings Bindings) *Translator {
	return &Translator{
		cam:         cam,
		modes:       modes,
		bindings:    bindings,
		firstCursor: true,
	}
}

// ResetCursor discards the recorded cursor baseline. The next sample applies a
// zero orientation delta instead of a jump from a stale position.
func (tr *Translator) ResetCursor() {
	tr.firstCursor = true
}

// CursorMoved forwards a cursor sample to the camera as a yaw/pitch delta. The
// very first sample only records the baseline and applies a zero delta.
func (tr *Translator) CursorMoved(x, y float32) {
	if tr.firstCursor {
		tr.lastCursor = mgl32.Vec2{x, y}
		tr.firstCursor = false
	}
	dx := x - tr.lastCursor.X()
	// Screen y grows downward, pitch grows upward.
	dy := tr.lastCursor.Y() - y
	tr.lastCursor = mgl32.Vec2{x, y}
	tr.cam.ApplyMouseDelta(dx, dy, MouseSensitivity)
}

// Scroll adjusts the movement speed by the vertical wheel delta.
func (tr *Translator) Scroll(dy float32) {
	tr.cam.AdjustSpeed(dy)
}

// ProcessKeys applies movement for every held motion key and resolves the
// projection toggle edges. Held motion keys combine additively, so diagonal
// movement is faster than axis-aligned movement.
func (tr *Translator) ProcessKeys(src KeySource, delta float32) {
	b := tr.bindings
	if src.IsKeyDown(b.Forward) {
		tr.cam.ApplyMovement(MoveForward, delta)
	}
	if src.IsKeyDown(b.Backward) {
		tr.cam.ApplyMovement(MoveBackward, delta)
	}
	if src.IsKeyDown(b.Left) {
		tr.cam.ApplyMovement(MoveLeft, delta)
	}
	if src.IsKeyDown(b.Right) {
		tr.cam.ApplyMovement(MoveRight, delta)
	}
	if src.IsKeyDown(b.Ascend) {
		tr.cam.ApplyMovement(MoveUp, delta)
	}
	if src.IsKeyDown(b.Descend) {
		tr.cam.ApplyMovement(MoveDown, delta)
	}

	// Toggles fire on the press edge only, a held key must not re-trigger.
	perspectiveDown := src.IsKeyDown(b.Perspective)
	if perspectiveDown && !tr.perspectiveWasDown {
		tr.modes.ToggleTo(ModePerspective)
	}
	tr.perspectiveWasDown = perspectiveDown

	orthographicDown := src.IsKeyDown(b.Orthographic)
	if orthographicDown && !tr.orthographicWasDown {
		tr.modes.ToggleTo(ModeOrthographic)
	}
	tr.orthographicWasDown = orthographicDown
}
