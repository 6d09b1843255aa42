package libview

import "github.com/go-gl/mathgl/mgl32"

// Mode selects how the projection matrix is built. Exactly one mode is active
// at any time; ToggleTo is the only way to change it.
type Mode int

const (
	ModePerspective Mode = iota
	ModeOrthographic
)

func (m Mode) String() string {
	switch m {
	case ModePerspective:
		return "perspective"
	case ModeOrthographic:
		return "orthographic"
	}
	return "invalid"
}

// Snapshot is the framing state retained per projection mode: everything that
// decides what the camera looks at. Speed and FOV are shared across modes and
// deliberately not part of it.
type Snapshot struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// Top-down framing used before the orthographic mode has ever been active.
var defaultOrthographicSnapshot = Snapshot{
	Position: mgl32.Vec3{0, 15, 0},
	Front:    mgl32.Vec3{0, -1, 0},
	Up:       mgl32.Vec3{0, 0, -1},
	Yaw:      -90,
	Pitch:    -89,
}

// ModeController is the perspective/orthographic state machine. It keeps one
// framing snapshot per mode so that switching back to a mode restores exactly
// what was on screen the last time that mode was live.
type ModeController struct {
	cam         *Camera
	active      Mode
	snapshots   [2]Snapshot
	transitions int
}

func NewModeController(cam *Camera) *ModeController {
	mc := &ModeController{
		cam:    cam,
		active: ModePerspective,
	}
	mc.snapshots[ModePerspective] = takeSnapshot(cam)
	mc.snapshots[ModeOrthographic] = defaultOrthographicSnapshot
	return mc
}

func (mc *ModeController) Active() Mode {
	return mc.active
}

// Transitions counts completed mode switches. Idempotent toggles don't count.
func (mc *ModeController) Transitions() int {
	return mc.transitions
}

// ToggleTo switches the active projection mode. The current camera framing is
// saved into the slot of the outgoing mode, the target's slot is loaded into
// the camera, and the basis is recomputed from the restored angles. A no-op
// when the target mode is already active.
func (mc *ModeController) ToggleTo(target Mode) {
	if target == mc.active {
		return
	}
	mc.snapshots[mc.active] = takeSnapshot(mc.cam)
	restoreSnapshot(mc.cam, mc.snapshots[target])
	mc.cam.RecomputeBasis()
	mc.active = target
	mc.transitions++
}

func takeSnapshot(cam *Camera) Snapshot {
	return Snapshot{
		Position: cam.Position,
		Front:    cam.Front,
		Up:       cam.Up,
		Yaw:      cam.Yaw,
		Pitch:    cam.Pitch,
	}
}

func restoreSnapshot(cam *Camera, s Snapshot) {
	cam.Position = s.Position
	cam.Front = s.Front
	cam.Up = s.Up
	cam.Yaw = s.Yaw
	cam.Pitch = s.Pitch
}
