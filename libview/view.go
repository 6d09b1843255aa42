package libview

// UniformSink receives the per-frame camera outputs by value, addressed by
// uniform name. It is assumed to never fail at this layer; shader-side
// problems belong to the render backend.
type UniformSink interface {
	SetUniform(name string, value any)
}

// Uniform names published every frame.
const (
	ViewUniform         = "view"
	ProjectionUniform   = "projection"
	ViewPositionUniform = "viewPosition"
)

// ViewManager wires the camera core together and is what the application
// drives: it owns the camera, the input translator, the projection mode
// machine and the frame timing. The surrounding code calls OnFrameStart once
// per frame, forwards cursor and scroll events as they arrive, and then calls
// ProcessInputAndPublish exactly once.
type ViewManager struct {
	Camera *Camera
	Modes  *ModeController
	Input  *Translator

	timing *Timing
	lens   Lens
	sink   UniformSink
}

func NewViewManager(clock Clock, sink UniformSink, lens Lens) *ViewManager {
	cam := NewCamera()
	modes := NewModeController(cam)
	return &ViewManager{
		Camera: cam,
		Modes:  modes,
		Input:  NewTranslator(cam, modes, DefaultBindings()),
		timing: NewTiming(clock),
		lens:   lens,
		sink:   sink,
	}
}

// OnFrameStart updates the frame timing. Must run before any movement is
// applied so the delta matches the frame it scales.
func (vm *ViewManager) OnFrameStart() {
	vm.timing.Update()
}

func (vm *ViewManager) OnCursorMoved(x, y float32) {
	vm.Input.CursorMoved(x, y)
}

func (vm *ViewManager) OnScroll(dy float32) {
	vm.Input.Scroll(dy)
}

// ProcessInputAndPublish polls the held keys, applies movement, resolves the
// projection toggle edges and publishes the view matrix, the mode-appropriate
// projection matrix and the camera world position. Toggles are resolved before
// the projection matrix is built, so a switch takes effect the same frame.
func (vm *ViewManager) ProcessInputAndPublish(src KeySource) {
	vm.Input.ProcessKeys(src, vm.timing.Delta())

	view := vm.Camera.ViewMatrix()
	projection := vm.lens.ProjectionMatrix(vm.Modes.Active(), vm.Camera.Fov)

	vm.sink.SetUniform(ViewUniform, view)
	vm.sink.SetUniform(ProjectionUniform, projection)
	vm.sink.SetUniform(ViewPositionUniform, vm.Camera.Position)
}
