package libview_test

import (
	"math"
	"testing"

	"garden-gl/libview"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// keys is a KeySource backed by a plain set of held keys.
type keys map[glfw.Key]bool

func (k keys) IsKeyDown(key glfw.Key) bool {
	return k[key]
}

// fakeClock is a Clock advanced manually by tests.
type fakeClock struct {
	time float64
}

func (c *fakeClock) Now() float64 {
	return c.time
}

// recordingSink remembers the last value published per uniform name.
type recordingSink struct {
	values map[string]any
	calls  []string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{values: map[string]any{}}
}

func (s *recordingSink) SetUniform(name string, value any) {
	s.values[name] = value
	s.calls = append(s.calls, name)
}

func near(a, b, tolerance float32) bool {
	return math.Abs(float64(a-b)) <= float64(tolerance)
}

func vec3Near(t *testing.T, name string, is, should mgl32.Vec3, tolerance float32) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if !near(is[i], should[i], tolerance) {
			t.Errorf("%v incorrect, should be %v but is %v", name, should, is)
			return
		}
	}
}

func mat4Near(t *testing.T, name string, is, should mgl32.Mat4, tolerance float32) {
	t.Helper()
	for i := 0; i < 16; i++ {
		if !near(is[i], should[i], tolerance) {
			t.Errorf("%v incorrect at element %d, should be %.6f but is %.6f", name, i, should[i], is[i])
			return
		}
	}
}

func newTestView(sink libview.UniformSink) (*libview.ViewManager, *fakeClock) {
	clock := &fakeClock{}
	return libview.NewViewManager(clock, sink, libview.DefaultLens()), clock
}
