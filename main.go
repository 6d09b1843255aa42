package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"runtime"
	"unsafe"

	"garden-gl/libview"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	im "github.com/inkyblackness/imgui-go/v4"
)

//go:embed assets/shaders/scene.vert
var Res_SceneVshSrc string

//go:embed assets/shaders/scene.frag
var Res_SceneFshSrc string

//go:embed assets/shaders/imgui.vert
var Res_ImguiVshSrc string

//go:embed assets/shaders/imgui.frag
var Res_ImguiFshSrc string

var Arguments struct {
	EnableCompatibilityProfile bool
	ShowOverlay                bool
}

// glfwClock feeds frame timing from the glfw timer.
type glfwClock struct{}

func (glfwClock) Now() float64 {
	return glfw.GetTime()
}

// glfwKeys adapts window key polling to libview.KeySource.
type glfwKeys struct {
	win *glfw.Window
}

func (k glfwKeys) IsKeyDown(key glfw.Key) bool {
	return k.win.GetKey(key) == glfw.Press
}

func main() {
	flag.BoolVar(&Arguments.EnableCompatibilityProfile, "enable-compatibility-profile", Arguments.EnableCompatibilityProfile, "")
	flag.BoolVar(&Arguments.ShowOverlay, "overlay", true, "show the camera stats overlay")
	flag.Parse()

	runtime.LockOSThread()
	err := glfw.Init()
	check(err)

	lens := libview.DefaultLens()

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	if Arguments.EnableCompatibilityProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	ctx, err := glfw.CreateWindow(int(lens.ViewportWidth), int(lens.ViewportHeight), "Garden Scene", nil, nil)
	check(err)
	ctx.MakeContextCurrent()
	ctx.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	err = gl.InitWithProcAddrFunc(func(name string) unsafe.Pointer {
		addr := glfw.GetProcAddress(name)
		if addr == nil {
			return unsafe.Pointer(uintptr(0xffff_ffff_ffff_ffff))
		}
		return addr
	})
	check(err)

	sceneShader, err := NewShaderProgram("scene", Res_SceneVshSrc, Res_SceneFshSrc)
	check(err)
	imguiShader, err := NewShaderProgram("imgui", Res_ImguiVshSrc, Res_ImguiFshSrc)
	check(err)
	gui := NewImGui(imguiShader)

	scn, err := NewScene(sceneShader)
	check(err)

	view := libview.NewViewManager(glfwClock{}, sceneShader, lens)
	keys := glfwKeys{win: ctx}

	ctx.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		view.OnCursorMoved(float32(x), float32(y))
		gui.IO.SetMousePosition(im.Vec2{X: float32(x), Y: float32(y)})
	})
	ctx.SetScrollCallback(func(w *glfw.Window, dx, dy float64) {
		view.OnScroll(float32(dy))
	})

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.53, 0.71, 0.87, 1)

	for !ctx.ShouldClose() {
		glfw.PollEvents()
		if ctx.GetKey(glfw.KeyEscape) == glfw.Press {
			ctx.SetShouldClose(true)
		}

		view.OnFrameStart()
		view.ProcessInputAndPublish(keys)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		scn.Draw()

		im.NewFrame()
		if Arguments.ShowOverlay {
			drawOverlay(view)
		}
		gui.Draw()

		ctx.SwapBuffers()
	}
}

func drawOverlay(view *libview.ViewManager) {
	cam := view.Camera
	im.Begin("Camera")
	im.Text(fmt.Sprintf("Mode: %v (switched %d times)", view.Modes.Active(), view.Modes.Transitions()))
	im.Text(fmt.Sprintf("Pos: %.2f %.2f %.2f", cam.Position.X(), cam.Position.Y(), cam.Position.Z()))
	im.Text(fmt.Sprintf("Yaw/Pitch: %.1f / %.1f", cam.Yaw, cam.Pitch))
	im.Text(fmt.Sprintf("Speed: %.1f  Fov: %.0f", cam.Speed, cam.Fov))
	im.End()
}

func check(err error) {
	if err != nil {
		log.Panic(err)
	}
}
