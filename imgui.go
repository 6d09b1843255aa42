package main

import (
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
)

// ImGui renders the debug overlay. Cursor and scroll events are forwarded by
// main, which also feeds the camera; only key and char events are hooked here.
type ImGui struct {
	IO        imgui.IO
	FrameTime float32
	vao       uint32
	vbo       uint32
	vboSize   int
	ebo       uint32
	eboSize   int
	shader    *ShaderProgram
}

func NewImGui(shader *ShaderProgram) *ImGui {
	imgui.CreateContext(nil)

	io := imgui.CurrentIO()
	win := glfw.GetCurrentContext()
	dispWidth, dispHeight := win.GetSize()
	io.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})
	imgui.StyleColorsDark()

	var vao uint32
	gl.CreateVertexArrays(1, &vao)

	_, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.EnableVertexArrayAttrib(vao, 0)
	gl.VertexArrayAttribFormat(vao, 0, 2, gl.FLOAT, false, uint32(vertexOffsetPos))
	gl.VertexArrayAttribBinding(vao, 0, 0)
	gl.EnableVertexArrayAttrib(vao, 1)
	gl.VertexArrayAttribFormat(vao, 1, 2, gl.FLOAT, false, uint32(vertexOffsetUv))
	gl.VertexArrayAttribBinding(vao, 1, 0)
	gl.EnableVertexArrayAttrib(vao, 2)
	gl.VertexArrayAttribFormat(vao, 2, 4, gl.UNSIGNED_BYTE, true, uint32(vertexOffsetCol))
	gl.VertexArrayAttribBinding(vao, 2, 0)

	image := io.Fonts().TextureDataRGBA32()
	var atlas uint32
	gl.CreateTextures(gl.TEXTURE_2D, 1, &atlas)
	gl.TextureStorage2D(atlas, 1, gl.RGBA8, int32(image.Width), int32(image.Height))
	gl.TextureSubImage2D(atlas, 0, 0, 0, int32(image.Width), int32(image.Height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer((*byte)(image.Pixels)))
	io.Fonts().SetTextureID(imgui.TextureID(atlas))

	win.SetCharCallback(func(w *glfw.Window, char rune) {
		io.AddInputCharacters(string(char))
	})
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press {
			io.KeyPress(int(key))
		}
		if action == glfw.Release {
			io.KeyRelease(int(key))
		}
	})

	return &ImGui{
		IO:        io,
		FrameTime: float32(glfw.GetTime()),
		vao:       vao,
		shader:    shader,
	}
}

func (gui *ImGui) Draw() {
	io := imgui.CurrentIO()
	win := glfw.GetCurrentContext()

	dispWidth, dispHeight := win.GetSize()
	fbWidth, fbHeight := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	io.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})
	ortho := mgl32.Ortho2D(0, float32(dispWidth), float32(dispHeight), 0)

	time := float32(glfw.GetTime())
	io.SetDeltaTime(time - gui.FrameTime)
	gui.FrameTime = time

	gl.BindVertexArray(gui.vao)
	gui.shader.Bind()
	gui.shader.SetUniform("u_proj_mat", ortho)

	gl.Enable(gl.BLEND)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Disable(gl.DEPTH_TEST)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BindSampler(0, 0)

	imgui.Render()
	drawData := imgui.RenderedDrawData()
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbWidth) / float32(dispWidth),
		Y: float32(fbHeight) / float32(dispHeight),
	})

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		if vertexBufferSize > gui.vboSize {
			vertexSize, _, _, _ := imgui.VertexBufferLayout()
			gui.vboSize = vertexBufferSize
			gl.CreateBuffers(1, &gui.vbo)
			gl.NamedBufferStorage(gui.vbo, gui.vboSize, nil, gl.DYNAMIC_STORAGE_BIT)
			gl.VertexArrayVertexBuffer(gui.vao, 0, gui.vbo, 0, int32(vertexSize))
		}
		if vertexBufferSize > 0 {
			gl.NamedBufferSubData(gui.vbo, 0, vertexBufferSize, vertexBuffer)
		}

		indexBuffer, indexBufferSize := list.IndexBuffer()
		if indexBufferSize > gui.eboSize {
			gui.eboSize = indexBufferSize
			gl.CreateBuffers(1, &gui.ebo)
			gl.NamedBufferStorage(gui.ebo, gui.eboSize, nil, gl.DYNAMIC_STORAGE_BIT)
			gl.VertexArrayElementBuffer(gui.vao, gui.ebo)
		}
		if indexBufferSize > 0 {
			gl.NamedBufferSubData(gui.ebo, 0, indexBufferSize, indexBuffer)
		}

		var indexType uint32
		indexSize := imgui.IndexBufferLayout()
		switch indexSize {
		case 1:
			indexType = gl.UNSIGNED_BYTE
		case 2:
			indexType = gl.UNSIGNED_SHORT
		case 4:
			indexType = gl.UNSIGNED_INT
		}

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.BindTextureUnit(0, uint32(cmd.TextureID()))
				clipRect := cmd.ClipRect()
				x, y := int32(clipRect.X), int32(fbHeight)-int32(clipRect.W)
				if y <= 0 {
					y = 0
				}
				gl.Scissor(x, y, int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))
				gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), indexType, uintptr(cmd.IndexOffset()*indexSize), int32(cmd.VertexOffset()))
			}
		}
	}

	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}
