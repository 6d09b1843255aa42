package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderProgram is a linked vertex+fragment program addressed through named
// uniforms. It satisfies libview.UniformSink.
type ShaderProgram struct {
	glId             uint32
	name             string
	uniformLocations map[string]int32
}

func NewShaderProgram(name, vertexSrc, fragmentSrc string) (*ShaderProgram, error) {
	vsh, err := compileStage(name, vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fsh, err := compileStage(name, fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vsh)
		return nil, err
	}

	id := gl.CreateProgram()
	gl.AttachShader(id, vsh)
	gl.AttachShader(id, fsh)
	gl.LinkProgram(id)
	gl.DeleteShader(vsh)
	gl.DeleteShader(fsh)

	var ok int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		return nil, fmt.Errorf("failed to link %v shader, log: %v", name, readProgramInfoLog(id))
	}

	return &ShaderProgram{
		glId:             id,
		name:             name,
		uniformLocations: map[string]int32{},
	}, nil
}

func compileStage(name, source string, stage uint32) (uint32, error) {
	id := gl.CreateShader(stage)
	cStrs, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, cStrs, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(id)
		return 0, fmt.Errorf("failed to compile %v shader stage %04x, log: %v", name, stage, infoLog)
	}
	return id, nil
}

func readProgramInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(infoLog))
	return infoLog
}

func (prog *ShaderProgram) Id() uint32 {
	return prog.glId
}

func (prog *ShaderProgram) Bind() {
	gl.UseProgram(prog.glId)
}

func (prog *ShaderProgram) Destroy() {
	gl.DeleteProgram(prog.glId)
	prog.glId = 0
}

func (prog *ShaderProgram) GetUniformLocation(name string) int32 {
	if location, ok := prog.uniformLocations[name]; ok {
		return location
	}

	location := gl.GetUniformLocation(prog.glId, gl.Str(name+"\x00"))
	prog.uniformLocations[name] = location

	if location == -1 {
		log.Printf("%v shader: could not get location of %q\n", prog.name, name)
	}

	return location
}

// SetUniform uploads a value via DSA, so the program does not need to be
// bound.
func (prog *ShaderProgram) SetUniform(name string, value any) {
	location := prog.GetUniformLocation(name)
	if location == -1 {
		return
	}

	switch v := value.(type) {
	case mgl32.Mat4:
		gl.ProgramUniformMatrix4fv(prog.glId, location, 1, false, &v[0])
	case mgl32.Vec2:
		gl.ProgramUniform2f(prog.glId, location, v[0], v[1])
	case mgl32.Vec3:
		gl.ProgramUniform3f(prog.glId, location, v[0], v[1], v[2])
	case mgl32.Vec4:
		gl.ProgramUniform4f(prog.glId, location, v[0], v[1], v[2], v[3])
	case float32:
		gl.ProgramUniform1f(prog.glId, location, v)
	case int:
		gl.ProgramUniform1i(prog.glId, location, int32(v))
	case int32:
		gl.ProgramUniform1i(prog.glId, location, v)
	case bool:
		b := int32(0)
		if v {
			b = 1
		}
		gl.ProgramUniform1i(prog.glId, location, b)
	default:
		log.Panicf("invalid uniform type: %T", value)
	}
}
