package main

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout: position (3), normal (3), uv (2)
const vertexStride = 8

// Mesh is an uploaded triangle mesh. One instance per shape is shared by every
// scene object that draws it.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

func newMesh(vertices []float32, indices []uint32) *Mesh {
	var vao, vbo, ebo uint32
	gl.CreateVertexArrays(1, &vao)
	gl.CreateBuffers(1, &vbo)
	gl.NamedBufferStorage(vbo, len(vertices)*4, gl.Ptr(vertices), 0)
	gl.CreateBuffers(1, &ebo)
	gl.NamedBufferStorage(ebo, len(indices)*4, gl.Ptr(indices), 0)

	gl.VertexArrayVertexBuffer(vao, 0, vbo, 0, vertexStride*4)
	gl.VertexArrayElementBuffer(vao, ebo)

	gl.EnableVertexArrayAttrib(vao, 0)
	gl.VertexArrayAttribFormat(vao, 0, 3, gl.FLOAT, false, 0)
	gl.VertexArrayAttribBinding(vao, 0, 0)
	gl.EnableVertexArrayAttrib(vao, 1)
	gl.VertexArrayAttribFormat(vao, 1, 3, gl.FLOAT, false, 3*4)
	gl.VertexArrayAttribBinding(vao, 1, 0)
	gl.EnableVertexArrayAttrib(vao, 2)
	gl.VertexArrayAttribFormat(vao, 2, 2, gl.FLOAT, false, 6*4)
	gl.VertexArrayAttribBinding(vao, 2, 0)

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}

type meshBuilder struct {
	vertices []float32
	indices  []uint32
}

func (mb *meshBuilder) vertex(pos, normal mgl32.Vec3, uv mgl32.Vec2) uint32 {
	index := uint32(len(mb.vertices) / vertexStride)
	mb.vertices = append(mb.vertices,
		pos.X(), pos.Y(), pos.Z(),
		normal.X(), normal.Y(), normal.Z(),
		uv.X(), uv.Y())
	return index
}

// quad adds two triangles for the corners a, b, c, d in counter-clockwise
// order with a flat normal.
func (mb *meshBuilder) quad(a, b, c, d mgl32.Vec3, normal mgl32.Vec3) {
	i0 := mb.vertex(a, normal, mgl32.Vec2{0, 0})
	i1 := mb.vertex(b, normal, mgl32.Vec2{1, 0})
	i2 := mb.vertex(c, normal, mgl32.Vec2{1, 1})
	i3 := mb.vertex(d, normal, mgl32.Vec2{0, 1})
	mb.indices = append(mb.indices, i0, i1, i2, i0, i2, i3)
}

func (mb *meshBuilder) triangle(a, b, c mgl32.Vec3, normal mgl32.Vec3, ua, ub, uc mgl32.Vec2) {
	i0 := mb.vertex(a, normal, ua)
	i1 := mb.vertex(b, normal, ub)
	i2 := mb.vertex(c, normal, uc)
	mb.indices = append(mb.indices, i0, i1, i2)
}

// NewPlaneMesh builds a unit ground plane in the xz plane, facing up, spanning
// [-1, 1] on both axes.
func NewPlaneMesh() *Mesh {
	mb := &meshBuilder{}
	mb.quad(
		mgl32.Vec3{-1, 0, 1},
		mgl32.Vec3{1, 0, 1},
		mgl32.Vec3{1, 0, -1},
		mgl32.Vec3{-1, 0, -1},
		mgl32.Vec3{0, 1, 0},
	)
	return newMesh(mb.vertices, mb.indices)
}

// NewBoxMesh builds a unit cube centered on the origin with flat-shaded faces.
func NewBoxMesh() *Mesh {
	mb := &meshBuilder{}
	h := float32(0.5)
	// front, back, left, right, top, bottom
	mb.quad(mgl32.Vec3{-h, -h, h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{-h, h, h}, mgl32.Vec3{0, 0, 1})
	mb.quad(mgl32.Vec3{h, -h, -h}, mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, h, -h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{0, 0, -1})
	mb.quad(mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, -h, h}, mgl32.Vec3{-h, h, h}, mgl32.Vec3{-h, h, -h}, mgl32.Vec3{-1, 0, 0})
	mb.quad(mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{1, 0, 0})
	mb.quad(mgl32.Vec3{-h, h, h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{-h, h, -h}, mgl32.Vec3{0, 1, 0})
	mb.quad(mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{-h, -h, h}, mgl32.Vec3{0, -1, 0})
	return newMesh(mb.vertices, mb.indices)
}

// NewPyramidMesh builds a four-sided pyramid with a unit square base centered
// on the origin, apex half a unit above and base half a unit below.
func NewPyramidMesh() *Mesh {
	mb := &meshBuilder{}
	h := float32(0.5)
	apex := mgl32.Vec3{0, h, 0}
	base := [4]mgl32.Vec3{
		{-h, -h, h}, {h, -h, h}, {h, -h, -h}, {-h, -h, -h},
	}
	apexUv := mgl32.Vec2{0.5, 1}
	for i := 0; i < 4; i++ {
		a, b := base[i], base[(i+1)%4]
		edge1 := b.Sub(a)
		edge2 := apex.Sub(a)
		normal := edge1.Cross(edge2).Normalize()
		mb.triangle(a, b, apex, normal, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, apexUv)
	}
	mb.quad(base[3], base[2], base[1], base[0], mgl32.Vec3{0, -1, 0})
	return newMesh(mb.vertices, mb.indices)
}

// NewConeMesh builds a cone with base radius 0.5 sitting on the xz plane and
// an apex one unit up, with the given number of radial segments.
func NewConeMesh(segments int) *Mesh {
	mb := &meshBuilder{}
	radius := float32(0.5)
	apex := mgl32.Vec3{0, 1, 0}

	for i := 0; i < segments; i++ {
		a0 := 2 * math32.Pi * float32(i) / float32(segments)
		a1 := 2 * math32.Pi * float32(i+1) / float32(segments)
		p0 := mgl32.Vec3{radius * math32.Cos(a0), 0, radius * math32.Sin(a0)}
		p1 := mgl32.Vec3{radius * math32.Cos(a1), 0, radius * math32.Sin(a1)}

		// Slanted side normal at the segment midpoint.
		mid := (a0 + a1) / 2
		normal := mgl32.Vec3{math32.Cos(mid), radius, math32.Sin(mid)}.Normalize()
		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)
		mb.triangle(p1, p0, apex, normal,
			mgl32.Vec2{u1, 0}, mgl32.Vec2{u0, 0}, mgl32.Vec2{(u0 + u1) / 2, 1})

		// Base cap triangle fan around the center.
		center := mb.vertex(mgl32.Vec3{}, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0.5, 0.5})
		b0 := mb.vertex(p0, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0.5 + math32.Cos(a0)/2, 0.5 + math32.Sin(a0)/2})
		b1 := mb.vertex(p1, mgl32.Vec3{0, -1, 0}, mgl32.Vec2{0.5 + math32.Cos(a1)/2, 0.5 + math32.Sin(a1)/2})
		mb.indices = append(mb.indices, center, b0, b1)
	}
	return newMesh(mb.vertices, mb.indices)
}
