package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/slices"
)

// Material is the Phong surface description applied per object.
type Material struct {
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

type sceneObject struct {
	mesh     string
	material string
	texture  string
	uvScale  mgl32.Vec2
	scale    mgl32.Vec3
	// Degrees, applied around x, then y, then z
	rotation mgl32.Vec3
	position mgl32.Vec3
}

// Scene is the static garden: a tiled grass plane, a dirt patch, a diagonal
// brick path and a row of topiaries. It draws under whatever view/projection
// matrices the camera core last published to the shader.
type Scene struct {
	shader    *ShaderProgram
	meshes    map[string]*Mesh
	textures  map[string]uint32
	materials map[string]Material
	objects   []sceneObject
}

func NewScene(shader *ShaderProgram) (*Scene, error) {
	scn := &Scene{
		shader: shader,
		meshes: map[string]*Mesh{
			"plane":   NewPlaneMesh(),
			"box":     NewBoxMesh(),
			"pyramid": NewPyramidMesh(),
			"cone":    NewConeMesh(36),
		},
		textures:  map[string]uint32{},
		materials: sceneMaterials(),
		objects:   sceneObjects(),
	}

	for _, name := range []string{"grass", "dirt", "brick", "hedge", "foliage"} {
		id, err := LoadSceneTexture(fmt.Sprintf("assets/textures/%v.jpg", name))
		if err != nil {
			return nil, err
		}
		scn.textures[name] = id
	}

	// Group the draw order by texture to keep rebinds to a minimum.
	slices.SortStableFunc(scn.objects, func(a, b sceneObject) int {
		return strings.Compare(a.texture, b.texture)
	})

	scn.applyLights()
	return scn, nil
}

func sceneMaterials() map[string]Material {
	return map[string]Material{
		"grass": {
			AmbientColor:    mgl32.Vec3{0.4, 0.6, 0.3},
			AmbientStrength: 0.03,
			DiffuseColor:    mgl32.Vec3{0.4, 0.6, 0.3},
			SpecularColor:   mgl32.Vec3{0.35, 0.45, 0.35},
			Shininess:       5,
		},
		"dirt": {
			AmbientColor:    mgl32.Vec3{0.5, 0.4, 0.3},
			AmbientStrength: 0.01,
			DiffuseColor:    mgl32.Vec3{0.5, 0.4, 0.3},
			SpecularColor:   mgl32.Vec3{0.18, 0.18, 0.18},
			Shininess:       1.2,
		},
		"brick": {
			AmbientColor:    mgl32.Vec3{0.6, 0.4, 0.3},
			AmbientStrength: 0.05,
			DiffuseColor:    mgl32.Vec3{0.6, 0.4, 0.3},
			SpecularColor:   mgl32.Vec3{0.45, 0.35, 0.35},
			Shininess:       4,
		},
		"hedge": {
			AmbientColor:    mgl32.Vec3{0.3, 0.5, 0.2},
			AmbientStrength: 0.06,
			DiffuseColor:    mgl32.Vec3{0.3, 0.5, 0.2},
			SpecularColor:   mgl32.Vec3{0.22, 0.32, 0.22},
			Shininess:       3,
		},
		"foliage": {
			AmbientColor:    mgl32.Vec3{0.35, 0.55, 0.25},
			AmbientStrength: 0.06,
			DiffuseColor:    mgl32.Vec3{0.35, 0.55, 0.25},
			SpecularColor:   mgl32.Vec3{0.28, 0.35, 0.28},
			Shininess:       7,
		},
	}
}

func sceneObjects() []sceneObject {
	objects := []sceneObject{
		// Tiled grass ground plane
		{
			mesh: "plane", material: "grass", texture: "grass",
			uvScale: mgl32.Vec2{4, 2},
			scale:   mgl32.Vec3{20, 1, 15},
		},
		// Dirt patch under the topiaries, lifted a touch to avoid z-fighting
		{
			mesh: "plane", material: "dirt", texture: "dirt",
			uvScale:  mgl32.Vec2{2, 2},
			scale:    mgl32.Vec3{8, 3.5, 8},
			position: mgl32.Vec3{0, 0.02, 6.5},
		},
		// Main topiary: rectangular hedge base with a pyramid bush on top
		{
			mesh: "box", material: "hedge", texture: "hedge",
			uvScale:  mgl32.Vec2{2, 1},
			scale:    mgl32.Vec3{2, 1, 1.5},
			rotation: mgl32.Vec3{0, 45, 0},
			position: mgl32.Vec3{0, 0.75, 6.5},
		},
		{
			mesh: "pyramid", material: "foliage", texture: "foliage",
			uvScale:  mgl32.Vec2{1.5, 1.5},
			scale:    mgl32.Vec3{1.5, 2.5, 1.5},
			rotation: mgl32.Vec3{0, 45, 0},
			position: mgl32.Vec3{0, 2.5, 6.5},
		},
	}

	// Diagonal brick path, two staggered rows of five
	brickRows := []mgl32.Vec3{
		{-1.2, 0.08, 7.2},
		{-0.8, 0.08, 7.6},
	}
	for _, start := range brickRows {
		for i := 0; i < 5; i++ {
			offset := float32(i) * 0.4
			objects = append(objects, sceneObject{
				mesh: "box", material: "brick", texture: "brick",
				uvScale:  mgl32.Vec2{1, 1},
				scale:    mgl32.Vec3{0.5, 0.15, 0.5},
				rotation: mgl32.Vec3{0, 45, 0},
				position: start.Add(mgl32.Vec3{-offset, 0, offset}),
			})
		}
	}

	// Cone-topped topiaries marching away from the main one
	coneTops := []struct {
		base mgl32.Vec3
		size float32
	}{
		{mgl32.Vec3{1.5, 0, 5.0}, 0.7},
		{mgl32.Vec3{3.0, 0, 3.5}, 0.75},
		{mgl32.Vec3{4.5, 0, 2.0}, 0.65},
	}
	for _, top := range coneTops {
		objects = append(objects, sceneObject{
			mesh: "box", material: "hedge", texture: "hedge",
			uvScale:  mgl32.Vec2{1.5, 1},
			scale:    mgl32.Vec3{2, 1, 1.5},
			rotation: mgl32.Vec3{0, 45, 0},
			position: top.base.Add(mgl32.Vec3{0, 0.75, 0}),
		}, sceneObject{
			mesh: "cone", material: "foliage", texture: "foliage",
			uvScale:  mgl32.Vec2{1.2, 1.2},
			scale:    mgl32.Vec3{top.size, 1, top.size},
			rotation: mgl32.Vec3{0, 45, 0},
			position: top.base.Add(mgl32.Vec3{0, 1.25, 0}),
		})
	}

	return objects
}

// applyLights uploads the fixed lighting rig once: a strong directional sun,
// a neutral fill light and a warm amber fill for the left side.
func (scn *Scene) applyLights() {
	sh := scn.shader
	sh.SetUniform("bUseLighting", true)

	sh.SetUniform("directionalLight.direction", mgl32.Vec3{-0.5, -1, -0.3})
	sh.SetUniform("directionalLight.ambient", mgl32.Vec3{0.2, 0.2, 0.2})
	sh.SetUniform("directionalLight.diffuse", mgl32.Vec3{1.5, 1.5, 1.4})
	sh.SetUniform("directionalLight.specular", mgl32.Vec3{1, 1, 1})
	sh.SetUniform("directionalLight.bActive", true)

	sh.SetUniform("pointLights[0].position", mgl32.Vec3{3.5, 5, 1.5})
	sh.SetUniform("pointLights[0].ambient", mgl32.Vec3{0.1, 0.1, 0.1})
	sh.SetUniform("pointLights[0].diffuse", mgl32.Vec3{0.4, 0.4, 0.35})
	sh.SetUniform("pointLights[0].specular", mgl32.Vec3{0.3, 0.3, 0.3})
	sh.SetUniform("pointLights[0].bActive", true)

	sh.SetUniform("pointLights[1].position", mgl32.Vec3{-3.5, 5, 6.5})
	sh.SetUniform("pointLights[1].ambient", mgl32.Vec3{0.15, 0.1, 0.05})
	sh.SetUniform("pointLights[1].diffuse", mgl32.Vec3{0.8, 0.6, 0.3})
	sh.SetUniform("pointLights[1].specular", mgl32.Vec3{0.4, 0.3, 0.2})
	sh.SetUniform("pointLights[1].bActive", true)
}

func modelMatrix(obj sceneObject) mgl32.Mat4 {
	translation := mgl32.Translate3D(obj.position.X(), obj.position.Y(), obj.position.Z())
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(obj.rotation.X()))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(obj.rotation.Y()))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(obj.rotation.Z()))
	scale := mgl32.Scale3D(obj.scale.X(), obj.scale.Y(), obj.scale.Z())
	return translation.Mul4(rotX).Mul4(rotY).Mul4(rotZ).Mul4(scale)
}

// Draw renders every object under the matrices currently set on the shader.
func (scn *Scene) Draw() {
	scn.shader.Bind()
	scn.shader.SetUniform("objectTexture", 0)

	boundTexture := uint32(0)
	for _, obj := range scn.objects {
		if id := scn.textures[obj.texture]; id != boundTexture {
			gl.BindTextureUnit(0, id)
			boundTexture = id
		}

		mat := scn.materials[obj.material]
		scn.shader.SetUniform("material.ambientColor", mat.AmbientColor)
		scn.shader.SetUniform("material.ambientStrength", mat.AmbientStrength)
		scn.shader.SetUniform("material.diffuseColor", mat.DiffuseColor)
		scn.shader.SetUniform("material.specularColor", mat.SpecularColor)
		scn.shader.SetUniform("material.shininess", mat.Shininess)

		scn.shader.SetUniform("model", modelMatrix(obj))
		scn.shader.SetUniform("UVscale", obj.uvScale)
		scn.shader.SetUniform("bUseTexture", true)

		scn.meshes[obj.mesh].Draw()
	}
}
