// Package primitives owns GPU meshes and materials for the sandbox shapes:
// a cached unit sphere for the ball and per-size box meshes for the ground
// slab. Meshes are created lazily so GPU resources are allocated after the
// window/OpenGL context exists.
package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"game-sandbox/internal/ground"
)

// defaultSphereRings and defaultSphereSlices control sphere mesh resolution.
const defaultSphereRings = 16
const defaultSphereSlices = 16

// ballColor matches the original sandbox ball tint.
var ballColor = rl.NewColor(124, 144, 255, 255)

// groundColor is the slab albedo.
var groundColor = rl.NewColor(200, 200, 200, 255)

// Registry holds the sandbox meshes and the lit material. It also implements
// ground.MeshAllocator so the ground synchronizer can regenerate the slab
// mesh without depending on raylib.
type Registry struct {
	sphereMesh   rl.Mesh
	sphereMtl    rl.Material
	sphereLoaded bool

	boxMtl       rl.Material
	boxMtlLoaded bool
	boxes        map[ground.MeshID]rl.Mesh
	nextID       ground.MeshID

	viewPos  [3]float32
	lightDir [3]float32
}

// NewRegistry returns a registry with no meshes. Shapes are created on first
// use.
func NewRegistry() *Registry {
	return &Registry{
		boxes:    make(map[ground.MeshID]rl.Mesh),
		nextID:   1,
		lightDir: [3]float32{0.5, 1, 0.5},
	}
}

// SetView sets camera position and direction-to-light for this frame. Call
// once per frame before drawing so lit meshes get correct shading.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// AllocBox generates a box mesh with the given full extents and returns its
// handle. Must be called while the GL context exists.
func (r *Registry) AllocBox(size [3]float32) ground.MeshID {
	r.ensureBoxMaterial()
	id := r.nextID
	r.nextID++
	r.boxes[id] = rl.GenMeshCube(size[0], size[1], size[2])
	return id
}

// Free unloads the box mesh with the given handle. Unknown handles are
// ignored.
func (r *Registry) Free(id ground.MeshID) {
	mesh, ok := r.boxes[id]
	if !ok {
		return
	}
	rl.UnloadMesh(&mesh)
	delete(r.boxes, id)
}

// DrawBox draws an allocated box mesh at position. Must be called between
// BeginMode3D and EndMode3D.
func (r *Registry) DrawBox(id ground.MeshID, position [3]float32) {
	mesh, ok := r.boxes[id]
	if !ok {
		return
	}
	r.setLitUniforms(r.boxMtl.Shader)
	rl.DrawMesh(mesh, r.boxMtl, rl.MatrixTranslate(position[0], position[1], position[2]))
}

// DrawBall draws the cached unit sphere scaled to radius at position. Must be
// called between BeginMode3D and EndMode3D; SetView must run first each frame.
func (r *Registry) DrawBall(position [3]float32, radius float32) {
	r.ensureSphere()
	r.setLitUniforms(r.sphereMtl.Shader)
	// Unit sphere has radius 0.5, so diameter 1; scale by 2r for radius r.
	s := radius * 2
	scaleM := rl.MatrixScale(s, s, s)
	transM := rl.MatrixTranslate(position[0], position[1], position[2])
	rl.DrawMesh(r.sphereMesh, r.sphereMtl, rl.MatrixMultiply(scaleM, transM))
}

// ensureSphere creates the sphere mesh and lit material if not yet cached.
func (r *Registry) ensureSphere() {
	if r.sphereLoaded {
		return
	}
	r.sphereMesh = rl.GenMeshSphere(0.5, defaultSphereRings, defaultSphereSlices)
	r.sphereMtl = rl.LoadMaterialDefault()
	if albedo := r.sphereMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = ballColor
	}
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		r.sphereMtl.Shader = shader
	}
	r.sphereLoaded = true
}

// ensureBoxMaterial creates the shared slab material if not yet cached.
func (r *Registry) ensureBoxMaterial() {
	if r.boxMtlLoaded {
		return
	}
	r.boxMtl = rl.LoadMaterialDefault()
	if albedo := r.boxMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = groundColor
	}
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		r.boxMtl.Shader = shader
	}
	r.boxMtlLoaded = true
}

// loadLitShader returns a shader that does simple directional light +
// ambient. Same vertex attributes as raylib meshes: vertexPosition,
// vertexTexCoord, vertexNormal.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * 0.75;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), 48.0) * 0.35;
  vec3 specular = vec3(spec) * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// defaultAmbient is the ambient term (dim so shadowed areas aren't pure black).
var defaultAmbient = [4]float32{0.2, 0.22, 0.26, 1.0}

// setLitUniforms sets viewPos, lightDir, and ambient on the given shader
// (cgo-safe: local arrays).
func (r *Registry) setLitUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
}
