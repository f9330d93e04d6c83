package stilllife

import (
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneManager prepares and renders the still life. It owns no GPU
// state itself; it drives the texture registry, material library, and
// shape meshes through the shader's uniform surface.
type SceneManager struct {
	log       Logger
	shader    UniformSetter
	textures  *TextureRegistry
	materials *MaterialLibrary
	shapes    Shapes
}

func NewSceneManager(log Logger, shader UniformSetter, textures *TextureRegistry, materials *MaterialLibrary, shapes Shapes) *SceneManager {
	if log == nil {
		log = NewNopLogger()
	}
	return &SceneManager{
		log:       log,
		shader:    shader,
		textures:  textures,
		materials: materials,
		shapes:    shapes,
	}
}

// composeTransform builds the model matrix for a draw. The
// multiplication order translate * rotateX * rotateY * rotateZ * scale
// is fixed; changing it silently misplaces geometry.
func composeTransform(scale mgl32.Vec3, xRotDeg, yRotDeg, zRotDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	translation := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(xRotDeg))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(yRotDeg))
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(zRotDeg))
	scaling := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return translation.Mul4(rotationX).Mul4(rotationY).Mul4(rotationZ).Mul4(scaling)
}

// SetTransformations uploads the model matrix for the next draw.
func (s *SceneManager) SetTransformations(scale mgl32.Vec3, xRotDeg, yRotDeg, zRotDeg float32, position mgl32.Vec3) {
	s.shader.SetMat4(uniformModel, composeTransform(scale, xRotDeg, yRotDeg, zRotDeg, position))
}

// SetShaderColor switches the next draw to flat color.
func (s *SceneManager) SetShaderColor(r, g, b, a float32) {
	s.shader.SetBool(uniformUseTexture, false)
	s.shader.SetVec4(uniformColor, mgl32.Vec4{r, g, b, a})
}

// SetShaderTexture switches the next draw to the texture registered
// under tag. An unknown tag flows through as the -1 sentinel slot.
func (s *SceneManager) SetShaderTexture(tag string) {
	s.shader.SetBool(uniformUseTexture, true)
	s.shader.SetSampler2D(uniformTexture, s.textures.FindTextureSlot(tag))
}

// SetTextureUVScale sets the texture coordinate multiplier for the
// next draw.
func (s *SceneManager) SetTextureUVScale(u, v float32) {
	s.shader.SetVec2(uniformUVScale, mgl32.Vec2{u, v})
}

// SetShaderMaterial uploads the material registered under tag. An
// unknown tag leaves the previous material in place.
func (s *SceneManager) SetShaderMaterial(tag string) {
	if material, ok := s.materials.Find(tag); ok {
		material.apply(s.shader)
	}
}

// LoadSceneTextures loads the nine scene textures from dir and binds
// them to their texture units. Failures are logged and skipped.
func (s *SceneManager) LoadSceneTextures(dir string) {
	for _, tex := range []struct{ file, tag string }{
		{"plastic.jpg", "plastic"},
		{"wood.jpg", "wood"},
		{"red.jpg", "red"},
		{"grip.jpg", "grip"},
		{"brick.jpg", "brick"},
		{"blue.jpg", "blue"},
		{"silver.jpg", "silver"},
		{"yellow.jpg", "yellow"},
		{"metal2.jpg", "metal2"},
	} {
		s.textures.CreateGLTexture(filepath.Join(dir, tex.file), tex.tag)
	}

	s.textures.BindGLTextures()
}

// DefineObjectMaterials registers the three material presets used by
// the scene script.
func (s *SceneManager) DefineObjectMaterials() {
	s.materials.Define(Material{
		Tag:             "metal",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
		AmbientStrength: 5.0,
		DiffuseColor:    mgl32.Vec3{0.2, 0.2, 0.2},
		SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess:       12.0,
	})
	s.materials.Define(Material{
		Tag:             "wood",
		AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
		AmbientStrength: 2.0,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
		SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:       4.0,
	})
	s.materials.Define(Material{
		Tag:             "plastic",
		AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
		AmbientStrength: 1.5,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
		SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:       1.0,
	})
}

// SetupSceneLights pushes the four fixed lights to the shader.
func (s *SceneManager) SetupSceneLights() {
	uploadLights(s.shader, sceneLights())
}

// PrepareScene loads textures, materials, lights, and the one shared
// mesh per primitive shape.
func (s *SceneManager) PrepareScene(textureDir string) {
	s.LoadSceneTextures(textureDir)
	s.DefineObjectMaterials()
	s.SetupSceneLights()

	s.shapes.LoadBoxMesh()
	s.shapes.LoadPlaneMesh()
	s.shapes.LoadCylinderMesh()
	s.shapes.LoadConeMesh()
	s.shapes.LoadPrismMesh()
	s.shapes.LoadPyramid4Mesh()
	s.shapes.LoadSphereMesh()
	s.shapes.LoadTaperedCylinderMesh()
	s.shapes.LoadTorusMesh()
}

// SceneModule wires the scene pipeline into the app: registry,
// material library, shape meshes, camera, and the startup/render/
// teardown systems. Requires ConfigModule, PlatformWindowModule, and
// RendererModule to be installed first.
type SceneModule struct {
}

func (m SceneModule) Install(app *App) {
	log := app.Logger()
	shader := GetResource[Shader](app)
	if shader == nil {
		panic("SceneModule requires RendererModule")
	}

	textures := NewTextureRegistry(log)
	materials := NewMaterialLibrary()
	shapes := NewShapeMeshes(log)
	scene := NewSceneManager(log, shader, textures, materials, shapes)

	app.AddResources(textures, materials, shapes, scene, defaultCamera(), &frameStats{})

	app.UseSystem(System(prepareSceneSystem).InStage(Startup))
	app.UseSystem(System(renderSceneSystem).InStage(Render))
	app.UseSystem(System(releaseSceneSystem).InStage(Finale))
}

// frameStats drives the once-per-second frame-rate debug log.
type frameStats struct {
	windowStart time.Time
	frames      int
}

func prepareSceneSystem(scene *SceneManager, cfg *Config, shader *Shader, camera *Camera, ws *WindowState) {
	shader.Use()
	scene.PrepareScene(cfg.TextureDir)
	camera.upload(shader, ws.AspectRatio())
}

func renderSceneSystem(scene *SceneManager, shader *Shader, ws *WindowState, timeResource *Time, stats *frameStats) {
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	shader.Use()
	scene.RenderScene()

	ws.windowGlfw.SwapBuffers()

	stats.frames++
	if stats.windowStart.IsZero() {
		stats.windowStart = timeResource.Time
	} else if elapsed := timeResource.Time.Sub(stats.windowStart); elapsed >= time.Second {
		scene.log.Debugf("%.1f fps", float64(stats.frames)/elapsed.Seconds())
		stats.windowStart = timeResource.Time
		stats.frames = 0
	}
}

func releaseSceneSystem(textures *TextureRegistry, shapes *ShapeMeshes) {
	textures.DestroyGLTextures()
	shapes.Release()
}
