package stilllife

// Shapes is the mesh-primitive library surface the scene script draws
// through. Each shape has a load operation (idempotent, one GPU mesh
// per shape no matter how often it is drawn) and a draw operation.
type Shapes interface {
	LoadPlaneMesh()
	LoadBoxMesh()
	LoadCylinderMesh()
	LoadConeMesh()
	LoadSphereMesh()
	LoadTaperedCylinderMesh()
	LoadTorusMesh()
	LoadPrismMesh()
	LoadPyramid4Mesh()

	DrawPlaneMesh()
	DrawBoxMesh()
	DrawCylinderMesh()
	DrawConeMesh()
	DrawSphereMesh()
	DrawTaperedCylinderMesh()
	DrawTorusMesh()
	DrawPrismMesh()
	DrawPyramid4Mesh()
}

// ShapeMeshes owns the GPU meshes of the nine primitives. Loading is
// lazy per shape; drawing an unloaded shape is a logged no-op rather
// than a crash.
type ShapeMeshes struct {
	log Logger

	plane           *Mesh
	box             *Mesh
	cylinder        *Mesh
	cone            *Mesh
	sphere          *Mesh
	taperedCylinder *Mesh
	torus           *Mesh
	prism           *Mesh
	pyramid4        *Mesh
}

func NewShapeMeshes(log Logger) *ShapeMeshes {
	if log == nil {
		log = NewNopLogger()
	}
	return &ShapeMeshes{log: log}
}

func (s *ShapeMeshes) load(slot **Mesh, name string, generate func() MeshData) {
	if *slot != nil {
		return
	}
	*slot = newMesh(generate())
	s.log.Debugf("loaded %s mesh %s", name, (*slot).id)
}

func (s *ShapeMeshes) draw(mesh *Mesh, name string) {
	if mesh == nil {
		s.log.Warnf("draw of unloaded %s mesh skipped", name)
		return
	}
	mesh.Draw()
}

func (s *ShapeMeshes) LoadPlaneMesh()    { s.load(&s.plane, "plane", planeMeshData) }
func (s *ShapeMeshes) LoadBoxMesh()      { s.load(&s.box, "box", boxMeshData) }
func (s *ShapeMeshes) LoadCylinderMesh() { s.load(&s.cylinder, "cylinder", cylinderMeshData) }
func (s *ShapeMeshes) LoadConeMesh()     { s.load(&s.cone, "cone", coneMeshData) }
func (s *ShapeMeshes) LoadSphereMesh()   { s.load(&s.sphere, "sphere", sphereMeshData) }
func (s *ShapeMeshes) LoadTaperedCylinderMesh() {
	s.load(&s.taperedCylinder, "tapered cylinder", taperedCylinderMeshData)
}
func (s *ShapeMeshes) LoadTorusMesh()    { s.load(&s.torus, "torus", torusMeshData) }
func (s *ShapeMeshes) LoadPrismMesh()    { s.load(&s.prism, "prism", prismMeshData) }
func (s *ShapeMeshes) LoadPyramid4Mesh() { s.load(&s.pyramid4, "pyramid", pyramid4MeshData) }

func (s *ShapeMeshes) DrawPlaneMesh()           { s.draw(s.plane, "plane") }
func (s *ShapeMeshes) DrawBoxMesh()             { s.draw(s.box, "box") }
func (s *ShapeMeshes) DrawCylinderMesh()        { s.draw(s.cylinder, "cylinder") }
func (s *ShapeMeshes) DrawConeMesh()            { s.draw(s.cone, "cone") }
func (s *ShapeMeshes) DrawSphereMesh()          { s.draw(s.sphere, "sphere") }
func (s *ShapeMeshes) DrawTaperedCylinderMesh() { s.draw(s.taperedCylinder, "tapered cylinder") }
func (s *ShapeMeshes) DrawTorusMesh()           { s.draw(s.torus, "torus") }
func (s *ShapeMeshes) DrawPrismMesh()           { s.draw(s.prism, "prism") }
func (s *ShapeMeshes) DrawPyramid4Mesh()        { s.draw(s.pyramid4, "pyramid") }

// Release frees every loaded mesh.
func (s *ShapeMeshes) Release() {
	for _, mesh := range []**Mesh{
		&s.plane, &s.box, &s.cylinder, &s.cone, &s.sphere,
		&s.taperedCylinder, &s.torus, &s.prism, &s.pyramid4,
	} {
		if *mesh != nil {
			(*mesh).Release()
			*mesh = nil
		}
	}
}
