package scene

// EditorMode reports which editing context the viewport is in. Bare axis
// keys in a command resolve differently depending on the mode.
type EditorMode int

const (
	ObjectMode EditorMode = iota
	EditMesh
	EditCurve
)

func (m EditorMode) String() string {
	switch m {
	case EditMesh:
		return "edit-mesh"
	case EditCurve:
		return "edit-curve"
	default:
		return "object"
	}
}

// Affect selects which mesh elements an edit resolves vertices from.
type Affect int

const (
	AffectAuto Affect = iota
	AffectVert
	AffectEdge
	AffectFace
)

func (a Affect) String() string {
	switch a {
	case AffectVert:
		return "vert"
	case AffectEdge:
		return "edge"
	case AffectFace:
		return "face"
	default:
		return "auto"
	}
}

// Scene is the module's stand-in for the host scene graph: a flat object
// list plus the current editor mode. The active object is the one edit
// operations target in mesh/curve edit modes.
type Scene struct {
	Objects []*Object
	Mode    EditorMode
	Active  *Object
}

func New() *Scene {
	return &Scene{Mode: ObjectMode}
}

// Add links an object into the scene and makes it active if nothing is.
func (s *Scene) Add(obj *Object) *Object {
	s.Objects = append(s.Objects, obj)
	if s.Active == nil {
		s.Active = obj
	}
	return obj
}

// SelectedEditableObjects returns objects eligible for a batch object edit.
func (s *Scene) SelectedEditableObjects() []*Object {
	out := make([]*Object, 0, len(s.Objects))
	for _, obj := range s.Objects {
		if obj.Selected && obj.Editable {
			out = append(out, obj)
		}
	}
	return out
}

// MeshUsers counts objects sharing one mesh data block. Used for
// copy-on-write before an origin edit offsets geometry.
func (s *Scene) MeshUsers(m *Mesh) int {
	if m == nil {
		return 0
	}
	n := 0
	for _, obj := range s.Objects {
		if obj.Mesh == m {
			n++
		}
	}
	return n
}

// CurveUsers counts objects sharing one curve data block.
func (s *Scene) CurveUsers(c *Curve) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, obj := range s.Objects {
		if obj.Curve == c {
			n++
		}
	}
	return n
}
