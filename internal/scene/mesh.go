package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is the shared behavior of mesh and curve data blocks: an origin
// edit offsets them in place, and copy-on-write clones them when shared.
type Geometry interface {
	Transform(m mgl64.Mat4)
}

// SelectMode mirrors the mesh-edit select-mode triple (vert/edge/face).
type SelectMode struct {
	Vert bool
	Edge bool
	Face bool
}

type Vertex struct {
	Co     mgl64.Vec3
	Select bool
}

type Edge struct {
	Verts  [2]int
	Select bool
}

type Face struct {
	Verts  []int
	Select bool
}

// Mesh is a shared data block; multiple objects may link the same mesh.
type Mesh struct {
	Name       string
	Verts      []Vertex
	Edges      []Edge
	Faces      []Face
	SelectMode SelectMode
}

func NewMesh(name string) *Mesh {
	return &Mesh{Name: name, SelectMode: SelectMode{Vert: true}}
}

// SelectedVerts resolves the vertex index set a mesh edit applies to.
// AffectAuto follows the current select mode; edge and face targets expand
// to the union of their vertices.
func (m *Mesh) SelectedVerts(affect Affect) []int {
	seen := make(map[int]bool)

	addVerts := func() {
		for i, v := range m.Verts {
			if v.Select {
				seen[i] = true
			}
		}
	}
	addEdges := func() {
		for _, e := range m.Edges {
			if e.Select {
				seen[e.Verts[0]] = true
				seen[e.Verts[1]] = true
			}
		}
	}
	addFaces := func() {
		for _, f := range m.Faces {
			if f.Select {
				for _, vi := range f.Verts {
					seen[vi] = true
				}
			}
		}
	}

	switch affect {
	case AffectVert:
		addVerts()
	case AffectEdge:
		addEdges()
	case AffectFace:
		addFaces()
	default:
		switch {
		case m.SelectMode.Vert:
			addVerts()
		case m.SelectMode.Edge:
			addEdges()
		case m.SelectMode.Face:
			addFaces()
		}
	}

	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Transform applies a matrix to every vertex in place.
func (m *Mesh) Transform(mat mgl64.Mat4) {
	for i := range m.Verts {
		m.Verts[i].Co = mat.Mul4x1(m.Verts[i].Co.Vec4(1)).Vec3()
	}
}

// Clone deep-copies the data block for copy-on-write origin edits.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{Name: m.Name, SelectMode: m.SelectMode}
	c.Verts = append([]Vertex(nil), m.Verts...)
	c.Edges = append([]Edge(nil), m.Edges...)
	c.Faces = make([]Face, len(m.Faces))
	for i, f := range m.Faces {
		c.Faces[i] = Face{Verts: append([]int(nil), f.Verts...), Select: f.Select}
	}
	return c
}
