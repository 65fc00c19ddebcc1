package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/appengine-ltd/multi-adjust/internal/scene"
)

func sampleScene() *scene.Scene {
	sc := scene.New()
	sc.Mode = scene.EditMesh

	shared := scene.NewMesh("quad")
	shared.Verts = []scene.Vertex{
		{Co: mgl64.Vec3{0, 0, 0}, Select: true},
		{Co: mgl64.Vec3{1, 0, 0}},
	}
	shared.Edges = []scene.Edge{{Verts: [2]int{0, 1}, Select: true}}
	shared.SelectMode = scene.SelectMode{Edge: true}

	a := sc.Add(scene.NewMeshObject("a", shared))
	a.Location = mgl64.Vec3{1, 2, 3}
	a.Euler = mgl64.Vec3{0.1, 0, 0}

	b := sc.Add(scene.NewMeshObject("b", shared))
	b.Parent = a
	b.RotMode = scene.RotationQuaternion
	b.Quat = mgl64.QuatIdent()

	crv := scene.NewCurve("arc")
	crv.Splines = []*scene.Spline{{
		Type: scene.SplineNURBS,
		Points: []scene.SplinePoint{
			{Co: mgl64.Vec4{0, 0, 0, 1}, Weight: 2, Radius: 1, Tilt: 0.5, Select: true},
		},
	}}
	c := sc.Add(scene.NewCurveObject("c", crv))
	c.Selected = false

	return sc
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")

	if err := Save(path, sampleScene()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if sc.Mode != scene.EditMesh {
		t.Fatalf("mode %v want edit-mesh", sc.Mode)
	}
	if len(sc.Objects) != 3 {
		t.Fatalf("object count %d", len(sc.Objects))
	}

	a, b := sc.Objects[0], sc.Objects[1]
	if a.Mesh == nil || b.Mesh == nil || a.Mesh != b.Mesh {
		t.Fatalf("shared mesh not re-linked")
	}
	if b.Parent != a {
		t.Fatalf("parent not re-linked")
	}
	if a.Location != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("location %v", a.Location)
	}
	if !a.Mesh.SelectMode.Edge || !a.Mesh.Edges[0].Select {
		t.Fatalf("mesh selection lost: %+v", a.Mesh)
	}
	if b.RotMode != scene.RotationQuaternion {
		t.Fatalf("rotation mode lost: %v", b.RotMode)
	}

	c := sc.Objects[2]
	if c.Curve == nil || len(c.Curve.Splines) != 1 {
		t.Fatalf("curve lost")
	}
	p := c.Curve.Splines[0].Points[0]
	if p.Weight != 2 || p.Tilt != 0.5 || !p.Select {
		t.Fatalf("curve point lost: %+v", p)
	}
	if c.Selected {
		t.Fatalf("selection flag lost")
	}
	if sc.Active != a {
		t.Fatalf("active object lost")
	}
}

func TestLoadYAMLScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	doc := `
format_version: 1
mode: object
meshes:
  - name: tri
    verts:
      - co: [0, 0, 0]
        select: true
      - co: [1, 0, 0]
      - co: [0, 1, 0]
objects:
  - name: tri
    type: mesh
    data: tri
    location: [1, 0, 0]
    scale: [1, 1, 1]
    selected: true
    editable: true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(sc.Objects) != 1 || sc.Objects[0].Mesh == nil {
		t.Fatalf("yaml scene not loaded: %+v", sc.Objects)
	}
	if !sc.Objects[0].Mesh.Verts[0].Select {
		t.Fatalf("vertex selection lost")
	}
}

func TestLoadRejectsOutOfRangeMeshIndices(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		mesh string
	}{
		{
			name: "face",
			mesh: `{"name":"m","verts":[{"co":[0,0,0],"select":true}],"faces":[{"verts":[0,5],"select":true}]}`,
		},
		{
			name: "edge",
			mesh: `{"name":"m","verts":[{"co":[0,0,0]}],"edges":[{"verts":[0,-1]}]}`,
		},
	}
	for _, tc := range tests {
		path := filepath.Join(dir, tc.name+".json")
		doc := `{"format_version":1,"mode":"edit-mesh","meshes":[` + tc.mesh + `],` +
			`"objects":[{"name":"a","type":"mesh","data":"m","scale":[1,1,1],"selected":true,"editable":true}]}`
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatalf("%s: write: %v", tc.name, err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected an error for an out-of-range vertex index", tc.name)
		}
	}
}

func TestLoadRejectsUnknownReferences(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	doc := `{"format_version":1,"objects":[{"name":"a","type":"mesh","data":"missing","scale":[1,1,1]}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for a dangling mesh reference")
	}
}
