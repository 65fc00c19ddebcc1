package adjust

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/appengine-ltd/multi-adjust/internal/command"
	"github.com/appengine-ltd/multi-adjust/internal/scene"
)

func vec3Near(a, b mgl64.Vec3, tol float64) bool {
	return math.Abs(a.X()-b.X()) < tol && math.Abs(a.Y()-b.Y()) < tol && math.Abs(a.Z()-b.Z()) < tol
}

func quadMesh() *scene.Mesh {
	m := scene.NewMesh("quad")
	m.Verts = []scene.Vertex{
		{Co: mgl64.Vec3{0, 0, 0}},
		{Co: mgl64.Vec3{1, 0, 0}},
		{Co: mgl64.Vec3{1, 1, 0}},
		{Co: mgl64.Vec3{0, 1, 0}},
	}
	m.Edges = []scene.Edge{
		{Verts: [2]int{0, 1}}, {Verts: [2]int{1, 2}},
		{Verts: [2]int{2, 3}}, {Verts: [2]int{3, 0}},
	}
	m.Faces = []scene.Face{{Verts: []int{0, 1, 2, 3}}}
	return m
}

func worldVerts(obj *scene.Object) []mgl64.Vec3 {
	mw := obj.WorldMatrix()
	out := make([]mgl64.Vec3, len(obj.Mesh.Verts))
	for i, v := range obj.Mesh.Verts {
		out[i] = mw.Mul4x1(v.Co.Vec4(1)).Vec3()
	}
	return out
}

func TestApplyObjectNoSelection(t *testing.T) {
	sc := scene.New()
	obj := sc.Add(scene.NewObject("a"))
	obj.Selected = false

	_, err := ApplyObject(sc, NewSession())
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
}

func TestWorldLocationChangesOnlyEnabledAxes(t *testing.T) {
	sc := scene.New()
	parent := sc.Add(scene.NewObject("parent"))
	parent.Selected = false
	parent.Location = mgl64.Vec3{1, 2, 3}
	parent.Euler = mgl64.Vec3{0, 0, math.Pi / 4}

	obj := sc.Add(scene.NewObject("child"))
	obj.Parent = parent
	obj.Location = mgl64.Vec3{1, 1, 1}

	before := obj.WorldTranslation()

	sess := NewSession()
	sess.Transform = command.TransformLoc
	sess.ObjectSpace = SpaceGlobal
	sess.XEnable = true
	sess.XValue = 5

	if _, err := ApplyObject(sc, sess); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	got := obj.WorldTranslation()
	if math.Abs(got.X()-5) > 1e-9 {
		t.Fatalf("world x=%v want 5", got.X())
	}
	if math.Abs(got.Y()-before.Y()) > 1e-9 || math.Abs(got.Z()-before.Z()) > 1e-9 {
		t.Fatalf("disabled axes moved: %v -> %v", before, got)
	}
}

func TestRotationAppliesInDegrees(t *testing.T) {
	sc := scene.New()
	obj := sc.Add(scene.NewObject("a"))
	obj.Euler = mgl64.Vec3{0.1, 0.2, 0.3}

	sess := NewSession()
	sess.Transform = command.TransformRot
	sess.YEnable = true
	sess.YValue = 90

	if _, err := ApplyObject(sc, sess); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if math.Abs(obj.Euler.Y()-math.Pi/2) > 1e-9 {
		t.Fatalf("euler y=%v want pi/2", obj.Euler.Y())
	}
	if obj.Euler.X() != 0.1 || obj.Euler.Z() != 0.3 {
		t.Fatalf("disabled rotation axes moved: %v", obj.Euler)
	}
}

func TestOriginMoveKeepsGeometryInPlace(t *testing.T) {
	sc := scene.New()
	obj := sc.Add(scene.NewMeshObject("plate", quadMesh()))
	obj.Location = mgl64.Vec3{1, 1, 1}
	obj.Euler = mgl64.Vec3{0, 0, math.Pi / 4}
	obj.Scale = mgl64.Vec3{2, 2, 2}

	before := worldVerts(obj)

	sess := NewSession()
	sess.Transform = command.TransformOrigin
	sess.ObjectSpace = SpaceGlobal
	sess.ZEnable = true
	sess.ZValue = 2

	if _, err := ApplyObject(sc, sess); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if got := obj.WorldTranslation(); !vec3Near(got, mgl64.Vec3{1, 1, 2}, 1e-9) {
		t.Fatalf("origin world translation %v want (1,1,2)", got)
	}
	after := worldVerts(obj)
	for i := range before {
		if !vec3Near(before[i], after[i], 1e-9) {
			t.Fatalf("vertex %d moved in world space: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestOriginCopiesSharedMesh(t *testing.T) {
	sc := scene.New()
	shared := quadMesh()
	a := sc.Add(scene.NewMeshObject("a", shared))
	b := sc.Add(scene.NewMeshObject("b", shared))
	b.Selected = false
	b.Location = mgl64.Vec3{5, 0, 0}

	aBefore := worldVerts(a)
	bBefore := worldVerts(b)

	sess := NewSession()
	sess.Transform = command.TransformOrigin
	sess.XEnable = true
	sess.XValue = 3

	if _, err := ApplyObject(sc, sess); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if a.Mesh == shared {
		t.Fatalf("edited object should have copied the shared mesh")
	}
	if b.Mesh != shared {
		t.Fatalf("sibling lost its data block")
	}
	for i, w := range worldVerts(b) {
		if !vec3Near(w, bBefore[i], 1e-12) {
			t.Fatalf("sibling vertex %d moved: %v -> %v", i, bBefore[i], w)
		}
	}
	// The edited object's geometry stays put in world space too.
	for i, w := range worldVerts(a) {
		if !vec3Near(w, aBefore[i], 1e-9) {
			t.Fatalf("edited object's vertex %d drifted: %v -> %v", i, aBefore[i], w)
		}
	}
}

func TestOriginOnEmptyIsHarmless(t *testing.T) {
	sc := scene.New()
	sc.Add(scene.NewObject("empty"))

	sess := NewSession()
	sess.Transform = command.TransformOrigin
	sess.XEnable = true
	sess.XValue = 4

	if _, err := ApplyObject(sc, sess); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
}

func TestVisibilityBatchToggles(t *testing.T) {
	sc := scene.New()
	a := sc.Add(scene.NewObject("a"))
	b := sc.Add(scene.NewObject("b"))

	sess := NewSession()
	sess.Transform = command.TransformScale // no axes enabled, transform is a no-op
	sess.VisApplyViewport = true
	sess.VisViewportHide = true
	sess.VisApplyRender = true
	sess.VisRenderHide = false

	if _, err := ApplyObject(sc, sess); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !a.HideViewport || !b.HideViewport {
		t.Fatalf("viewport hide not applied")
	}
	if a.HideRender || b.HideRender {
		t.Fatalf("render hide should stay off")
	}
}
