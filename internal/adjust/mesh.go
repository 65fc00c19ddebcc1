package adjust

import (
	"fmt"

	"github.com/appengine-ltd/multi-adjust/internal/command"
	"github.com/appengine-ltd/multi-adjust/internal/scene"
)

// ApplyMesh overwrites the enabled axes of every vertex resolved from the
// active mesh's selection, converting through the object's world matrix
// when the mesh space is global.
func ApplyMesh(sc *scene.Scene, s *Session) (Result, error) {
	obj := sc.Active
	if sc.Mode != scene.EditMesh || obj == nil || obj.Mesh == nil {
		return Result{Status: "Need a mesh in edit mode"}, ErrNoSelection
	}

	x, y, z := s.axisValues()
	if x == nil && y == nil && z == nil {
		return Result{Status: "No axis enabled"}, command.ErrNothingToApply
	}

	verts := obj.Mesh.SelectedVerts(s.MeshAffect)
	if len(verts) == 0 {
		return Result{Status: "No verts resolved from selection"}, ErrNoSelection
	}

	if s.MeshSpace == SpaceGlobal {
		mw := obj.WorldMatrix()
		imw := mw.Inv()
		for _, vi := range verts {
			v := &obj.Mesh.Verts[vi]
			w := mw.Mul4x1(v.Co.Vec4(1)).Vec3()
			if x != nil {
				w[0] = *x
			}
			if y != nil {
				w[1] = *y
			}
			if z != nil {
				w[2] = *z
			}
			v.Co = imw.Mul4x1(w.Vec4(1)).Vec3()
		}
	} else {
		for _, vi := range verts {
			v := &obj.Mesh.Verts[vi]
			if x != nil {
				v.Co[0] = *x
			}
			if y != nil {
				v.Co[1] = *y
			}
			if z != nil {
				v.Co[2] = *z
			}
		}
	}

	return Result{Status: fmt.Sprintf("Moved %d vertice(s)", len(verts))}, nil
}
