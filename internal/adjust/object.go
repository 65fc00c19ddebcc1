package adjust

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/appengine-ltd/multi-adjust/internal/command"
	"github.com/appengine-ltd/multi-adjust/internal/scene"
)

// ApplyObject runs the object-mode batch edit: the session's transform
// kind on every selected editable object, then the visibility toggles.
// Disabled axes are never touched.
func ApplyObject(sc *scene.Scene, s *Session) (Result, error) {
	objs := sc.SelectedEditableObjects()
	if len(objs) == 0 {
		return Result{Status: "No selected objects"}, ErrNoSelection
	}

	x, y, z := s.axisValues()

	switch s.Transform {
	case command.TransformLoc:
		for _, obj := range objs {
			if s.ObjectSpace == SpaceGlobal {
				obj.SetWorldTranslation(x, y, z)
			} else {
				if x != nil {
					obj.Location[0] = *x
				}
				if y != nil {
					obj.Location[1] = *y
				}
				if z != nil {
					obj.Location[2] = *z
				}
			}
		}
	case command.TransformRot:
		// Session values are degrees.
		for _, obj := range objs {
			e := obj.EulerRotation()
			if x != nil {
				e[0] = mgl64.DegToRad(*x)
			}
			if y != nil {
				e[1] = mgl64.DegToRad(*y)
			}
			if z != nil {
				e[2] = mgl64.DegToRad(*z)
			}
			obj.SetEulerRotation(e)
		}
	case command.TransformScale:
		for _, obj := range objs {
			if x != nil {
				obj.Scale[0] = *x
			}
			if y != nil {
				obj.Scale[1] = *y
			}
			if z != nil {
				obj.Scale[2] = *z
			}
		}
	case command.TransformOrigin:
		for _, obj := range objs {
			setObjectOrigin(sc, obj, x, y, z, s.ObjectSpace == SpaceGlobal)
		}
	}

	if s.VisApplyViewport {
		for _, obj := range objs {
			obj.HideViewport = s.VisViewportHide
		}
	}
	if s.VisApplyRender {
		for _, obj := range objs {
			obj.HideRender = s.VisRenderHide
		}
	}

	return Result{Status: fmt.Sprintf("Applied %s to %d object(s)", s.Transform, len(objs))}, nil
}

// setObjectOrigin relocates the object's origin to the requested local or
// world coordinate without moving its visible geometry: the world-space
// shift of the origin is inverted into data-block space and applied as a
// compensating offset. Shared data blocks are copied first so sibling
// objects stay put.
func setObjectOrigin(sc *scene.Scene, obj *scene.Object, x, y, z *float64, world bool) {
	before := obj.WorldTranslation()

	if world {
		obj.SetWorldTranslation(x, y, z)
	} else {
		if x != nil {
			obj.Location[0] = *x
		}
		if y != nil {
			obj.Location[1] = *y
		}
		if z != nil {
			obj.Location[2] = *z
		}
	}

	delta := obj.WorldTranslation().Sub(before)
	if delta.Len() == 0 {
		return
	}

	if obj.Data() == nil {
		// Nothing to offset (empties).
		return
	}
	if obj.Mesh != nil && sc.MeshUsers(obj.Mesh) > 1 {
		obj.Mesh = obj.Mesh.Clone()
	}
	if obj.Curve != nil && sc.CurveUsers(obj.Curve) > 1 {
		obj.Curve = obj.Curve.Clone()
	}

	orient := obj.WorldMatrix().Mat3()
	if math.Abs(orient.Det()) < 1e-12 {
		return
	}
	deltaLocal := orient.Inv().Mul3x1(delta)
	obj.Data().Transform(mgl64.Translate3D(-deltaLocal.X(), -deltaLocal.Y(), -deltaLocal.Z()))
}
