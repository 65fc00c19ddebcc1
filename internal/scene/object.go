package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ObjectType mirrors the data block an object carries.
type ObjectType int

const (
	TypeEmpty ObjectType = iota
	TypeMesh
	TypeCurve
)

// RotationMode selects how an object stores its rotation.
type RotationMode int

const (
	RotationEulerXYZ RotationMode = iota
	RotationQuaternion
	RotationAxisAngle
)

// Object is one scene-graph node. Exactly one of Mesh/Curve is non-nil for
// mesh/curve objects; both are nil for empties. Rotation lives in the field
// matching RotMode; the others are ignored until a mode switch.
type Object struct {
	Name string
	Type ObjectType

	Location mgl64.Vec3
	Scale    mgl64.Vec3

	RotMode   RotationMode
	Euler     mgl64.Vec3 // radians, XYZ order (X applied first)
	Quat      mgl64.Quat
	AxisAngle AxisAngle

	Parent *Object

	Mesh  *Mesh
	Curve *Curve

	Selected bool
	Editable bool

	HideViewport bool
	HideRender   bool
}

type AxisAngle struct {
	Axis  mgl64.Vec3
	Angle float64
}

// NewObject returns an empty at the world origin with identity transform.
func NewObject(name string) *Object {
	return &Object{
		Name:      name,
		Scale:     mgl64.Vec3{1, 1, 1},
		Quat:      mgl64.QuatIdent(),
		AxisAngle: AxisAngle{Axis: mgl64.Vec3{0, 0, 1}},
		Selected:  true,
		Editable:  true,
	}
}

// NewMeshObject returns a mesh object linked to the given data block.
func NewMeshObject(name string, m *Mesh) *Object {
	obj := NewObject(name)
	obj.Type = TypeMesh
	obj.Mesh = m
	return obj
}

// NewCurveObject returns a curve object linked to the given data block.
func NewCurveObject(name string, c *Curve) *Object {
	obj := NewObject(name)
	obj.Type = TypeCurve
	obj.Curve = c
	return obj
}

// EulerMat3 builds the XYZ-order rotation matrix Rz*Ry*Rx (X applied first).
func EulerMat3(e mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Rotate3DZ(e.Z()).Mul3(mgl64.Rotate3DY(e.Y())).Mul3(mgl64.Rotate3DX(e.X()))
}

// Mat3ToEulerXYZ extracts XYZ-order angles from a pure rotation matrix.
func Mat3ToEulerXYZ(m mgl64.Mat3) mgl64.Vec3 {
	// With R = Rz*Ry*Rx: R[2][0] = -sin(y).
	sy := -m.At(2, 0)
	if sy > 1 {
		sy = 1
	} else if sy < -1 {
		sy = -1
	}
	y := math.Asin(sy)
	if math.Abs(sy) > 1-1e-12 {
		// Gimbal lock: fold everything into x.
		return mgl64.Vec3{math.Atan2(-m.At(1, 2), m.At(1, 1)), y, 0}
	}
	x := math.Atan2(m.At(2, 1), m.At(2, 2))
	z := math.Atan2(m.At(1, 0), m.At(0, 0))
	return mgl64.Vec3{x, y, z}
}

// RotationMatrix returns the object's rotation as a 3x3 regardless of mode.
func (o *Object) RotationMatrix() mgl64.Mat3 {
	switch o.RotMode {
	case RotationQuaternion:
		return o.Quat.Normalize().Mat4().Mat3()
	case RotationAxisAngle:
		axis := o.AxisAngle.Axis
		if axis.Len() == 0 {
			axis = mgl64.Vec3{0, 0, 1}
		}
		return mgl64.HomogRotate3D(o.AxisAngle.Angle, axis.Normalize()).Mat3()
	default:
		return EulerMat3(o.Euler)
	}
}

// EulerRotation reads the rotation as XYZ Euler angles, converting from
// the object's native representation when needed.
func (o *Object) EulerRotation() mgl64.Vec3 {
	switch o.RotMode {
	case RotationQuaternion, RotationAxisAngle:
		return Mat3ToEulerXYZ(o.RotationMatrix())
	default:
		return o.Euler
	}
}

// SetEulerRotation writes XYZ Euler angles back through the object's
// native rotation representation.
func (o *Object) SetEulerRotation(e mgl64.Vec3) {
	switch o.RotMode {
	case RotationQuaternion:
		o.Quat = mgl64.Mat4ToQuat(EulerMat3(e).Mat4()).Normalize()
	case RotationAxisAngle:
		q := mgl64.Mat4ToQuat(EulerMat3(e).Mat4()).Normalize()
		w := q.W
		if w > 1 {
			w = 1
		} else if w < -1 {
			w = -1
		}
		angle := 2 * math.Acos(w)
		s := math.Sqrt(1 - w*w)
		axis := mgl64.Vec3{0, 0, 1}
		if s > 1e-9 {
			axis = q.V.Mul(1 / s)
		}
		o.AxisAngle = AxisAngle{Axis: axis, Angle: angle}
	default:
		o.Euler = e
	}
}

// LocalMatrix composes translate * rotate * scale.
func (o *Object) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(o.Location.X(), o.Location.Y(), o.Location.Z())
	r := o.RotationMatrix().Mat4()
	s := mgl64.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix walks the parent chain.
func (o *Object) WorldMatrix() mgl64.Mat4 {
	local := o.LocalMatrix()
	if o.Parent == nil {
		return local
	}
	return o.Parent.WorldMatrix().Mul4(local)
}

// WorldTranslation is the translation column of the world matrix.
func (o *Object) WorldTranslation() mgl64.Vec3 {
	m := o.WorldMatrix()
	return mgl64.Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}
}

// SetWorldTranslation moves the object so its world translation matches the
// given coordinates on the supplied axes, solving for the local location
// through the parent's world matrix. Nil axes are left untouched.
func (o *Object) SetWorldTranslation(x, y, z *float64) {
	t := o.WorldTranslation()
	if x != nil {
		t[0] = *x
	}
	if y != nil {
		t[1] = *y
	}
	if z != nil {
		t[2] = *z
	}
	if o.Parent == nil {
		o.Location = t
		return
	}
	inv := o.Parent.WorldMatrix().Inv()
	o.Location = inv.Mul4x1(t.Vec4(1)).Vec3()
}

// Data returns the shared geometry block, if any, as a Geometry.
func (o *Object) Data() Geometry {
	switch {
	case o.Mesh != nil:
		return o.Mesh
	case o.Curve != nil:
		return o.Curve
	default:
		return nil
	}
}
