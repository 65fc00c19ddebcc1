package command

import (
	"errors"

	"github.com/appengine-ltd/multi-adjust/internal/scene"
)

// Domain is the element category a resolved command targets.
type Domain int

const (
	DomainObject Domain = iota
	DomainMesh
	DomainCurve
)

// Transform is the object-level transform a command applies. When a line
// populates more than one, resolution picks one by fixed priority
// (rotation > scale > origin > location).
type Transform int

const (
	TransformLoc Transform = iota
	TransformRot
	TransformScale
	TransformOrigin
)

func (t Transform) String() string {
	switch t {
	case TransformRot:
		return "rotation"
	case TransformScale:
		return "scale"
	case TransformOrigin:
		return "origin"
	default:
		return "location"
	}
}

// Token is one key=value fragment of a command line, key lowercased.
type Token struct {
	Key   string
	Value string
}

// AxisValues is a per-axis bucket of optional values. A nil axis means the
// command supplied no valid value for it and it must be left untouched.
type AxisValues struct {
	X *float64
	Y *float64
	Z *float64
}

func (a AxisValues) Empty() bool {
	return a.X == nil && a.Y == nil && a.Z == nil
}

// AttrValues is the curve attribute bucket.
type AttrValues struct {
	Weight *float64
	Radius *float64
	Tilt   *float64
}

func (a AttrValues) Empty() bool {
	return a.Weight == nil && a.Radius == nil && a.Tilt == nil
}

// Intent is the resolved instruction a command line produces. Rotation
// values are always degrees. SpaceGlobal and MeshAffect are nil when the
// line carried no override, so previously persisted settings survive.
type Intent struct {
	Raw string

	Domain    Domain
	Transform Transform

	Axes  AxisValues
	Attrs AttrValues

	SpaceGlobal *bool
	MeshAffect  *scene.Affect

	Hints []string
}

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrNothingToApply = errors.New("nothing to apply")
)
