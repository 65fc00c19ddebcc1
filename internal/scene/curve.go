package scene

import "github.com/go-gl/mathgl/mgl64"

// SplineType distinguishes Bezier splines (control points with handles)
// from NURBS/poly splines (plain weighted points).
type SplineType int

const (
	SplineBezier SplineType = iota
	SplineNURBS
	SplinePoly
)

// BezierPoint is a control point with two tangent handles, each
// independently selectable. Bezier points carry no weight attribute.
type BezierPoint struct {
	Co          mgl64.Vec3
	HandleLeft  mgl64.Vec3
	HandleRight mgl64.Vec3

	SelectControl bool
	SelectLeft    bool
	SelectRight   bool

	Radius float64
	Tilt   float64
}

// SplinePoint is a NURBS/poly point; Co keeps the homogeneous fourth
// component across position edits.
type SplinePoint struct {
	Co     mgl64.Vec4
	Select bool

	Weight float64
	Radius float64
	Tilt   float64
}

type Spline struct {
	Type         SplineType
	BezierPoints []BezierPoint
	Points       []SplinePoint
}

// Curve is a shared data block of one or more splines.
type Curve struct {
	Name    string
	Splines []*Spline
}

func NewCurve(name string) *Curve {
	return &Curve{Name: name}
}

// Transform applies a matrix to all points and handles in place.
func (c *Curve) Transform(mat mgl64.Mat4) {
	apply := func(v mgl64.Vec3) mgl64.Vec3 {
		return mat.Mul4x1(v.Vec4(1)).Vec3()
	}
	for _, sp := range c.Splines {
		for i := range sp.BezierPoints {
			bp := &sp.BezierPoints[i]
			bp.Co = apply(bp.Co)
			bp.HandleLeft = apply(bp.HandleLeft)
			bp.HandleRight = apply(bp.HandleRight)
		}
		for i := range sp.Points {
			p := &sp.Points[i]
			moved := apply(mgl64.Vec3{p.Co.X(), p.Co.Y(), p.Co.Z()})
			p.Co = mgl64.Vec4{moved.X(), moved.Y(), moved.Z(), p.Co.W()}
		}
	}
}

// Clone deep-copies the data block for copy-on-write origin edits.
func (c *Curve) Clone() *Curve {
	out := &Curve{Name: c.Name, Splines: make([]*Spline, len(c.Splines))}
	for i, sp := range c.Splines {
		cp := &Spline{Type: sp.Type}
		cp.BezierPoints = append([]BezierPoint(nil), sp.BezierPoints...)
		cp.Points = append([]SplinePoint(nil), sp.Points...)
		out.Splines[i] = cp
	}
	return out
}
