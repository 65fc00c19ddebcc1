package adjust

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/appengine-ltd/multi-adjust/internal/command"
	"github.com/appengine-ltd/multi-adjust/internal/scene"
)

// ApplyCurve edits the selected points of the active curve. Positions
// apply independently to Bezier control points and each selected handle;
// NURBS/poly points are edited directly with their fourth component kept.
// Weight/radius/tilt go to selected control points; weight on a point type
// that does not carry one degrades to a warning when anything else landed.
func ApplyCurve(sc *scene.Scene, s *Session) (Result, error) {
	obj := sc.Active
	if sc.Mode != scene.EditCurve || obj == nil || obj.Curve == nil {
		return Result{Status: "Need a curve in edit mode"}, ErrNoSelection
	}

	x, y, z := s.axisValues()
	var weight, radius, tilt *float64
	if s.WeightEnable {
		v := s.WeightValue
		weight = &v
	}
	if s.RadiusEnable {
		v := s.RadiusValue
		radius = &v
	}
	if s.TiltEnable {
		v := s.TiltValue
		tilt = &v
	}

	positionEnabled := x != nil || y != nil || z != nil
	attrsEnabled := weight != nil || radius != nil || tilt != nil
	if !positionEnabled && !attrsEnabled {
		return Result{Status: "No values enabled"}, command.ErrNothingToApply
	}

	useGlobal := s.MeshSpace == SpaceGlobal
	mw := obj.WorldMatrix()
	var imw mgl64.Mat4
	if useGlobal {
		imw = mw.Inv()
		if imw == (mgl64.Mat4{}) {
			useGlobal = false
		}
	}

	moveVector := func(local mgl64.Vec3) mgl64.Vec3 {
		if useGlobal {
			w := mw.Mul4x1(local.Vec4(1)).Vec3()
			if x != nil {
				w[0] = *x
			}
			if y != nil {
				w[1] = *y
			}
			if z != nil {
				w[2] = *z
			}
			return imw.Mul4x1(w.Vec4(1)).Vec3()
		}
		out := local
		if x != nil {
			out[0] = *x
		}
		if y != nil {
			out[1] = *y
		}
		if z != nil {
			out[2] = *z
		}
		return out
	}

	anySelected := false
	positionApplied := false
	attrApplied := false
	weightApplied := false
	unsupportedWeight := false
	edited := 0

	for _, sp := range obj.Curve.Splines {
		if sp.Type == scene.SplineBezier {
			for i := range sp.BezierPoints {
				bp := &sp.BezierPoints[i]
				if bp.SelectControl {
					anySelected = true
					if positionEnabled {
						bp.Co = moveVector(bp.Co)
						positionApplied = true
						edited++
					}
					if attrsEnabled {
						if weight != nil {
							// Bezier points carry no weight attribute.
							unsupportedWeight = true
						}
						if radius != nil {
							bp.Radius = *radius
							attrApplied = true
						}
						if tilt != nil {
							bp.Tilt = *tilt
							attrApplied = true
						}
					}
				}
				if positionEnabled && bp.SelectLeft {
					anySelected = true
					bp.HandleLeft = moveVector(bp.HandleLeft)
					positionApplied = true
				}
				if positionEnabled && bp.SelectRight {
					anySelected = true
					bp.HandleRight = moveVector(bp.HandleRight)
					positionApplied = true
				}
			}
			continue
		}
		for i := range sp.Points {
			p := &sp.Points[i]
			if !p.Select {
				continue
			}
			anySelected = true
			if positionEnabled {
				moved := moveVector(mgl64.Vec3{p.Co.X(), p.Co.Y(), p.Co.Z()})
				p.Co = mgl64.Vec4{moved.X(), moved.Y(), moved.Z(), p.Co.W()}
				positionApplied = true
				edited++
			}
			if attrsEnabled {
				if weight != nil {
					p.Weight = *weight
					attrApplied = true
					weightApplied = true
				}
				if radius != nil {
					p.Radius = *radius
					attrApplied = true
				}
				if tilt != nil {
					p.Tilt = *tilt
					attrApplied = true
				}
			}
		}
	}

	if !anySelected {
		return Result{Status: "No selected curve points or handles"}, ErrNoSelection
	}
	if positionEnabled && !positionApplied {
		return Result{Status: "No selected elements for position"}, ErrNoSelection
	}

	res := Result{Status: fmt.Sprintf("Edited %d curve point(s)", edited)}
	if attrsEnabled {
		weightOnly := weight != nil && unsupportedWeight && radius == nil && tilt == nil
		if !attrApplied && !positionApplied {
			if weightOnly {
				return Result{Status: "Weight not supported for selected curve points"}, ErrUnsupportedAttribute
			}
			return Result{Status: "No control points for attributes"}, ErrNoSelection
		}
		if !attrApplied && !weightOnly {
			res.Warnings = append(res.Warnings, "No control points for attributes")
		}
		if weight != nil && !weightApplied && unsupportedWeight {
			res.Warnings = append(res.Warnings, "Weight not supported for selected curve points")
		}
	}
	return res, nil
}
