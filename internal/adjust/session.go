package adjust

import (
	"github.com/appengine-ltd/multi-adjust/internal/command"
	"github.com/appengine-ltd/multi-adjust/internal/scene"
)

// Space is a persisted coordinate-frame toggle. The object space toggle
// reads as local/world, the mesh one as local/global; same flag either way.
type Space int

const (
	SpaceLocal Space = iota
	SpaceGlobal
)

func (s Space) String() string {
	if s == SpaceGlobal {
		return "global"
	}
	return "local"
}

// Session is the persisted toggle group shared by the structured panel
// and the command interpreter. A command writes a field only when the
// line carried evidence for it; otherwise the previous value stands.
// Axis enables are the exception: they reset at the start of every
// command run so a stale toggle cannot leak into a new result.
type Session struct {
	Transform command.Transform

	ObjectSpace Space
	MeshSpace   Space
	MeshAffect  scene.Affect

	XEnable bool
	YEnable bool
	ZEnable bool
	XValue  float64
	YValue  float64
	ZValue  float64

	WeightEnable bool
	WeightValue  float64
	RadiusEnable bool
	RadiusValue  float64
	TiltEnable   bool
	TiltValue    float64

	Command string

	VisApplyViewport bool
	VisViewportHide  bool
	VisApplyRender   bool
	VisRenderHide    bool
}

// NewSession returns the default toggle state matching a fresh panel.
func NewSession() *Session {
	return &Session{
		Transform:   command.TransformRot,
		WeightValue: 1,
		RadiusValue: 1,
	}
}

// axisValues converts the enable/value pairs into optional per-axis values.
func (s *Session) axisValues() (x, y, z *float64) {
	if s.XEnable {
		v := s.XValue
		x = &v
	}
	if s.YEnable {
		v := s.YValue
		y = &v
	}
	if s.ZEnable {
		v := s.ZValue
		z = &v
	}
	return x, y, z
}

// mergeIntent writes a resolved intent into the session. Overrides
// (space, mesh affect) persist whenever present, even for a command that
// then fails to apply; values and the transform kind land only for the
// winning domain.
func mergeIntent(s *Session, intent command.Intent, resolved bool) {
	switch intent.Domain {
	case command.DomainMesh:
		if intent.SpaceGlobal != nil {
			s.MeshSpace = toSpace(*intent.SpaceGlobal)
		}
		if intent.MeshAffect != nil {
			s.MeshAffect = *intent.MeshAffect
		}
		if resolved {
			s.setAxes(intent.Axes)
		}
	case command.DomainCurve:
		if intent.SpaceGlobal != nil {
			s.MeshSpace = toSpace(*intent.SpaceGlobal)
		}
		if resolved {
			s.setAxes(intent.Axes)
			s.setAttrs(intent.Attrs)
		}
	default:
		if intent.SpaceGlobal != nil {
			s.ObjectSpace = toSpace(*intent.SpaceGlobal)
		}
		if resolved {
			s.Transform = intent.Transform
			s.setAxes(intent.Axes)
		}
	}
}

func (s *Session) setAxes(a command.AxisValues) {
	s.XEnable = a.X != nil
	s.YEnable = a.Y != nil
	s.ZEnable = a.Z != nil
	if a.X != nil {
		s.XValue = *a.X
	}
	if a.Y != nil {
		s.YValue = *a.Y
	}
	if a.Z != nil {
		s.ZValue = *a.Z
	}
}

func (s *Session) setAttrs(a command.AttrValues) {
	s.WeightEnable = a.Weight != nil
	s.RadiusEnable = a.Radius != nil
	s.TiltEnable = a.Tilt != nil
	if a.Weight != nil {
		s.WeightValue = *a.Weight
	}
	if a.Radius != nil {
		s.RadiusValue = *a.Radius
	}
	if a.Tilt != nil {
		s.TiltValue = *a.Tilt
	}
}

func toSpace(global bool) Space {
	if global {
		return SpaceGlobal
	}
	return SpaceLocal
}
