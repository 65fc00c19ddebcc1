package command

import (
	"strings"

	"github.com/appengine-ltd/multi-adjust/internal/scene"
)

// resolverState carries the running interpretation of a command line.
// Tokens are folded in order and may flip the inferred domain mid-stream;
// a space= token binds to whichever domain is current when it is seen.
type resolverState struct {
	targetMesh  bool
	targetCurve bool

	objLoc    AxisValues
	objRot    AxisValues // degrees
	objScale  AxisValues
	objOrigin AxisValues
	xyz       AxisValues // mesh or curve position

	attrs AttrValues

	objWorld    *bool
	meshGlobal  *bool
	curveGlobal *bool
	meshAffect  *scene.Affect

	pendingLoc    bool
	pendingOrigin bool

	hints []string
}

// Resolve interprets one command line under the given editor mode and
// returns the resolved intent. Malformed and unknown tokens are dropped,
// never rejected; the only errors are ErrEmptyCommand for blank input and
// ErrNothingToApply when no token produced a usable value. The returned
// intent carries hints and overrides even alongside an error.
func Resolve(mode scene.EditorMode, line string) (Intent, error) {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return Intent{}, ErrEmptyCommand
	}

	st := resolverState{
		targetMesh:  mode == scene.EditMesh,
		targetCurve: mode == scene.EditCurve,
	}
	for _, tok := range Tokenize(raw) {
		st.consume(tok)
	}
	return st.build(raw)
}

func (st *resolverState) consume(tok Token) {
	switch {
	case tok.Key == "space":
		st.setSpace(tok.Value)
	case tok.Key == "target":
		st.setTarget(tok.Value)
	case strings.HasPrefix(tok.Key, "loc."):
		st.assign(&st.objLoc, tok, false)
		st.pendingLoc = true
		st.forceObject()
	case strings.HasPrefix(tok.Key, "rot."):
		st.assign(&st.objRot, tok, true)
		st.forceObject()
	case strings.HasPrefix(tok.Key, "scale.") || strings.HasPrefix(tok.Key, "s."):
		st.assign(&st.objScale, tok, false)
		st.forceObject()
	case strings.HasPrefix(tok.Key, "origin.") || strings.HasPrefix(tok.Key, "orig.") || strings.HasPrefix(tok.Key, "o."):
		st.assign(&st.objOrigin, tok, false)
		st.pendingOrigin = true
		st.forceObject()
	case tok.Key == "rx" || tok.Key == "ry" || tok.Key == "rz":
		st.assign(&st.objRot, tok, true)
		st.forceObject()
	case tok.Key == "sx" || tok.Key == "sy" || tok.Key == "sz":
		st.assign(&st.objScale, tok, false)
		st.forceObject()
	case tok.Key == "ox" || tok.Key == "oy" || tok.Key == "oz":
		st.assign(&st.objOrigin, tok, false)
		st.pendingOrigin = true
		st.forceObject()
	case tok.Key == "x" || tok.Key == "y" || tok.Key == "z":
		st.bareAxis(tok)
	case tok.Key == "weight" || tok.Key == "radius" || tok.Key == "tilt":
		st.attr(tok)
	default:
		if hint := suggestKey(tok.Key); hint != "" {
			st.hints = append(st.hints, hint)
		}
	}
}

// setSpace binds global/local to the domain current at this token. This is
// deliberately order-dependent: space= after a domain-establishing token
// binds to that domain, before it binds to the previous one.
func (st *resolverState) setSpace(value string) {
	var global bool
	switch strings.ToLower(value) {
	case "global", "world":
		global = true
	case "local":
		global = false
	default:
		return
	}
	switch {
	case st.targetMesh:
		st.meshGlobal = &global
	case st.targetCurve:
		st.curveGlobal = &global
	default:
		st.objWorld = &global
	}
}

func (st *resolverState) setTarget(value string) {
	var affect scene.Affect
	switch strings.ToLower(value) {
	case "verts", "vert", "v":
		affect = scene.AffectVert
	case "edges", "edge", "e":
		affect = scene.AffectEdge
	case "faces", "face", "f":
		affect = scene.AffectFace
	case "auto":
		affect = scene.AffectAuto
	default:
		return
	}
	st.meshAffect = &affect
	st.targetMesh = true
	st.targetCurve = false
}

// assign parses the token value and writes it into the bucket axis named
// by the last rune of the key. Keys with a non-axis tail still count as
// touched for domain inference but store nothing.
func (st *resolverState) assign(bucket *AxisValues, tok Token, rotation bool) {
	v, unit, ok := ParseScalar(tok.Value)
	if !ok {
		return
	}
	if rotation {
		v = Degrees(v, unit)
	}
	switch tok.Key[len(tok.Key)-1] {
	case 'x':
		bucket.X = &v
	case 'y':
		bucket.Y = &v
	case 'z':
		bucket.Z = &v
	}
}

// bareAxis routes x=/y=/z= by the currently inferred domain: mesh and
// curve edits share the position bucket, anything else is an object
// location request (even when the value turns out to be zero or invalid).
func (st *resolverState) bareAxis(tok Token) {
	switch {
	case st.targetMesh:
		st.assign(&st.xyz, tok, false)
	case st.targetCurve:
		st.assign(&st.xyz, tok, false)
	default:
		st.assign(&st.objLoc, tok, false)
		st.pendingLoc = true
	}
}

func (st *resolverState) attr(tok Token) {
	v, _, ok := ParseScalar(tok.Value)
	if ok {
		switch tok.Key {
		case "weight":
			st.attrs.Weight = &v
		case "radius":
			st.attrs.Radius = &v
		case "tilt":
			st.attrs.Tilt = &v
		}
	}
	st.targetCurve = true
	st.targetMesh = false
}

func (st *resolverState) forceObject() {
	st.targetMesh = false
	st.targetCurve = false
}

// build picks the winning domain and, for objects, the winning transform.
// Populated lower-priority buckets are discarded, not errors.
func (st *resolverState) build(raw string) (Intent, error) {
	intent := Intent{Raw: raw, Hints: st.hints}

	switch {
	case st.targetMesh:
		intent.Domain = DomainMesh
		intent.Axes = st.xyz
		intent.SpaceGlobal = st.meshGlobal
		intent.MeshAffect = st.meshAffect
		if intent.Axes.Empty() {
			return intent, ErrNothingToApply
		}
	case st.targetCurve:
		intent.Domain = DomainCurve
		intent.Axes = st.xyz
		intent.Attrs = st.attrs
		intent.SpaceGlobal = st.curveGlobal
		if intent.Axes.Empty() && intent.Attrs.Empty() {
			return intent, ErrNothingToApply
		}
	default:
		intent.Domain = DomainObject
		intent.SpaceGlobal = st.objWorld
		switch {
		case !st.objRot.Empty():
			intent.Transform = TransformRot
			intent.Axes = st.objRot
		case !st.objScale.Empty():
			intent.Transform = TransformScale
			intent.Axes = st.objScale
		case st.pendingOrigin || !st.objOrigin.Empty():
			intent.Transform = TransformOrigin
			intent.Axes = st.objOrigin
		case st.pendingLoc || !st.objLoc.Empty():
			intent.Transform = TransformLoc
			intent.Axes = st.objLoc
		default:
			return intent, ErrNothingToApply
		}
		if intent.Axes.Empty() {
			return intent, ErrNothingToApply
		}
	}
	return intent, nil
}
