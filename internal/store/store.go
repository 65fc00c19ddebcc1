// Package store reads and writes scene files. Scenes save as JSON;
// hand-authored YAML scenes load too. Data blocks are serialized once and
// objects reference them by name, so two objects sharing a mesh still
// share it after a round-trip.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/goccy/go-yaml"

	"github.com/appengine-ltd/multi-adjust/internal/scene"
)

const formatVersion = 1

type fileVert struct {
	Co     [3]float64 `json:"co" yaml:"co"`
	Select bool       `json:"select,omitempty" yaml:"select"`
}

type fileEdge struct {
	Verts  [2]int `json:"verts" yaml:"verts"`
	Select bool   `json:"select,omitempty" yaml:"select"`
}

type fileFace struct {
	Verts  []int `json:"verts" yaml:"verts"`
	Select bool  `json:"select,omitempty" yaml:"select"`
}

type fileMesh struct {
	Name       string     `json:"name" yaml:"name"`
	Verts      []fileVert `json:"verts" yaml:"verts"`
	Edges      []fileEdge `json:"edges,omitempty" yaml:"edges"`
	Faces      []fileFace `json:"faces,omitempty" yaml:"faces"`
	SelectMode string     `json:"select_mode,omitempty" yaml:"select_mode"`
}

type fileBezierPoint struct {
	Co            [3]float64 `json:"co" yaml:"co"`
	HandleLeft    [3]float64 `json:"handle_left" yaml:"handle_left"`
	HandleRight   [3]float64 `json:"handle_right" yaml:"handle_right"`
	SelectControl bool       `json:"select_control,omitempty" yaml:"select_control"`
	SelectLeft    bool       `json:"select_left,omitempty" yaml:"select_left"`
	SelectRight   bool       `json:"select_right,omitempty" yaml:"select_right"`
	Radius        float64    `json:"radius" yaml:"radius"`
	Tilt          float64    `json:"tilt" yaml:"tilt"`
}

type filePoint struct {
	Co     [4]float64 `json:"co" yaml:"co"`
	Select bool       `json:"select,omitempty" yaml:"select"`
	Weight float64    `json:"weight" yaml:"weight"`
	Radius float64    `json:"radius" yaml:"radius"`
	Tilt   float64    `json:"tilt" yaml:"tilt"`
}

type fileSpline struct {
	Type         string            `json:"type" yaml:"type"`
	BezierPoints []fileBezierPoint `json:"bezier_points,omitempty" yaml:"bezier_points"`
	Points       []filePoint       `json:"points,omitempty" yaml:"points"`
}

type fileCurve struct {
	Name    string       `json:"name" yaml:"name"`
	Splines []fileSpline `json:"splines" yaml:"splines"`
}

type fileObject struct {
	Name      string     `json:"name" yaml:"name"`
	Type      string     `json:"type" yaml:"type"`
	Data      string     `json:"data,omitempty" yaml:"data"`
	Parent    string     `json:"parent,omitempty" yaml:"parent"`
	Location  [3]float64 `json:"location" yaml:"location"`
	Scale     [3]float64 `json:"scale" yaml:"scale"`
	RotMode   string     `json:"rot_mode,omitempty" yaml:"rot_mode"`
	Euler     [3]float64 `json:"euler,omitempty" yaml:"euler"`
	Quat      [4]float64 `json:"quat,omitempty" yaml:"quat"`
	AxisAngle [4]float64 `json:"axis_angle,omitempty" yaml:"axis_angle"`

	Selected     bool `json:"selected" yaml:"selected"`
	Editable     bool `json:"editable" yaml:"editable"`
	HideViewport bool `json:"hide_viewport,omitempty" yaml:"hide_viewport"`
	HideRender   bool `json:"hide_render,omitempty" yaml:"hide_render"`
}

type fileScene struct {
	FormatVersion int          `json:"format_version" yaml:"format_version"`
	Mode          string       `json:"mode,omitempty" yaml:"mode"`
	Active        string       `json:"active,omitempty" yaml:"active"`
	Meshes        []fileMesh   `json:"meshes,omitempty" yaml:"meshes"`
	Curves        []fileCurve  `json:"curves,omitempty" yaml:"curves"`
	Objects       []fileObject `json:"objects" yaml:"objects"`
}

// Load reads a scene file, picking the codec from the extension
// (.yaml/.yml parse as YAML, anything else as JSON).
func Load(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fs fileScene
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fs); err != nil {
			return nil, fmt.Errorf("parse scene: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fs); err != nil {
			return nil, fmt.Errorf("parse scene: %w", err)
		}
	}
	return buildScene(fs)
}

// Save writes the scene as JSON.
func Save(path string, sc *scene.Scene) error {
	fs := flattenScene(sc)
	data, err := json.MarshalIndent(fs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func buildScene(fs fileScene) (*scene.Scene, error) {
	if fs.FormatVersion > formatVersion {
		return nil, fmt.Errorf("scene format version %d not supported", fs.FormatVersion)
	}

	sc := scene.New()
	switch fs.Mode {
	case "", "object":
		sc.Mode = scene.ObjectMode
	case "edit-mesh":
		sc.Mode = scene.EditMesh
	case "edit-curve":
		sc.Mode = scene.EditCurve
	default:
		return nil, fmt.Errorf("unknown editor mode %q", fs.Mode)
	}

	meshes := make(map[string]*scene.Mesh, len(fs.Meshes))
	for _, fm := range fs.Meshes {
		m, err := buildMesh(fm)
		if err != nil {
			return nil, err
		}
		meshes[fm.Name] = m
	}
	curves := make(map[string]*scene.Curve, len(fs.Curves))
	for _, fc := range fs.Curves {
		c, err := buildCurve(fc)
		if err != nil {
			return nil, err
		}
		curves[fc.Name] = c
	}

	byName := make(map[string]*scene.Object, len(fs.Objects))
	for _, fo := range fs.Objects {
		obj := scene.NewObject(fo.Name)
		obj.Location = mgl64.Vec3(fo.Location)
		obj.Scale = mgl64.Vec3(fo.Scale)
		if obj.Scale == (mgl64.Vec3{}) {
			obj.Scale = mgl64.Vec3{1, 1, 1}
		}
		obj.Selected = fo.Selected
		obj.Editable = fo.Editable
		obj.HideViewport = fo.HideViewport
		obj.HideRender = fo.HideRender

		switch fo.RotMode {
		case "", "euler":
			obj.RotMode = scene.RotationEulerXYZ
			obj.Euler = mgl64.Vec3(fo.Euler)
		case "quaternion":
			obj.RotMode = scene.RotationQuaternion
			obj.Quat = mgl64.Quat{W: fo.Quat[0], V: mgl64.Vec3{fo.Quat[1], fo.Quat[2], fo.Quat[3]}}
			if obj.Quat.Len() == 0 {
				obj.Quat = mgl64.QuatIdent()
			}
		case "axis-angle":
			obj.RotMode = scene.RotationAxisAngle
			obj.AxisAngle = scene.AxisAngle{
				Angle: fo.AxisAngle[0],
				Axis:  mgl64.Vec3{fo.AxisAngle[1], fo.AxisAngle[2], fo.AxisAngle[3]},
			}
		default:
			return nil, fmt.Errorf("object %q: unknown rotation mode %q", fo.Name, fo.RotMode)
		}

		switch fo.Type {
		case "", "empty":
			obj.Type = scene.TypeEmpty
		case "mesh":
			obj.Type = scene.TypeMesh
			m, ok := meshes[fo.Data]
			if !ok {
				return nil, fmt.Errorf("object %q: mesh %q not found", fo.Name, fo.Data)
			}
			obj.Mesh = m
		case "curve":
			obj.Type = scene.TypeCurve
			c, ok := curves[fo.Data]
			if !ok {
				return nil, fmt.Errorf("object %q: curve %q not found", fo.Name, fo.Data)
			}
			obj.Curve = c
		default:
			return nil, fmt.Errorf("object %q: unknown type %q", fo.Name, fo.Type)
		}

		byName[fo.Name] = obj
		sc.Objects = append(sc.Objects, obj)
	}

	for _, fo := range fs.Objects {
		if fo.Parent == "" {
			continue
		}
		parent, ok := byName[fo.Parent]
		if !ok {
			return nil, fmt.Errorf("object %q: parent %q not found", fo.Name, fo.Parent)
		}
		byName[fo.Name].Parent = parent
	}

	sc.Active = nil
	if fs.Active != "" {
		obj, ok := byName[fs.Active]
		if !ok {
			return nil, fmt.Errorf("active object %q not found", fs.Active)
		}
		sc.Active = obj
	} else if len(sc.Objects) > 0 {
		sc.Active = sc.Objects[0]
	}
	return sc, nil
}

func buildMesh(fm fileMesh) (*scene.Mesh, error) {
	m := scene.NewMesh(fm.Name)
	switch fm.SelectMode {
	case "", "vert":
		m.SelectMode = scene.SelectMode{Vert: true}
	case "edge":
		m.SelectMode = scene.SelectMode{Edge: true}
	case "face":
		m.SelectMode = scene.SelectMode{Face: true}
	}
	for _, fv := range fm.Verts {
		m.Verts = append(m.Verts, scene.Vertex{Co: mgl64.Vec3(fv.Co), Select: fv.Select})
	}
	for _, fe := range fm.Edges {
		for _, vi := range fe.Verts {
			if vi < 0 || vi >= len(m.Verts) {
				return nil, fmt.Errorf("mesh %q: edge vertex %d out of range", fm.Name, vi)
			}
		}
		m.Edges = append(m.Edges, scene.Edge{Verts: fe.Verts, Select: fe.Select})
	}
	for _, ff := range fm.Faces {
		for _, vi := range ff.Verts {
			if vi < 0 || vi >= len(m.Verts) {
				return nil, fmt.Errorf("mesh %q: face vertex %d out of range", fm.Name, vi)
			}
		}
		m.Faces = append(m.Faces, scene.Face{Verts: ff.Verts, Select: ff.Select})
	}
	return m, nil
}

func buildCurve(fc fileCurve) (*scene.Curve, error) {
	c := scene.NewCurve(fc.Name)
	for _, fsp := range fc.Splines {
		sp := &scene.Spline{}
		switch fsp.Type {
		case "bezier":
			sp.Type = scene.SplineBezier
		case "nurbs":
			sp.Type = scene.SplineNURBS
		case "poly":
			sp.Type = scene.SplinePoly
		default:
			return nil, fmt.Errorf("curve %q: unknown spline type %q", fc.Name, fsp.Type)
		}
		for _, fb := range fsp.BezierPoints {
			sp.BezierPoints = append(sp.BezierPoints, scene.BezierPoint{
				Co:            mgl64.Vec3(fb.Co),
				HandleLeft:    mgl64.Vec3(fb.HandleLeft),
				HandleRight:   mgl64.Vec3(fb.HandleRight),
				SelectControl: fb.SelectControl,
				SelectLeft:    fb.SelectLeft,
				SelectRight:   fb.SelectRight,
				Radius:        fb.Radius,
				Tilt:          fb.Tilt,
			})
		}
		for _, fp := range fsp.Points {
			sp.Points = append(sp.Points, scene.SplinePoint{
				Co:     mgl64.Vec4(fp.Co),
				Select: fp.Select,
				Weight: fp.Weight,
				Radius: fp.Radius,
				Tilt:   fp.Tilt,
			})
		}
		c.Splines = append(c.Splines, sp)
	}
	return c, nil
}

func flattenScene(sc *scene.Scene) fileScene {
	fs := fileScene{FormatVersion: formatVersion, Mode: sc.Mode.String()}
	if sc.Active != nil {
		fs.Active = sc.Active.Name
	}

	seenMesh := make(map[*scene.Mesh]bool)
	seenCurve := make(map[*scene.Curve]bool)
	for _, obj := range sc.Objects {
		if obj.Mesh != nil && !seenMesh[obj.Mesh] {
			seenMesh[obj.Mesh] = true
			fs.Meshes = append(fs.Meshes, flattenMesh(obj.Mesh))
		}
		if obj.Curve != nil && !seenCurve[obj.Curve] {
			seenCurve[obj.Curve] = true
			fs.Curves = append(fs.Curves, flattenCurve(obj.Curve))
		}
		fs.Objects = append(fs.Objects, flattenObject(obj))
	}
	return fs
}

func flattenObject(obj *scene.Object) fileObject {
	fo := fileObject{
		Name:         obj.Name,
		Location:     obj.Location,
		Scale:        obj.Scale,
		Selected:     obj.Selected,
		Editable:     obj.Editable,
		HideViewport: obj.HideViewport,
		HideRender:   obj.HideRender,
	}
	if obj.Parent != nil {
		fo.Parent = obj.Parent.Name
	}
	switch obj.Type {
	case scene.TypeMesh:
		fo.Type = "mesh"
		fo.Data = obj.Mesh.Name
	case scene.TypeCurve:
		fo.Type = "curve"
		fo.Data = obj.Curve.Name
	default:
		fo.Type = "empty"
	}
	switch obj.RotMode {
	case scene.RotationQuaternion:
		fo.RotMode = "quaternion"
		fo.Quat = [4]float64{obj.Quat.W, obj.Quat.V.X(), obj.Quat.V.Y(), obj.Quat.V.Z()}
	case scene.RotationAxisAngle:
		fo.RotMode = "axis-angle"
		fo.AxisAngle = [4]float64{obj.AxisAngle.Angle, obj.AxisAngle.Axis.X(), obj.AxisAngle.Axis.Y(), obj.AxisAngle.Axis.Z()}
	default:
		fo.RotMode = "euler"
		fo.Euler = obj.Euler
	}
	return fo
}

func flattenMesh(m *scene.Mesh) fileMesh {
	fm := fileMesh{Name: m.Name}
	switch {
	case m.SelectMode.Edge:
		fm.SelectMode = "edge"
	case m.SelectMode.Face:
		fm.SelectMode = "face"
	default:
		fm.SelectMode = "vert"
	}
	for _, v := range m.Verts {
		fm.Verts = append(fm.Verts, fileVert{Co: v.Co, Select: v.Select})
	}
	for _, e := range m.Edges {
		fm.Edges = append(fm.Edges, fileEdge{Verts: e.Verts, Select: e.Select})
	}
	for _, f := range m.Faces {
		fm.Faces = append(fm.Faces, fileFace{Verts: f.Verts, Select: f.Select})
	}
	return fm
}

func flattenCurve(c *scene.Curve) fileCurve {
	fc := fileCurve{Name: c.Name}
	for _, sp := range c.Splines {
		fsp := fileSpline{}
		switch sp.Type {
		case scene.SplineNURBS:
			fsp.Type = "nurbs"
		case scene.SplinePoly:
			fsp.Type = "poly"
		default:
			fsp.Type = "bezier"
		}
		for _, bp := range sp.BezierPoints {
			fsp.BezierPoints = append(fsp.BezierPoints, fileBezierPoint{
				Co:            bp.Co,
				HandleLeft:    bp.HandleLeft,
				HandleRight:   bp.HandleRight,
				SelectControl: bp.SelectControl,
				SelectLeft:    bp.SelectLeft,
				SelectRight:   bp.SelectRight,
				Radius:        bp.Radius,
				Tilt:          bp.Tilt,
			})
		}
		for _, p := range sp.Points {
			fsp.Points = append(fsp.Points, filePoint{
				Co:     p.Co,
				Select: p.Select,
				Weight: p.Weight,
				Radius: p.Radius,
				Tilt:   p.Tilt,
			})
		}
		fc.Splines = append(fc.Splines, fsp)
	}
	return fc
}
