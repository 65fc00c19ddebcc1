//go:build cgo

package viewport

import (
	"fmt"
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/appengine-ltd/multi-adjust/internal/adjust"
	"github.com/appengine-ltd/multi-adjust/internal/scene"
)

var (
	colorBG       = rl.NewColor(24, 26, 30, 255)
	colorObject   = rl.NewColor(210, 214, 220, 255)
	colorSelected = rl.NewColor(255, 168, 64, 255)
	colorVert     = rl.NewColor(90, 160, 255, 255)
	colorVertSel  = rl.NewColor(255, 255, 255, 255)
	colorHandle   = rl.NewColor(150, 110, 255, 255)
	colorStatus   = rl.NewColor(160, 220, 160, 255)
	colorWarn     = rl.NewColor(240, 200, 90, 255)
	colorHint     = rl.NewColor(120, 180, 220, 255)
	colorInput    = rl.NewColor(235, 235, 235, 255)
)

// App is the interactive viewport: orbit camera, scene draw, and a command
// box feeding lines through a queue into the adjust pipeline.
type App struct {
	sc   *scene.Scene
	sess *adjust.Session

	queue *commandQueue

	input    string
	typing   bool
	status   string
	warnings []string
	hints    []string

	yaw   float64
	pitch float64
	dist  float64

	width  int32
	height int32
	quit   bool
}

func NewApp(sc *scene.Scene, sess *adjust.Session) *App {
	return &App{
		sc:     sc,
		sess:   sess,
		queue:  newCommandQueue(16),
		yaw:    0.8,
		pitch:  0.6,
		dist:   10,
		width:  1280,
		height: 800,
		status: "Enter a command (: to type), Tab cycles mode, Q quits",
	}
}

// Sink exposes the command queue for scripted input.
func (a *App) Sink() CommandSink { return a.queue }

func (a *App) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(a.width, a.height, "multi-adjust")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	for !a.quit && !rl.WindowShouldClose() {
		a.width = int32(rl.GetScreenWidth())
		a.height = int32(rl.GetScreenHeight())

		a.update()

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		a.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (a *App) update() {
	if line, ok := a.queue.Dequeue(); ok {
		a.runCommand(line)
	}

	if a.typing {
		a.updateInput()
		return
	}

	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.cycleMode()
	}
	if rl.IsKeyPressed(rl.KeySemicolon) || rl.IsKeyPressed(rl.KeySlash) {
		a.typing = true
		a.input = ""
	}

	wheel := float64(rl.GetMouseWheelMove())
	if wheel != 0 {
		a.dist -= wheel
		if a.dist < 2 {
			a.dist = 2
		}
		if a.dist > 60 {
			a.dist = 60
		}
	}
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) || rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		a.yaw -= float64(delta.X) * 0.01
		a.pitch += float64(delta.Y) * 0.01
		limit := math.Pi/2 - 0.05
		if a.pitch > limit {
			a.pitch = limit
		}
		if a.pitch < -limit {
			a.pitch = -limit
		}
	}
}

func (a *App) updateInput() {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch < 127 {
			a.input += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(a.input) > 0 {
		a.input = a.input[:len(a.input)-1]
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.typing = false
		a.input = ""
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		line := a.input
		a.typing = false
		a.input = ""
		a.queue.EnqueueCommand(line)
	}
}

func (a *App) runCommand(line string) {
	res, err := adjust.Run(a.sc, a.sess, line)
	a.status = res.Status
	a.warnings = res.Warnings
	a.hints = res.Hints
	if err != nil && a.status == "" {
		a.status = err.Error()
	}
}

func (a *App) cycleMode() {
	switch a.sc.Mode {
	case scene.ObjectMode:
		a.sc.Mode = scene.EditMesh
	case scene.EditMesh:
		a.sc.Mode = scene.EditCurve
	default:
		a.sc.Mode = scene.ObjectMode
	}
	a.status = fmt.Sprintf("Mode: %s", a.sc.Mode)
}

func (a *App) camera() rl.Camera3D {
	x := a.dist * math.Cos(a.pitch) * math.Cos(a.yaw)
	y := a.dist * math.Cos(a.pitch) * math.Sin(a.yaw)
	z := a.dist * math.Sin(a.pitch)
	return rl.Camera3D{
		// Z-up scene mapped into raylib's Y-up camera space.
		Position:   rl.NewVector3(float32(x), float32(z), float32(y)),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func toRL(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Z()), float32(v.Y()))
}

func (a *App) draw() {
	cam := a.camera()
	rl.BeginMode3D(cam)
	rl.DrawGrid(20, 1)
	for _, obj := range a.sc.Objects {
		if obj.HideViewport {
			continue
		}
		a.drawObject(obj)
	}
	rl.EndMode3D()
	a.drawOverlay()
}

func (a *App) drawObject(obj *scene.Object) {
	mw := obj.WorldMatrix()
	world := func(v mgl64.Vec3) rl.Vector3 {
		return toRL(mw.Mul4x1(v.Vec4(1)).Vec3())
	}
	outline := colorObject
	if obj.Selected {
		outline = colorSelected
	}

	switch {
	case obj.Mesh != nil:
		for _, e := range obj.Mesh.Edges {
			rl.DrawLine3D(world(obj.Mesh.Verts[e.Verts[0]].Co), world(obj.Mesh.Verts[e.Verts[1]].Co), outline)
		}
		if a.sc.Mode == scene.EditMesh && obj == a.sc.Active {
			for _, v := range obj.Mesh.Verts {
				c := colorVert
				if v.Select {
					c = colorVertSel
				}
				rl.DrawSphere(world(v.Co), 0.04, c)
			}
		}
	case obj.Curve != nil:
		for _, sp := range obj.Curve.Splines {
			if sp.Type == scene.SplineBezier {
				for i := range sp.BezierPoints {
					bp := sp.BezierPoints[i]
					rl.DrawLine3D(world(bp.HandleLeft), world(bp.Co), colorHandle)
					rl.DrawLine3D(world(bp.Co), world(bp.HandleRight), colorHandle)
					if i+1 < len(sp.BezierPoints) {
						rl.DrawLine3D(world(bp.Co), world(sp.BezierPoints[i+1].Co), outline)
					}
					if a.sc.Mode == scene.EditCurve && obj == a.sc.Active {
						c := colorVert
						if bp.SelectControl {
							c = colorVertSel
						}
						rl.DrawSphere(world(bp.Co), 0.05, c)
					}
				}
				continue
			}
			for i := range sp.Points {
				p := sp.Points[i]
				co := mgl64.Vec3{p.Co.X(), p.Co.Y(), p.Co.Z()}
				if i+1 < len(sp.Points) {
					next := sp.Points[i+1]
					rl.DrawLine3D(world(co), world(mgl64.Vec3{next.Co.X(), next.Co.Y(), next.Co.Z()}), outline)
				}
				if a.sc.Mode == scene.EditCurve && obj == a.sc.Active {
					c := colorVert
					if p.Select {
						c = colorVertSel
					}
					rl.DrawSphere(world(co), 0.05, c)
				}
			}
		}
	default:
		// Empties draw as a small axis cross at their origin.
		origin := obj.WorldTranslation()
		for _, axis := range []mgl64.Vec3{{0.3, 0, 0}, {0, 0.3, 0}, {0, 0, 0.3}} {
			rl.DrawLine3D(toRL(origin.Sub(axis)), toRL(origin.Add(axis)), outline)
		}
	}
}

func (a *App) drawOverlay() {
	rl.DrawText(fmt.Sprintf("mode: %s  space(obj): %s  space(mesh): %s  affect: %s",
		a.sc.Mode, a.sess.ObjectSpace, a.sess.MeshSpace, a.sess.MeshAffect), 16, 12, 18, colorInput)

	y := a.height - 96
	if a.typing {
		rl.DrawText(": "+a.input+"_", 16, y, 20, colorInput)
	} else if a.status != "" {
		rl.DrawText(a.status, 16, y, 20, colorStatus)
	}
	y += 24
	if len(a.warnings) > 0 {
		rl.DrawText(strings.Join(a.warnings, " | "), 16, y, 18, colorWarn)
		y += 22
	}
	if len(a.hints) > 0 {
		rl.DrawText(strings.Join(a.hints, " | "), 16, y, 18, colorHint)
	}
}
