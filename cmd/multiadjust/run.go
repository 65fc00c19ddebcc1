package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/appengine-ltd/multi-adjust/internal/adjust"
	"github.com/appengine-ltd/multi-adjust/internal/command"
	"github.com/appengine-ltd/multi-adjust/internal/scene"
	"github.com/appengine-ltd/multi-adjust/internal/store"
)

type options struct {
	scenePath   string
	savePath    string
	mode        string
	oneShot     string
	showVersion bool
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.scenePath, "scene", "", "scene file to load (.json, .yaml)")
	flag.StringVar(&opts.savePath, "save", "", "write the scene back to this file on exit")
	flag.StringVar(&opts.mode, "mode", "", "editor mode: object, edit-mesh, edit-curve")
	flag.StringVar(&opts.oneShot, "c", "", "run a single command line and exit")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Parse()
	return opts
}

func loadScene(opts options) (*scene.Scene, error) {
	var sc *scene.Scene
	if opts.scenePath != "" {
		loaded, err := store.Load(opts.scenePath)
		if err != nil {
			return nil, fmt.Errorf("load scene: %w", err)
		}
		sc = loaded
	} else {
		sc = demoScene()
	}

	switch opts.mode {
	case "":
	case "object":
		sc.Mode = scene.ObjectMode
	case "edit-mesh", "mesh":
		sc.Mode = scene.EditMesh
	case "edit-curve", "curve":
		sc.Mode = scene.EditCurve
	default:
		return nil, fmt.Errorf("unknown mode %q", opts.mode)
	}
	return sc, nil
}

func saveScene(opts options, sc *scene.Scene) error {
	if opts.savePath == "" {
		return nil
	}
	if err := store.Save(opts.savePath, sc); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	return nil
}

// demoScene is what opens when no scene file is given: a unit cube, a
// Bezier arc, and an empty, all selected.
func demoScene() *scene.Scene {
	sc := scene.New()

	cube := scene.NewMesh("Cube")
	for _, co := range [][3]float64{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	} {
		cube.Verts = append(cube.Verts, scene.Vertex{Co: mgl64.Vec3(co), Select: true})
	}
	for _, e := range [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	} {
		cube.Edges = append(cube.Edges, scene.Edge{Verts: e})
	}
	cube.Faces = []scene.Face{
		{Verts: []int{0, 1, 2, 3}}, {Verts: []int{4, 5, 6, 7}},
		{Verts: []int{0, 1, 5, 4}}, {Verts: []int{2, 3, 7, 6}},
		{Verts: []int{1, 2, 6, 5}}, {Verts: []int{0, 3, 7, 4}},
	}
	sc.Add(scene.NewMeshObject("Cube", cube))

	arc := scene.NewCurve("Arc")
	arc.Splines = []*scene.Spline{{
		Type: scene.SplineBezier,
		BezierPoints: []scene.BezierPoint{
			{Co: mgl64.Vec3{3, 0, 0}, HandleLeft: mgl64.Vec3{2.5, -0.5, 0}, HandleRight: mgl64.Vec3{3.5, 0.5, 0}, SelectControl: true, Radius: 1},
			{Co: mgl64.Vec3{4, 1, 1}, HandleLeft: mgl64.Vec3{3.5, 0.5, 1}, HandleRight: mgl64.Vec3{4.5, 1.5, 1}, SelectControl: true, Radius: 1},
		},
	}}
	sc.Add(scene.NewCurveObject("Arc", arc))

	marker := scene.NewObject("Marker")
	marker.Location = mgl64.Vec3{-3, 0, 0}
	sc.Add(marker)

	return sc
}

var (
	statusColor = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	hintColor   = color.New(color.FgCyan)
	failColor   = color.New(color.FgRed)
)

// runLine applies one command and prints the outcome. The exit status is
// zero even for no-op outcomes; only load/save problems fail the process.
func runLine(sc *scene.Scene, sess *adjust.Session, line string) {
	res, err := adjust.Run(sc, sess, line)
	switch {
	case err == nil:
		statusColor.Println(res.Status)
	case errors.Is(err, command.ErrEmptyCommand),
		errors.Is(err, command.ErrNothingToApply),
		errors.Is(err, adjust.ErrNoSelection),
		errors.Is(err, adjust.ErrUnsupportedAttribute):
		failColor.Println(res.Status)
	default:
		failColor.Println(err)
	}
	for _, w := range res.Warnings {
		warnColor.Println(w)
	}
	for _, h := range res.Hints {
		hintColor.Println(h)
	}
}

func repl(sc *scene.Scene, sess *adjust.Session) {
	fmt.Printf("multi-adjust %s mode, blank line quits\n", sc.Mode)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return
		}
		if line == "mode" {
			fmt.Println(sc.Mode)
			continue
		}
		runLine(sc, sess, line)
	}
}
