package adjust

import (
	"errors"
	"strings"

	"github.com/appengine-ltd/multi-adjust/internal/command"
	"github.com/appengine-ltd/multi-adjust/internal/scene"
)

var (
	ErrNoSelection          = errors.New("no selection")
	ErrUnsupportedAttribute = errors.New("unsupported attribute")
)

// Result is what a front-end shows after one apply: a one-line status,
// non-fatal warnings, and interpreter hints for near-miss keys.
type Result struct {
	Status   string
	Warnings []string
	Hints    []string
}

// Run executes one command line against the scene: resolve the intent
// under the current editor mode, merge it into the session (overrides
// persist whenever present, values only for the winning domain), then
// dispatch the domain apply. Failures leave the geometry untouched and
// map to a short status; no error escapes the invocation unclassified.
func Run(sc *scene.Scene, s *Session, line string) (Result, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Result{Status: "Empty command"}, command.ErrEmptyCommand
	}

	// Stale toggles from a previous run must not leak into this one.
	s.XEnable, s.YEnable, s.ZEnable = false, false, false

	intent, err := command.Resolve(sc.Mode, trimmed)
	mergeIntent(s, intent, err == nil)
	if err != nil {
		return Result{Status: "Nothing to apply", Hints: intent.Hints}, err
	}

	var res Result
	switch intent.Domain {
	case command.DomainMesh:
		res, err = ApplyMesh(sc, s)
	case command.DomainCurve:
		res, err = ApplyCurve(sc, s)
	default:
		res, err = ApplyObject(sc, s)
	}
	res.Hints = append(res.Hints, intent.Hints...)
	return res, err
}
