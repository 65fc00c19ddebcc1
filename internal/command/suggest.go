package command

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

var knownKeys = []string{
	"space", "target",
	"x", "y", "z",
	"rx", "ry", "rz",
	"sx", "sy", "sz",
	"ox", "oy", "oz",
	"loc.x", "loc.y", "loc.z",
	"rot.x", "rot.y", "rot.z",
	"scale.x", "scale.y", "scale.z",
	"origin.x", "origin.y", "origin.z",
	"weight", "radius", "tilt",
}

// suggestKey returns a hint for an unrecognized key that is a near miss of
// a known one, or "" when nothing is close. Hints are advisory only; the
// token itself has already been dropped.
func suggestKey(key string) string {
	if key == "" {
		return ""
	}
	best := ""
	bestDist := 0
	for _, cand := range knownKeys {
		dist := levenshtein.ComputeDistance(key, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if best == "" || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf("unknown key %q, did you mean %q?", key, best)
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
