package command

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit is the dimension suffix of a parsed scalar.
type Unit int

const (
	UnitNone Unit = iota
	UnitDeg
	UnitRad
)

var scalarRE = regexp.MustCompile(`^([+-]?\d*\.?\d+(?:[eE][+-]?\d+)?)([a-z]*)$`)

// ParseScalar parses a number with an optional unit suffix: "45", "45d",
// "45deg", "0.785r", "0.785rad". Unknown suffixes reject the whole value.
func ParseScalar(raw string) (float64, Unit, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	m := scalarRE.FindStringSubmatch(s)
	if m == nil {
		return 0, UnitNone, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, UnitNone, false
	}
	switch m[2] {
	case "":
		return v, UnitNone, true
	case "d", "deg":
		return v, UnitDeg, true
	case "r", "rad":
		return v, UnitRad, true
	}
	return 0, UnitNone, false
}

// Degrees normalizes a parsed rotation value to degrees. The default unit
// for rotation keys is degrees, so only a radian suffix converts.
func Degrees(v float64, u Unit) float64 {
	if u == UnitRad {
		return v * 180 / math.Pi
	}
	return v
}
