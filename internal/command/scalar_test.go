package command

import (
	"math"
	"testing"
)

func TestParseScalarTable(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		unit Unit
		ok   bool
	}{
		{in: "45", want: 45, unit: UnitNone, ok: true},
		{in: "45d", want: 45, unit: UnitDeg, ok: true},
		{in: "45deg", want: 45, unit: UnitDeg, ok: true},
		{in: "0.785r", want: 0.785, unit: UnitRad, ok: true},
		{in: "0.785rad", want: 0.785, unit: UnitRad, ok: true},
		{in: "+.5", want: 0.5, unit: UnitNone, ok: true},
		{in: "-2.5e-1", want: -0.25, unit: UnitNone, ok: true},
		{in: "1E3", want: 1000, unit: UnitNone, ok: true},
		{in: " 2 ", want: 2, unit: UnitNone, ok: true},
		{in: "45D", want: 45, unit: UnitDeg, ok: true},
		{in: "abc", ok: false},
		{in: "45q", ok: false},
		{in: "5.", ok: false},
		{in: "", ok: false},
		{in: "4 5", ok: false},
		{in: "=1", ok: false},
	}
	for _, tc := range tests {
		got, unit, ok := ParseScalar(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseScalar(%q) ok=%v want %v", tc.in, ok, tc.ok)
		}
		if !tc.ok {
			continue
		}
		if got != tc.want || unit != tc.unit {
			t.Fatalf("ParseScalar(%q)=(%v,%v) want (%v,%v)", tc.in, got, unit, tc.want, tc.unit)
		}
	}
}

func TestDegreesConvertsOnlyRadians(t *testing.T) {
	if got := Degrees(45, UnitNone); got != 45 {
		t.Fatalf("Degrees(45, none)=%v", got)
	}
	if got := Degrees(45, UnitDeg); got != 45 {
		t.Fatalf("Degrees(45, deg)=%v", got)
	}
	want := 0.785 * 180 / math.Pi
	if got := Degrees(0.785, UnitRad); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Degrees(0.785, rad)=%v want %v", got, want)
	}
}
