package svgpath

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestCenterArc_DiameterUsesChordMidpoint(t *testing.T) {
	for _, r := range []float64{3, 3.2625, 0.1, 7.4999} {
		from, to := Pt(12+r, 9), Pt(12-r, 9)
		for _, flags := range [][2]bool{{false, false}, {false, true}, {true, false}, {true, true}} {
			a, shape := centerArc(from, to, ArcTo{Rx: r, Ry: r, LargeArc: flags[0], Sweep: flags[1]})
			if shape != arcCurve {
				t.Fatalf("r=%v: shape = %v, want arcCurve", r, shape)
			}
			want := Pt((from.X+to.X)/2, 9)
			if a.center != want {
				t.Errorf("r=%v flags=%v: center = %v, want %v", r, flags, a.center, want)
			}
		}
	}
}

func TestCenterArc_QuarterCircle(t *testing.T) {
	a, _ := centerArc(Pt(1, 0), Pt(0, 1), ArcTo{Rx: 1, Ry: 1, Sweep: true})
	if !scalar.EqualWithinAbs(a.center.X, 0, tol) || !scalar.EqualWithinAbs(a.center.Y, 0, tol) {
		t.Errorf("center = %v, want (0, 0)", a.center)
	}
	if !scalar.EqualWithinAbs(a.delta, 1.5707963267948966, tol) {
		t.Errorf("delta = %v, want π/2", a.delta)
	}
}

func TestPath_BoundsHalfCircles(t *testing.T) {
	p := MustParse("m 12 9 m 3.2625 0 a 3.2625 3.2625 0 0 0 -6.525 0 a 3.2625 3.2625 0 0 0 6.525 0 z")
	assertRect(t, p.Bounds(), Rect{Min: Pt(8.7375, 5.7375), Max: Pt(15.2625, 12.2625)})
}
