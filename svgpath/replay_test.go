package svgpath

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// recorder is a Drawer that records what it receives.
type recorder struct {
	ops    []string
	points []Point
	cubics [][3]Point
}

func (r *recorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, "M")
	r.points = append(r.points, Pt(x, y))
}

func (r *recorder) LineTo(x, y float64) {
	r.ops = append(r.ops, "L")
	r.points = append(r.points, Pt(x, y))
}

func (r *recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.ops = append(r.ops, "C")
	r.points = append(r.points, Pt(x, y))
	r.cubics = append(r.cubics, [3]Point{Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)})
}

func (r *recorder) ClosePath() {
	r.ops = append(r.ops, "Z")
}

func TestPath_ReplayCircle(t *testing.T) {
	rec := &recorder{}
	MustParse("m 12 9 m 3 0 a 3 3 0 0 0 -6 0 a 3 3 0 0 0 6 0 z").Replay(rec)

	wantOps := []string{"M", "M", "C", "C", "C", "C", "Z"}
	if len(rec.ops) != len(wantOps) {
		t.Fatalf("ops = %v, want %v", rec.ops, wantOps)
	}
	for i := range wantOps {
		if rec.ops[i] != wantOps[i] {
			t.Fatalf("ops = %v, want %v", rec.ops, wantOps)
		}
	}

	// Semicircle endpoints are exact.
	if rec.points[3] != Pt(9, 9) {
		t.Errorf("first semicircle ends at %v, want (9, 9)", rec.points[3])
	}
	if rec.points[5] != Pt(15, 9) {
		t.Errorf("second semicircle ends at %v, want (15, 9)", rec.points[5])
	}

	// Every curve midpoint must stay on the circle.
	start := Pt(15, 9)
	for i, c := range rec.cubics {
		mid := cubicAt(start, c[0], c[1], c[2], 0.5)
		r := math.Hypot(mid.X-12, mid.Y-9)
		if !scalar.EqualWithinAbs(r, 3, 1e-3) {
			t.Errorf("cubic %d midpoint radius = %v, want ~3", i, r)
		}
		start = c[2]
	}
}

func TestPath_ReplayFirstArcGoesOverTheTop(t *testing.T) {
	rec := &recorder{}
	MustParse("M 15 9 a 3 3 0 0 0 -6 0").Replay(rec)
	if len(rec.cubics) != 2 {
		t.Fatalf("got %d cubics, want 2", len(rec.cubics))
	}
	// The quarter point of a counter-clockwise (on screen) sweep is above
	// the center, i.e. has a smaller y.
	quarter := rec.cubics[0][2]
	if !scalar.EqualWithinAbs(quarter.X, 12, 1e-9) || !scalar.EqualWithinAbs(quarter.Y, 6, 1e-9) {
		t.Errorf("quarter point = %v, want (12, 6)", quarter)
	}
}

func TestPath_ReplayDegenerateArcs(t *testing.T) {
	rec := &recorder{}
	MustParse("M 0 0 a 0 5 0 0 1 4 0 a 5 5 0 0 1 0 0 l 1 1").Replay(rec)

	want := []string{"M", "L", "L"}
	if len(rec.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", rec.ops, want)
	}
	if rec.points[1] != Pt(4, 0) || rec.points[2] != Pt(5, 1) {
		t.Errorf("points = %v", rec.points)
	}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
