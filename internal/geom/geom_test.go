package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestDistance_BasicProperties verifies identity and symmetry.
func TestDistance_BasicProperties(t *testing.T) {
	p1 := &Point{X: 3, Y: 4}
	p2 := &Point{X: -1, Y: 7}

	if d := Distance(p1, p1); d != 0 {
		t.Fatalf("expected distance(p, p) == 0, got %g", d)
	}
	if d1, d2 := Distance(p1, p2), Distance(p2, p1); d1 != d2 {
		t.Fatalf("expected symmetric distance, got %g and %g", d1, d2)
	}
	if d := Distance(&Point{}, &Point{X: 3, Y: 4}); d != 5 {
		t.Fatalf("expected 5, got %g", d)
	}
}

// TestDistance_MissingPointIsInfinite verifies nil points are never "nearby".
func TestDistance_MissingPointIsInfinite(t *testing.T) {
	p := &Point{X: 1, Y: 1}
	if d := Distance(nil, p); !math.IsInf(d, 1) {
		t.Fatalf("expected +Inf, got %g", d)
	}
	if d := Distance(p, nil); !math.IsInf(d, 1) {
		t.Fatalf("expected +Inf, got %g", d)
	}
}

// TestSegmentLength verifies the finite-segment length.
func TestSegmentLength(t *testing.T) {
	s := Segment{Start: Point{X: 0, Y: 0}, End: Point{X: 6, Y: 8}}
	if l := SegmentLength(s); l != 10 {
		t.Fatalf("expected 10, got %g", l)
	}
}

// TestAngleBetween verifies perpendicular and parallel lines.
func TestAngleBetween(t *testing.T) {
	horizontal := Segment{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 0}}
	vertical := Segment{Start: Point{X: 0, Y: 0}, End: Point{X: 0, Y: 10}}

	if a := AngleBetween(horizontal, vertical); math.Abs(a-math.Pi/2) > 1e-9 {
		t.Fatalf("expected pi/2, got %g", a)
	}
	if a := AngleBetween(horizontal, horizontal); math.Abs(a) > 1e-9 {
		t.Fatalf("expected 0, got %g", a)
	}
}

// TestPointInRect_InsideOutsideAndNil verifies containment and nil handling.
func TestPointInRect_InsideOutsideAndNil(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Width: 100, Height: 50}

	inside := &Point{X: 10, Y: 70}
	if got := PointInRect(r, inside); got != inside {
		t.Fatalf("expected point on edge to be inside, got %#v", got)
	}
	if got := PointInRect(r, PointInRect(r, inside)); got != inside {
		t.Fatalf("expected idempotent containment, got %#v", got)
	}
	if got := PointInRect(r, &Point{X: 9.9, Y: 30}); got != nil {
		t.Fatalf("expected nil for outside point, got %#v", got)
	}
	if got := PointInRect(r, nil); got != nil {
		t.Fatalf("expected nil for nil point, got %#v", got)
	}
}

// TestRotatePoint_ClockwiseConvention pins the clockwise-positive formula.
func TestRotatePoint_ClockwiseConvention(t *testing.T) {
	got := RotatePoint(Point{X: 1, Y: 0}, Point{X: 0, Y: 0}, math.Pi/2)
	want := Point{X: 0, Y: -1}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = RotatePoint(Point{X: 2, Y: 0}, Point{X: 5, Y: 5}, 0)
	want = Point{X: 7, Y: 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rotation by zero mismatch (-want +got):\n%s", diff)
	}
}

// TestClampToCircle_InsideUnchanged verifies points within radius pass through.
func TestClampToCircle_InsideUnchanged(t *testing.T) {
	center := Point{X: 0, Y: 0}
	p := Point{X: 3, Y: 4}
	if got := ClampToCircle(center, 5, p); got != p {
		t.Fatalf("expected unchanged point, got %v", got)
	}
	if got := ClampToCircle(center, 10, p); got != p {
		t.Fatalf("expected unchanged point, got %v", got)
	}
}

// TestClampToCircle_OutsideLandsOnCircle verifies the clamped point sits at
// exactly the radius from the center.
func TestClampToCircle_OutsideLandsOnCircle(t *testing.T) {
	center := Point{X: 0, Y: 0}
	got := ClampToCircle(center, 5, Point{X: 30, Y: 40})
	if d := Distance(&center, &got); math.Abs(d-5) > 1e-9 {
		t.Fatalf("expected distance 5 from center, got %g (%v)", d, got)
	}

	center = Point{X: 100, Y: 50}
	got = ClampToCircle(center, 20, Point{X: 300, Y: 120})
	if d := Distance(&center, &got); math.Abs(d-20) > 1e-9 {
		t.Fatalf("expected distance 20 from center, got %g (%v)", d, got)
	}
}

// TestClampToCircle_VerticalFallback pins the y = radius degenerate case.
func TestClampToCircle_VerticalFallback(t *testing.T) {
	center := Point{X: 10, Y: 0}
	got := ClampToCircle(center, 5, Point{X: 10, Y: 100})
	if got.Y != 5 {
		t.Fatalf("expected y fallback to radius 5, got %v", got)
	}
}

// TestIntersect_CrossingWithinBound verifies basic line intersection.
func TestIntersect_CrossingWithinBound(t *testing.T) {
	bound := Rect{Left: 0, Top: 0, Width: 100, Height: 100}
	a := Segment{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 0}}
	b := Segment{Start: Point{X: 5, Y: -5}, End: Point{X: 5, Y: 5}}

	got, err := Intersect(bound, a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.X != 5 || got.Y != 0 {
		t.Fatalf("expected (5, 0), got %#v", got)
	}
}

// TestIntersect_OutsideBoundIsNil verifies clipping to the bounding rect.
func TestIntersect_OutsideBoundIsNil(t *testing.T) {
	bound := Rect{Left: 0, Top: 0, Width: 4, Height: 4}
	a := Segment{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 0}}
	b := Segment{Start: Point{X: 5, Y: -5}, End: Point{X: 5, Y: 5}}

	got, err := Intersect(bound, a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil outside bound, got %#v", got)
	}
}

// TestIntersect_ParallelIsNil verifies parallel lines report no intersection.
func TestIntersect_ParallelIsNil(t *testing.T) {
	bound := Rect{Left: 0, Top: 0, Width: 100, Height: 100}
	a := Segment{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 0}}
	b := Segment{Start: Point{X: 0, Y: 5}, End: Point{X: 20, Y: 5}}

	got, err := Intersect(bound, a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for parallel lines, got %#v", got)
	}
}

// TestIntersect_CoincidentIsError verifies the degenerate same-line case
// surfaces as an explicit error.
func TestIntersect_CoincidentIsError(t *testing.T) {
	bound := Rect{Left: 0, Top: 0, Width: 100, Height: 100}
	a := Segment{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 10}}

	if _, err := Intersect(bound, a, a); !errors.Is(err, ErrCoincident) {
		t.Fatalf("expected ErrCoincident, got %v", err)
	}
}

// TestSamplePath_StartsAtStartAndHasBoundedLength verifies step counting.
func TestSamplePath_StartsAtStartAndHasBoundedLength(t *testing.T) {
	start := Point{X: 0, Y: 0}
	end := Point{X: 10, Y: 4}

	path := SamplePath(start, end)
	if path[0] != start {
		t.Fatalf("expected path to begin at start, got %v", path[0])
	}
	if len(path) != 11 {
		t.Fatalf("expected 11 points, got %d", len(path))
	}
	if last := path[len(path)-1]; last != end {
		t.Fatalf("expected path to end at end, got %v", last)
	}
}

// TestSamplePath_CapsAtSixtySteps verifies the per-gesture cost bound.
func TestSamplePath_CapsAtSixtySteps(t *testing.T) {
	path := SamplePath(Point{X: 0, Y: 0}, Point{X: 5000, Y: 100})
	if len(path) != 61 {
		t.Fatalf("expected 61 points, got %d", len(path))
	}
}

// TestSamplePath_CoincidentPoints verifies the single-element path.
func TestSamplePath_CoincidentPoints(t *testing.T) {
	p := Point{X: 7, Y: 7}
	path := SamplePath(p, p)
	if diff := cmp.Diff([]Point{p}, path); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}
