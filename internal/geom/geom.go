// Package geom provides the analytic-geometry primitives the flip engine
// uses to compute page-fold shapes.
package geom

import (
	"errors"
	"math"
)

// ErrCoincident reports that two segments lie on the same line, a degenerate
// configuration the caller must resolve with fallback geometry.
var ErrCoincident = errors.New("segments are coincident")

// Point is a 2-D coordinate relative to the widget bounding box.
type Point struct {
	X float64
	Y float64
}

// Segment is an ordered pair of points. Depending on the operation it is
// treated as the infinite line through both points or as a finite segment.
type Segment struct {
	Start Point
	End   Point
}

// Rect is an axis-aligned bounding box in widget-relative coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Distance returns the euclidean distance between two points. A nil point
// yields +Inf so that "nearby" comparisons never match a missing point.
func Distance(p1, p2 *Point) float64 {
	if p1 == nil || p2 == nil {
		return math.Inf(1)
	}
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// SegmentLength returns the distance between the segment endpoints.
func SegmentLength(s Segment) float64 {
	return Distance(&s.Start, &s.End)
}

// AngleBetween returns the angle in radians between the lines through two
// segments, computed from the implicit line-normal coefficients. Zero-length
// segments produce NaN.
func AngleBetween(l1, l2 Segment) float64 {
	a1 := l1.Start.Y - l1.End.Y
	b1 := l1.End.X - l1.Start.X
	a2 := l2.Start.Y - l2.End.Y
	b2 := l2.End.X - l2.Start.X
	return math.Acos((a1*a2 + b1*b2) / (math.Sqrt(a1*a1+b1*b1) * math.Sqrt(a2*a2+b2*b2)))
}

// PointInRect returns p unchanged when it lies within the closed rectangle,
// nil otherwise. A nil point yields nil.
func PointInRect(r Rect, p *Point) *Point {
	if p == nil {
		return nil
	}
	if p.X >= r.Left && p.X <= r.Left+r.Width && p.Y >= r.Top && p.Y <= r.Top+r.Height {
		return p
	}
	return nil
}

// RotatePoint rotates p around pivot by angle radians. The formula is
// clockwise-positive, not the mathematical counter-clockwise convention;
// renderers depend on this orientation, so it must not be "corrected".
func RotatePoint(p, pivot Point, angle float64) Point {
	sin := math.Sin(angle)
	cos := math.Cos(angle)
	return Point{
		X: p.X*cos + p.Y*sin + pivot.X,
		Y: p.Y*cos - p.X*sin + pivot.Y,
	}
}

// ClampToCircle returns p unchanged when it is within radius of center,
// otherwise the point where the circle of that radius meets the line through
// center and p. When center.X equals p.X the division degenerates and the
// result falls back to y = radius; this quirk is load-bearing for the fold
// visuals and is kept as-is.
func ClampToCircle(center Point, radius float64, p Point) Point {
	if Distance(&center, &p) <= radius {
		return p
	}
	dx := center.X - p.X
	dy := center.Y - p.Y
	x := math.Sqrt(radius*radius*dx*dx/(dx*dx+dy*dy)) + center.X
	y := radius
	if dx != 0 {
		y = (x-center.X)*dy/dx + center.Y
	}
	return Point{X: x, Y: y}
}

// Intersect returns the intersection of the infinite lines through segments
// a and b, clipped to bound. Parallel lines and intersections outside bound
// yield nil. Coincident lines (A/B coefficients equal within 0.1) yield
// ErrCoincident, which callers must treat as degenerate geometry rather than
// "no intersection".
func Intersect(bound Rect, a, b Segment) (*Point, error) {
	a1 := a.Start.Y - a.End.Y
	b1 := a.End.X - a.Start.X
	a2 := b.Start.Y - b.End.Y
	b2 := b.End.X - b.Start.X
	if math.Abs(a1-a2) < 0.1 && math.Abs(b1-b2) < 0.1 {
		return nil, ErrCoincident
	}

	c1 := a.Start.X*a.End.Y - a.End.X*a.Start.Y
	c2 := b.Start.X*b.End.Y - b.End.X*b.Start.Y
	det := a1*b2 - a2*b1
	x := (b1*c2 - b2*c1) / det
	y := (a2*c1 - a1*c2) / det
	if math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(x) || math.IsNaN(y) {
		return nil, nil
	}
	return PointInRect(bound, &Point{X: x, Y: y}), nil
}

// SamplePath returns interpolated points along the segment from start to
// end, beginning with start. One step per pixel of the longer axis, capped
// at 60 steps so a single gesture never materializes an unbounded path.
func SamplePath(start, end Point) []Point {
	steps := int(math.Ceil(math.Max(math.Abs(end.X-start.X), math.Abs(end.Y-start.Y))))
	if steps > 60 {
		steps = 60
	}

	result := make([]Point, 0, steps+1)
	result = append(result, start)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		result = append(result, Point{
			X: start.X + (end.X-start.X)*t,
			Y: start.Y + (end.Y-start.Y)*t,
		})
	}
	return result
}
