package point

import (
	"fmt"

	"github.com/go-sweep/sweep/numeric"
	"github.com/go-sweep/sweep/options"
)

// HomogeneousPoint represents a point (X, Y, W) on the projective plane. A
// Cartesian point (x, y) lifts to (x, y, 1); a point with W == 0 lies at
// infinity and has no Cartesian counterpart.
type HomogeneousPoint struct {
	X, Y, W float64
}

// IsAtInfinity reports whether the point lies at infinity (W == 0, within the
// configured epsilon).
func (h HomogeneousPoint) IsAtInfinity(opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	return numeric.FloatEquals(h.W, 0, geoOpts.Epsilon)
}

// Cartesian projects the point back onto the Cartesian plane. The boolean is
// false when the point lies at infinity.
func (h HomogeneousPoint) Cartesian(opts ...options.GeometryOptionsFunc) (Point, bool) {
	if h.IsAtInfinity(opts...) {
		return Point{}, false
	}
	return New(h.X/h.W, h.Y/h.W), true
}

// Line returns the homogeneous line through h and other, the cross product of
// the two points.
func (h HomogeneousPoint) Line(other HomogeneousPoint) HomogeneousLine {
	return HomogeneousLine{
		A: h.Y*other.W - h.W*other.Y,
		B: h.W*other.X - h.X*other.W,
		C: h.X*other.Y - h.Y*other.X,
	}
}

// String returns the point formatted as "(x : y : w)".
func (h HomogeneousPoint) String() string {
	return fmt.Sprintf("(%v : %v : %v)", h.X, h.Y, h.W)
}

// HomogeneousLine represents the projective line A·x + B·y + C·w = 0.
type HomogeneousLine struct {
	A, B, C float64
}

// HorizontalLine returns the horizontal line through y. The sweep-line status
// structure intersects segments with this line to compute their keys.
func HorizontalLine(y float64) HomogeneousLine {
	return HomogeneousLine{A: 0, B: -1, C: y}
}

// VerticalLine returns the vertical line through x.
func VerticalLine(x float64) HomogeneousLine {
	return HomogeneousLine{A: -1, B: 0, C: x}
}

// ContainsPoint reports whether p lies on the line, i.e. whether the dot
// product of the line with the lifted point vanishes within epsilon.
func (l HomogeneousLine) ContainsPoint(p Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	h := p.Homogeneous()
	return numeric.FloatEquals(l.A*h.X+l.B*h.Y+l.C*h.W, 0, geoOpts.Epsilon)
}

// Intersection returns the meet of the two lines, the cross product of their
// coefficient vectors. Parallel lines meet at a point at infinity.
func (l HomogeneousLine) Intersection(other HomogeneousLine) HomogeneousPoint {
	return HomogeneousPoint{
		X: l.B*other.C - l.C*other.B,
		Y: l.C*other.A - l.A*other.C,
		W: l.A*other.B - l.B*other.A,
	}
}

// String returns the line formatted as "[a : b : c]".
func (l HomogeneousLine) String() string {
	return fmt.Sprintf("[%v : %v : %v]", l.A, l.B, l.C)
}
