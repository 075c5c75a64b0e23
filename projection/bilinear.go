package projection

import (
	"math"

	"github.com/golang/geo/r2"
)

// Quad is a convex planar quadrilateral parameterised bilinearly over the
// unit square: P(0,0)=A, P(1,0)=B, P(1,1)=C, P(0,1)=D.
//
// Lines of constant u or v are straight in the plane, so in the gnomonic
// plane every cell edge is a geodesic on the sphere, and splitting the (u, v)
// square splits the quad without gaps or overlaps.
type Quad struct {
	A, B, C, D r2.Point
}

// At evaluates the bilinear map.
func (q Quad) At(u, v float64) r2.Point {
	e := q.B.Sub(q.A)
	f := q.D.Sub(q.A)
	g := q.A.Sub(q.B).Add(q.C).Sub(q.D)

	return q.A.Add(e.Mul(u)).Add(f.Mul(v)).Add(g.Mul(u * v))
}

// Inverse returns the (u, v) that At maps to p. For p outside the quad the
// result is the nearest consistent solution and may leave [0, 1]; callers
// clamp.
func (q Quad) Inverse(p r2.Point) (u, v float64) {
	e := q.B.Sub(q.A)
	f := q.D.Sub(q.A)
	g := q.A.Sub(q.B).Add(q.C).Sub(q.D)
	h := p.Sub(q.A)

	// h = u·e + v·f + u·v·g  =>  k2·v² + k1·v + k0 = 0
	k2 := g.Cross(f)
	k1 := e.Cross(f) + h.Cross(g)
	k0 := h.Cross(e)

	solveU := func(t float64) float64 {
		dx := e.X + g.X*t
		dy := e.Y + g.Y*t
		if math.Abs(dx) >= math.Abs(dy) {
			return (h.X - f.X*t) / dx
		}

		return (h.Y - f.Y*t) / dy
	}

	scale := math.Abs(e.Cross(f))
	if math.Abs(k2) <= 1e-12*scale {
		v = -k0 / k1
		return solveU(v), v
	}

	disc := k1*k1 - 4*k0*k2
	if disc < 0 {
		disc = 0
	}
	// Numerically stable roots: s/k2 and k0/s.
	s := -0.5 * (k1 + math.Copysign(math.Sqrt(disc), k1))
	v = s / k2
	u = solveU(v)
	if s != 0 {
		altV := k0 / s
		altU := solveU(altV)
		if outside(altU)+outside(altV) < outside(u)+outside(v) {
			u, v = altU, altV
		}
	}

	return u, v
}

// outside measures how far t lies outside [0, 1].
func outside(t float64) float64 {
	switch {
	case t < 0:
		return -t
	case t > 1:
		return t - 1
	}

	return 0
}

func clampUnit(t float64) float64 {
	switch {
	case t < 0 || math.IsNaN(t):
		return 0
	case t > 1:
		return 1
	}

	return t
}
