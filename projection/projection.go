// Package projection maps between geographic coordinates and the face-local
// coordinates of the dodecahedral tiling.
//
// Each of the 12 faces is projected gnomonically onto the plane tangent at its
// centre. In that plane the face is a regular pentagon, split into five
// quadrilateral quintants that meet at the centre; a quintant is addressed by
// bilinear coordinates (u, v) in [0, 1]². Gnomonic projection maps great
// circles to straight lines, so the straight quad edges are geodesics on the
// sphere and faces share their edges exactly.
//
// Forward maps (face, quintant, u, v) to a point on the sphere; Inverse maps a
// longitude/latitude back. The two agree to within floating-point precision for
// points inside a quintant.
//
// Points on a shared boundary resolve deterministically:
//   - faces: the largest dot product with the face centre wins, and faces
//     within FaceTieTolerance of the best are tied, the lowest index winning;
//   - quintants: half-open counter-clockwise sectors, the centre in quintant 0;
//     a point within RayTolerance of a sector's starting ray is on that ray.
package projection

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"

	"github.com/arloliu/pentagrid/coord"
	"github.com/arloliu/pentagrid/errs"
)

// FaceTieTolerance is the dot-product margin within which two faces are
// considered equally close to a point.
const FaceTieTolerance = 1e-12

// Location is a point expressed in face-local coordinates.
type Location struct {
	Face     int
	Quintant int
	U, V     float64
}

// Forward maps face-local coordinates to a point on the unit sphere.
// face and quintant must be in range; u and v are not clamped.
func Forward(faceIndex, quintant int, u, v float64) s2.Point {
	f := &faces[faceIndex]
	return f.fromPlane(f.quintants[quintant].At(u, v))
}

// ForwardLonLat is Forward followed by conversion to degrees.
func ForwardLonLat(faceIndex, quintant int, u, v float64) coord.LonLat {
	return coord.FromPoint(Forward(faceIndex, quintant, u, v))
}

// FromPlane maps a point of the face's gnomonic plane to the unit sphere.
func FromPlane(faceIndex int, p r2.Point) s2.Point {
	return faces[faceIndex].fromPlane(p)
}

// Pentagon returns the face's corners in its gnomonic plane, counter-clockwise.
func Pentagon(faceIndex int) [5]r2.Point {
	return faces[faceIndex].vertices
}

// QuintantQuad returns the planar quad of a quintant in its face's gnomonic
// plane.
func QuintantQuad(faceIndex, quintant int) Quad {
	return faces[faceIndex].quintants[quintant]
}

// FaceCenter returns the unit vector at the centre of a face.
func FaceCenter(faceIndex int) s2.Point {
	return faces[faceIndex].center
}

// NearestFace returns the face containing p under the tie rule described in
// the package documentation.
func NearestFace(p s2.Point) int {
	var dots [FaceCount]float64
	best := math.Inf(-1)
	for i := range faces {
		dots[i] = p.Dot(faces[i].center.Vector)
		if dots[i] > best {
			best = dots[i]
		}
	}
	for i, d := range dots {
		if d >= best-FaceTieTolerance {
			return i
		}
	}

	return 0
}

// Inverse locates a geographic point in face-local coordinates. The point is
// validated and normalised first; u and v are clamped to [0, 1].
func Inverse(ll coord.LonLat) (Location, error) {
	if err := ll.Validate(); err != nil {
		return Location{}, err
	}

	return InversePoint(ll.Normalize().ToPoint())
}

// InversePoint locates a unit vector in face-local coordinates.
func InversePoint(p s2.Point) (Location, error) {
	faceIndex := NearestFace(p)
	f := &faces[faceIndex]

	planar, ok := f.toPlane(p.Vector)
	if !ok {
		return Location{}, fmt.Errorf("%w: point %v is behind face %d", errs.ErrProjectionDomain, p, faceIndex)
	}

	quintant := f.quintantOf(planar)
	u, v := f.quintants[quintant].Inverse(planar)

	return Location{
		Face:     faceIndex,
		Quintant: quintant,
		U:        clampUnit(u),
		V:        clampUnit(v),
	}, nil
}
