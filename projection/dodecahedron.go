package projection

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// FaceCount is the number of top-level pentagonal faces.
const FaceCount = 12

// QuintantCount is the number of quads a face splits into at resolution 1.
const QuintantCount = 5

// ringLatitude is the latitude of the two rings of five face centres, atan(1/2).
var ringLatitude = math.Atan(0.5) * 180 / math.Pi

// faceCenters lists the face centres as (lon, lat) in degrees. The order is
// the face numbering: north pole, upper ring eastwards from the prime
// meridian, lower ring eastwards from 36°E, south pole.
var faceCenters = [FaceCount][2]float64{
	{0, 90},
	{0, ringLatitude},
	{72, ringLatitude},
	{144, ringLatitude},
	{-144, ringLatitude},
	{-72, ringLatitude},
	{36, -ringLatitude},
	{108, -ringLatitude},
	{180, -ringLatitude},
	{-108, -ringLatitude},
	{-36, -ringLatitude},
	{0, -90},
}

// face is the precomputed geometry of one dodecahedron face.
//
// The face-local plane is the gnomonic plane tangent at center, spanned by
// east and north; east × north == center, so counter-clockwise in the plane is
// counter-clockwise seen from outside the sphere.
type face struct {
	center s2.Point
	east   r3.Vector
	north  r3.Vector

	// vertices are the pentagon corners in the plane, counter-clockwise.
	vertices [5]r2.Point
	// midpoints[k] is the midpoint of the edge vertices[k] -> vertices[k+1].
	midpoints [5]r2.Point
	// quintants[k] is the quad (O, midpoints[k], vertices[k+1], midpoints[k+1]).
	quintants [QuintantCount]Quad
}

// centerSnap is the planar distance below which a point is treated as the
// face centre; closer than this the sector cross products are rounding noise.
const centerSnap = 1e-14

// RayTolerance is the sine of the angle within which a point is taken to lie
// on the ray that starts a quintant's sector.
const RayTolerance = 1e-12

// faces is written once by init and read-only afterwards.
var faces [FaceCount]face

func init() {
	built, err := buildFaces()
	if err != nil {
		panic("projection: " + err.Error())
	}
	faces = built
}

func buildFaces() ([FaceCount]face, error) {
	var out [FaceCount]face
	for i, c := range faceCenters {
		lon := c[0] * math.Pi / 180
		lat := c[1] * math.Pi / 180
		sinLon, cosLon := math.Sincos(lon)
		sinLat, cosLat := math.Sincos(lat)

		center := r3.Vector{X: cosLat * cosLon, Y: cosLat * sinLon, Z: sinLat}
		if c[1] == 90 || c[1] == -90 {
			center = r3.Vector{Z: sinLat}
		}
		out[i].center = s2.Point{Vector: center}
		out[i].east = r3.Vector{X: -sinLon, Y: cosLon}
		out[i].north = r3.Vector{X: -sinLat * cosLon, Y: -sinLat * sinLon, Z: cosLat}
	}

	// Dodecahedron vertices are the normalised sums of three mutually adjacent
	// face centres. Each vertex is computed once from its sorted triple so that
	// every face sharing it sees the identical vector.
	corners := make([][]r3.Vector, FaceCount)
	adjacent := func(a, b int) bool {
		return out[a].center.Dot(out[b].center.Vector) > 0.1
	}
	for a := 0; a < FaceCount; a++ {
		for b := a + 1; b < FaceCount; b++ {
			if !adjacent(a, b) {
				continue
			}
			for c := b + 1; c < FaceCount; c++ {
				if !adjacent(a, c) || !adjacent(b, c) {
					continue
				}
				v := out[a].center.Add(out[b].center.Vector).Add(out[c].center.Vector).Normalize()
				corners[a] = append(corners[a], v)
				corners[b] = append(corners[b], v)
				corners[c] = append(corners[c], v)
			}
		}
	}

	for i := range out {
		f := &out[i]
		if len(corners[i]) != 5 {
			return out, fmt.Errorf("face %d has %d corners, want 5", i, len(corners[i]))
		}

		planar := make([]r2.Point, 0, 5)
		for _, v := range corners[i] {
			p, ok := f.toPlane(v)
			if !ok {
				return out, fmt.Errorf("face %d corner behind tangent plane", i)
			}
			planar = append(planar, p)
		}
		sort.Slice(planar, func(a, b int) bool {
			return math.Atan2(planar[a].Y, planar[a].X) < math.Atan2(planar[b].Y, planar[b].X)
		})
		copy(f.vertices[:], planar)

		for k := range 5 {
			f.midpoints[k] = f.vertices[k].Add(f.vertices[(k+1)%5]).Mul(0.5)
		}
		for k := range QuintantCount {
			f.quintants[k] = Quad{
				A: r2.Point{},
				B: f.midpoints[k],
				C: f.vertices[(k+1)%5],
				D: f.midpoints[(k+1)%5],
			}
		}
	}

	return out, nil
}

// toPlane is the gnomonic projection of v onto the face plane. It fails for
// vectors on or behind the plane's horizon.
func (f *face) toPlane(v r3.Vector) (r2.Point, bool) {
	t := v.Dot(f.center.Vector)
	if t <= 0 {
		return r2.Point{}, false
	}

	return r2.Point{X: v.Dot(f.east) / t, Y: v.Dot(f.north) / t}, true
}

// fromPlane maps a face-plane point back to the unit sphere.
func (f *face) fromPlane(p r2.Point) s2.Point {
	v := f.center.Add(f.east.Mul(p.X)).Add(f.north.Mul(p.Y))
	return s2.Point{Vector: v.Normalize()}
}

// quintantOf returns the quintant whose half-open sector
// [midpoints[k], midpoints[k+1]) contains p. The face centre belongs to
// quintant 0, and so does anything within centerSnap of it. A point within
// RayTolerance of a starting ray belongs to the sector that ray starts.
func (f *face) quintantOf(p r2.Point) int {
	norm := p.Norm()
	if norm < centerSnap {
		return 0
	}
	for k, m := range f.midpoints {
		if m.Dot(p) > 0 && math.Abs(m.Cross(p)) <= RayTolerance*m.Norm()*norm {
			return k
		}
	}
	for k := range QuintantCount {
		if f.midpoints[k].Cross(p) >= 0 && f.midpoints[(k+1)%5].Cross(p) < 0 {
			return k
		}
	}

	// Only reachable for points so close to the centre that the cross products
	// lose their sign; fall back to the angle.
	start := math.Atan2(f.midpoints[0].Y, f.midpoints[0].X)
	rel := math.Atan2(p.Y, p.X) - start
	for rel < 0 {
		rel += 2 * math.Pi
	}
	k := int(rel / (2 * math.Pi / QuintantCount))
	if k >= QuintantCount {
		k = QuintantCount - 1
	}

	return k
}
