package projection

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/pentagrid/coord"
	"github.com/arloliu/pentagrid/errs"
)

func TestFacesAreRegularPentagons(t *testing.T) {
	for i := range FaceCount {
		pentagon := Pentagon(i)
		radius := pentagon[0].Norm()
		edge := pentagon[1].Sub(pentagon[0]).Norm()
		for k := range 5 {
			assert.InDelta(t, radius, pentagon[k].Norm(), 1e-12, "face %d vertex %d", i, k)
			assert.InDelta(t, edge, pentagon[(k+1)%5].Sub(pentagon[k]).Norm(), 1e-12, "face %d edge %d", i, k)
			// counter-clockwise
			assert.Positive(t, pentagon[k].Cross(pentagon[(k+1)%5]))
		}
	}
}

func TestFacesShareVertices(t *testing.T) {
	var all []s2.Point
	for i := range FaceCount {
		for _, p := range Pentagon(i) {
			all = append(all, FromPlane(i, p))
		}
	}

	// 60 face corners collapse onto the 20 dodecahedron vertices.
	var distinct []s2.Point
	for _, p := range all {
		found := false
		for _, d := range distinct {
			if p.Sub(d.Vector).Norm() < 1e-12 {
				found = true
				break
			}
		}
		if !found {
			distinct = append(distinct, p)
		}
	}
	assert.Len(t, distinct, 20)
}

func TestFaceCenters(t *testing.T) {
	for i := range FaceCount {
		loc, err := InversePoint(FaceCenter(i))
		require.NoError(t, err)
		assert.Equal(t, i, loc.Face)
		assert.Equal(t, 0, loc.Quintant)
		assert.InDelta(t, 0, loc.U, 1e-12)
		assert.InDelta(t, 0, loc.V, 1e-12)
	}
}

func TestForwardInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for range 5000 {
		faceIndex := rng.Intn(FaceCount)
		quintant := rng.Intn(QuintantCount)
		u := 0.001 + 0.998*rng.Float64()
		v := 0.001 + 0.998*rng.Float64()

		ll := ForwardLonLat(faceIndex, quintant, u, v)
		loc, err := Inverse(ll)
		require.NoError(t, err)
		require.Equal(t, faceIndex, loc.Face, "u=%v v=%v", u, v)
		require.Equal(t, quintant, loc.Quintant, "u=%v v=%v", u, v)
		require.InDelta(t, u, loc.U, 1e-9)
		require.InDelta(t, v, loc.V, 1e-9)

		back := ForwardLonLat(loc.Face, loc.Quintant, loc.U, loc.V)
		require.InDelta(t, 0, angularDistanceDegrees(ll, back), 1e-9)
	}
}

func TestInverseCoversSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for range 5000 {
		ll := coord.New(rng.Float64()*360-180, math.Asin(2*rng.Float64()-1)*180/math.Pi)
		loc, err := Inverse(ll)
		require.NoError(t, err)
		require.GreaterOrEqual(t, loc.U, 0.0)
		require.LessOrEqual(t, loc.U, 1.0)
		require.GreaterOrEqual(t, loc.V, 0.0)
		require.LessOrEqual(t, loc.V, 1.0)

		back := ForwardLonLat(loc.Face, loc.Quintant, loc.U, loc.V)
		require.InDelta(t, 0, angularDistanceDegrees(ll, back), 1e-9, "point %v", ll)
	}
}

func TestInverse_Origin(t *testing.T) {
	loc, err := Inverse(coord.New(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, loc.Face)
}

func TestInverse_Poles(t *testing.T) {
	north, err := Inverse(coord.New(77, 90))
	require.NoError(t, err)
	assert.Equal(t, 0, north.Face)

	south, err := Inverse(coord.New(-77, -90))
	require.NoError(t, err)
	assert.Equal(t, 11, south.Face)
}

func TestInverse_Antimeridian(t *testing.T) {
	for _, lat := range []float64{-60, -26.5, 0, 10, 45, 80} {
		east, err := Inverse(coord.New(180, lat))
		require.NoError(t, err)
		west, err := Inverse(coord.New(-180, lat))
		require.NoError(t, err)
		assert.Equal(t, east, west, "lat %v", lat)
	}
}

func TestInverse_InvalidPoint(t *testing.T) {
	_, err := Inverse(coord.New(math.NaN(), 0))
	require.ErrorIs(t, err, errs.ErrInvalidPoint)

	_, err = Inverse(coord.New(0, 95))
	require.ErrorIs(t, err, errs.ErrInvalidPoint)
}

func TestNearestFace_VertexTieGoesToLowestFace(t *testing.T) {
	// Faces 0, 1 and 2 meet at one dodecahedron vertex.
	v := FaceCenter(0).Add(FaceCenter(1).Vector).Add(FaceCenter(2).Vector).Normalize()
	assert.Equal(t, 0, NearestFace(s2.Point{Vector: v}))

	// Faces 6, 7 and 2 meet at another.
	v = FaceCenter(6).Add(FaceCenter(7).Vector).Add(FaceCenter(2).Vector).Normalize()
	assert.Equal(t, 2, NearestFace(s2.Point{Vector: v}))
}

func TestNearestFace_EdgeTieGoesToLowestFace(t *testing.T) {
	mid := FaceCenter(3).Add(FaceCenter(4).Vector).Normalize()
	assert.Equal(t, 3, NearestFace(s2.Point{Vector: mid}))

	mid = FaceCenter(9).Add(FaceCenter(4).Vector).Normalize()
	assert.Equal(t, 4, NearestFace(s2.Point{Vector: mid}))
}

func TestQuintantOf_HalfOpenSectors(t *testing.T) {
	f := &faces[1]
	for k := range QuintantCount {
		// A point on the starting ray belongs to the sector it starts.
		assert.Equal(t, k, f.quintantOf(f.midpoints[k].Mul(0.5)), "ray %d", k)
		// The vertex direction lies strictly inside its sector.
		assert.Equal(t, k, f.quintantOf(f.vertices[(k+1)%5].Mul(0.25)), "vertex %d", k)
	}
	assert.Equal(t, 0, f.quintantOf(r2.Point{}))
}

func TestQuintantOf_RayTolerance(t *testing.T) {
	f := &faces[4]
	for k := range QuintantCount {
		on := f.midpoints[k].Mul(0.5)
		ccw := f.midpoints[k].Ortho().Normalize()

		assert.Equal(t, k, f.quintantOf(on.Add(ccw.Mul(1e-15))), "ray %d ccw noise", k)
		assert.Equal(t, k, f.quintantOf(on.Sub(ccw.Mul(1e-15))), "ray %d cw noise", k)
		assert.Equal(t, (k+QuintantCount-1)%QuintantCount, f.quintantOf(on.Sub(ccw.Mul(1e-9))), "ray %d cw offset", k)
	}
}

func TestInverse_QuintantStartRayFromLonLat(t *testing.T) {
	for i := range FaceCount {
		for k := range QuintantCount {
			for _, s := range []float64{0.2, 0.5, 0.75} {
				loc, err := Inverse(ForwardLonLat(i, k, s, 0))
				require.NoError(t, err)
				require.Equal(t, i, loc.Face)
				require.Equal(t, k, loc.Quintant, "face %d ray %d s=%v", i, k, s)
				require.InDelta(t, s, loc.U, 1e-12)
				require.InDelta(t, 0, loc.V, 1e-12)
			}
		}
	}
}

func TestQuadInverse(t *testing.T) {
	quads := []Quad{
		{A: r2.Point{}, B: r2.Point{X: 1}, C: r2.Point{X: 1, Y: 1}, D: r2.Point{Y: 1}},
		{A: r2.Point{X: -1, Y: -0.5}, B: r2.Point{X: 2, Y: -1}, C: r2.Point{X: 1.5, Y: 2}, D: r2.Point{X: -0.5, Y: 1}},
		faces[5].quintants[3],
	}
	rng := rand.New(rand.NewSource(3))
	for qi, q := range quads {
		for range 500 {
			u, v := rng.Float64(), rng.Float64()
			gu, gv := q.Inverse(q.At(u, v))
			require.InDelta(t, u, gu, 1e-12, "quad %d", qi)
			require.InDelta(t, v, gv, 1e-12, "quad %d", qi)
		}
	}
}

func TestAdjacentQuintantsShareEdges(t *testing.T) {
	for i := range FaceCount {
		for k := range QuintantCount {
			next := (k + 1) % QuintantCount
			for _, s := range []float64{0, 0.25, 0.5, 1} {
				a := Forward(i, k, 0, s)
				b := Forward(i, next, s, 0)
				assert.InDelta(t, 0, a.Sub(b.Vector).Norm(), 1e-15)
			}
		}
	}
}

func angularDistanceDegrees(a, b coord.LonLat) float64 {
	return a.ToPoint().Distance(b.ToPoint()).Degrees()
}

func BenchmarkInverse(b *testing.B) {
	ll := coord.New(12.5, 41.9)
	for b.Loop() {
		_, _ = Inverse(ll)
	}
}

func BenchmarkForward(b *testing.B) {
	for b.Loop() {
		_ = Forward(3, 2, 0.3, 0.7)
	}
}
