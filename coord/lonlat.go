// Package coord holds the geographic value types shared by the projection,
// boundary and locator code.
//
// Coordinates are longitude/latitude pairs in degrees on a spherical Earth.
// Conversion to and from unit vectors goes through github.com/golang/geo/s2,
// which is also what the projection code uses for its vector maths.
package coord

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"

	"github.com/arloliu/pentagrid/errs"
)

// LonLat is a geographic point in degrees. Longitude comes first, matching the
// "<lon>,<lat>" textual form and GeoJSON axis order.
type LonLat struct {
	Lon float64
	Lat float64
}

// New returns the point (lon, lat).
func New(lon, lat float64) LonLat {
	return LonLat{Lon: lon, Lat: lat}
}

// Validate reports whether p can be located on the sphere. NaN and infinite
// values fail, as do latitudes outside [-90, 90]. Any finite longitude is
// accepted; Normalize wraps it.
func (p LonLat) Validate() error {
	if math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
		return fmt.Errorf("%w: longitude %v is not finite", errs.ErrInvalidPoint, p.Lon)
	}
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) {
		return fmt.Errorf("%w: latitude %v is not finite", errs.ErrInvalidPoint, p.Lat)
	}
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", errs.ErrInvalidPoint, p.Lat)
	}

	return nil
}

// Normalize returns the canonical form of p: longitude wrapped into
// (-180, 180], and longitude 0 at either pole. Two inputs naming the same
// place on the sphere normalize to identical values, which keeps point
// location independent of how the caller wrote the antimeridian.
func (p LonLat) Normalize() LonLat {
	if p.Lat == 90 || p.Lat == -90 {
		return LonLat{Lon: 0, Lat: p.Lat}
	}

	return LonLat{Lon: WrapLongitude(p.Lon), Lat: p.Lat}
}

// WrapLongitude maps any finite longitude into (-180, 180].
func WrapLongitude(lon float64) float64 {
	if lon > -180 && lon <= 180 {
		return lon
	}
	lon = math.Mod(lon, 360)
	switch {
	case lon <= -180:
		lon += 360
	case lon > 180:
		lon -= 360
	}

	return lon
}

// ToPoint converts p to a unit vector.
func (p LonLat) ToPoint() s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon))
}

// FromPoint converts a (not necessarily unit) vector to longitude/latitude.
func FromPoint(pt s2.Point) LonLat {
	ll := s2.LatLngFromPoint(pt)
	return LonLat{Lon: ll.Lng.Degrees(), Lat: ll.Lat.Degrees()}
}

// String formats p as "<lon>,<lat>".
func (p LonLat) String() string {
	return fmt.Sprintf("%g,%g", p.Lon, p.Lat)
}
