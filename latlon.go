package coordconv

import (
	"fmt"
	"math"
	"strconv"

	"github.com/golang/geo/s2"
)

// LatLon is a geodetic position on the WGS84 ellipsoid in degrees. The
// latitude lies in [-90, 90] and the longitude in (-180, 180].
//
// The zero value is the intersection of the equator and the prime
// meridian.
type LatLon struct {
	lat, lon float64
}

// NewLatLon returns the position at lat, lon degrees. The longitude is
// normalized into (-180, 180]; a latitude outside [-90, 90], a NaN, or an
// infinite longitude results in an error wrapping ErrOutOfRange.
func NewLatLon(lat, lon float64) (LatLon, error) {
	if !(lat >= -90 && lat <= 90) {
		return LatLon{}, fmt.Errorf("%w: latitude %v not in [-90, 90]", ErrOutOfRange, lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return LatLon{}, fmt.Errorf("%w: longitude %v is not finite", ErrOutOfRange, lon)
	}
	return LatLon{lat: lat, lon: normalizeLongitude(lon)}, nil
}

// LatLonFromLatLng converts an s2.LatLng to a LatLon.
func LatLonFromLatLng(ll s2.LatLng) (LatLon, error) {
	return NewLatLon(ll.Lat.Degrees(), ll.Lng.Degrees())
}

// normalizeLongitude reduces lon into (-180, 180]. The remainder is exact,
// so longitudes already in range are returned unchanged.
func normalizeLongitude(lon float64) float64 {
	lon = math.Remainder(lon, fullTurn)
	if lon <= -halfTurn {
		lon += fullTurn
	}
	return lon
}

// latLonFromGeo builds a LatLon from the output of a reverse projection,
// which is already in range apart from rounding.
func latLonFromGeo(g geoCoords) LatLon {
	return LatLon{
		lat: math.Max(-quarterTurn, math.Min(quarterTurn, g.lat)),
		lon: normalizeLongitude(g.lon),
	}
}

// Latitude returns the latitude in degrees.
func (l LatLon) Latitude() float64 { return l.lat }

// Longitude returns the longitude in degrees.
func (l LatLon) Longitude() float64 { return l.lon }

// IsNorth reports whether the position is in the northern hemisphere. The
// equator counts as north.
func (l LatLon) IsNorth() bool { return l.lat >= 0 }

// LatLng returns the position as an s2.LatLng.
func (l LatLon) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(l.lat, l.lon)
}

func (l LatLon) String() string {
	return strconv.FormatFloat(l.lat, 'f', -1, 64) + " " + strconv.FormatFloat(l.lon, 'f', -1, 64)
}

// ToUtmUps projects the position into its standard zone.
func (l LatLon) ToUtmUps() UtmUps {
	return UtmUpsFromLatLon(l)
}

// ToUtmUpsZone projects the position into the given zone.
func (l LatLon) ToUtmUpsZone(zone int) (UtmUps, error) {
	return UtmUpsFromLatLonZone(l, zone)
}

// ToMGRS returns the MGRS reference of the square containing the position
// at the given precision.
func (l LatLon) ToMGRS(precision int) (MGRS, error) {
	return MGRSFromLatLon(l, precision)
}
