package coordconv

import "math"

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	}
	return "invalid"
}

func (h Hemisphere) valid() bool {
	return h == HemisphereNorth || h == HemisphereSouth
}

// hemisphereOf returns the hemisphere a latitude lies in. The equator and
// negative zero belong to the north.
func hemisphereOf(lat float64) Hemisphere {
	if lat < 0 {
		return HemisphereSouth
	}
	return HemisphereNorth
}

// UPS false origin, identical for both poles.
const (
	upsFalseEasting  = 2000000.0
	upsFalseNorthing = 2000000.0
)

// upsMinOverrideLat is the smallest absolute latitude for which a caller may
// force a point into UPS.
const upsMinOverrideLat = 70.0

func upsForward(north bool, lat, lon float64) mapCoords {
	p := upsProjection.forward(north, lat, lon)
	p.easting += upsFalseEasting
	p.northing += upsFalseNorthing
	return p
}

func upsReverse(north bool, easting, northing float64) geoCoords {
	return upsProjection.reverse(north, easting-upsFalseEasting, northing-upsFalseNorthing)
}

// upsAllowed reports whether a point at lat may be placed in UPS by an
// explicit zone override.
func upsAllowed(lat float64) bool {
	return math.Abs(lat) >= upsMinOverrideLat
}
