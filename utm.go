package coordconv

import "math"

// Zone numbers. Zone 0 denotes UPS; 1 through 60 are UTM zones.
const (
	ZoneUPS    = 0
	MinUTMZone = 1
	MaxUTMZone = 60
)

// UTM is used in the standard zone assignment for latitudes in
// [utmMinLat, utmMaxLat).
const (
	utmMinLat = -80.0
	utmMaxLat = 84.0
)

// UTM false origin. The southern false northing applies to the southern
// hemisphere only.
const (
	utmFalseEasting       = 500000.0
	utmSouthFalseNorthing = 10000000.0
)

// utmMaxOverrideLon is the furthest a point may be from the central meridian
// of a zone named by an explicit override.
const utmMaxOverrideLon = 60.0

// zoneException is a departure from the regular 6 degree zones. Longitudes
// are whole degrees, with maxLon excluded.
type zoneException struct {
	band           int
	minLon, maxLon int
	zone           int
}

// zoneExceptions widens zone 32V over southern Norway and replaces zones
// 32X, 34X and 36X over Svalbard.
var zoneExceptions = [...]zoneException{
	{band: 7, minLon: 3, maxLon: 12, zone: 32},  // V
	{band: 9, minLon: 0, maxLon: 9, zone: 31},   // X
	{band: 9, minLon: 9, maxLon: 21, zone: 33},  // X
	{band: 9, minLon: 21, maxLon: 33, zone: 35}, // X
	{band: 9, minLon: 33, maxLon: 42, zone: 37}, // X
}

// StandardZone returns the zone a point belongs to under the standard
// assignment: ZoneUPS for latitudes below -80 or at or above 84, otherwise
// the UTM zone with the Norway and Svalbard exceptions applied.
func StandardZone(lat, lon float64) int {
	if !(lat >= utmMinLat && lat < utmMaxLat) {
		return ZoneUPS
	}
	ilon := int(math.Floor(angNormalize(lon)))
	if ilon == 180 {
		ilon = -180
	}
	band := latitudeBand(lat)
	for _, e := range zoneExceptions {
		if e.band == band && ilon >= e.minLon && ilon < e.maxLon {
			return e.zone
		}
	}
	return (ilon + 186) / 6
}

// latitudeBand returns the index of the 8 degree MGRS latitude band
// containing lat, from -10 (band C) to 9 (band X). Band X spans 12 degrees.
func latitudeBand(lat float64) int {
	ilat := int(math.Floor(lat))
	band := (ilat+80)/8 - 10
	if band < -10 {
		band = -10
	}
	if band > 9 {
		band = 9
	}
	return band
}

// CentralMeridian returns the central meridian, in degrees, of a UTM zone.
func CentralMeridian(zone int) float64 {
	return float64(6*zone - 183)
}

func utmForward(zone int, lat, lon float64) mapCoords {
	p := utmProjection.forward(CentralMeridian(zone), lat, lon)
	p.easting += utmFalseEasting
	if lat < 0 {
		p.northing += utmSouthFalseNorthing
	}
	return p
}

func utmReverse(zone int, north bool, easting, northing float64) geoCoords {
	y := northing
	if !north {
		y -= utmSouthFalseNorthing
	}
	return utmProjection.reverse(CentralMeridian(zone), easting-utmFalseEasting, y)
}
