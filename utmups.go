package coordconv

import (
	"fmt"
	"math"
	"strconv"
)

// tile is the side of an MGRS 100 km square, in meters. The accepted
// eastings and northings are whole multiples of it.
const tile = 100000.0

// Limits of UTM and UPS coordinates in tiles, indexed by domainIndex. The
// lower limit is included and the upper excluded. MGRS uses these limits
// as they stand; UtmUps values may extend one further tile beyond them.
var (
	minEastingTiles  = [4]int{minUPSSouthIndex, minUPSNorthIndex, minUTMCol, minUTMCol}
	maxEastingTiles  = [4]int{maxUPSSouthIndex, maxUPSNorthIndex, maxUTMCol, maxUTMCol}
	minNorthingTiles = [4]int{minUPSSouthIndex, minUPSNorthIndex, minUTMSouthRow, minUTMNorthRow - (maxUTMSouthRow - minUTMSouthRow)}
	maxNorthingTiles = [4]int{maxUPSSouthIndex, maxUPSNorthIndex, maxUTMSouthRow + (maxUTMNorthRow - minUTMNorthRow), maxUTMNorthRow}
)

var domainNames = [4]string{"UPS S", "UPS N", "UTM S", "UTM N"}

// domainIndex selects the row of the limit tables: UPS south, UPS north,
// UTM south, UTM north.
func domainIndex(utm, north bool) int {
	i := 0
	if utm {
		i += 2
	}
	if north {
		i++
	}
	return i
}

// UtmUps is a position projected into a UTM zone or onto a UPS pole.
// Eastings and northings are in meters and include the false origin.
//
// Values are built by NewUtmUps or by projecting a LatLon, so every UtmUps
// has a valid zone and hemisphere and coordinates within its domain.
type UtmUps struct {
	zone       int
	hemisphere Hemisphere
	easting    float64
	northing   float64
}

// NewUtmUps validates and returns a UTM or UPS coordinate. Zone 0 is UPS.
func NewUtmUps(zone int, hemisphere Hemisphere, easting, northing float64) (UtmUps, error) {
	if zone < ZoneUPS || zone > MaxUTMZone {
		return UtmUps{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidZone, zone, ZoneUPS, MaxUTMZone)
	}
	if !hemisphere.valid() {
		return UtmUps{}, fmt.Errorf("%w: %d", ErrInvalidHemisphere, hemisphere)
	}
	if err := checkCoords(zone != ZoneUPS, hemisphere == HemisphereNorth, easting, northing); err != nil {
		return UtmUps{}, err
	}
	return UtmUps{zone: zone, hemisphere: hemisphere, easting: easting, northing: northing}, nil
}

// checkCoords verifies that (x, y) lies in the domain of the zone type and
// hemisphere, allowing one tile of slop on every side.
func checkCoords(utm, north bool, x, y float64) error {
	const slop = tile
	ind := domainIndex(utm, north)
	minX := float64(minEastingTiles[ind])*tile - slop
	maxX := float64(maxEastingTiles[ind])*tile + slop
	if !(x >= minX && x <= maxX) {
		return fmt.Errorf("%w: easting %.2fkm not in %s range [%.0fkm, %.0fkm]",
			ErrOutOfProjectionDomain, x/1000, domainNames[ind], minX/1000, maxX/1000)
	}
	minY := float64(minNorthingTiles[ind])*tile - slop
	maxY := float64(maxNorthingTiles[ind])*tile + slop
	if !(y >= minY && y <= maxY) {
		return fmt.Errorf("%w: northing %.2fkm not in %s range [%.0fkm, %.0fkm]",
			ErrOutOfProjectionDomain, y/1000, domainNames[ind], minY/1000, maxY/1000)
	}
	return nil
}

// project converts l into zone without any check on the zone.
func project(l LatLon, zone int) (UtmUps, mapCoords) {
	h := hemisphereOf(l.lat)
	var p mapCoords
	if zone == ZoneUPS {
		p = upsForward(h == HemisphereNorth, l.lat, l.lon)
	} else {
		p = utmForward(zone, l.lat, l.lon)
	}
	return UtmUps{zone: zone, hemisphere: h, easting: p.easting, northing: p.northing}, p
}

// UtmUpsFromLatLon projects l into its standard zone.
func UtmUpsFromLatLon(l LatLon) UtmUps {
	u, _ := project(l, StandardZone(l.lat, l.lon))
	return u
}

// UtmUpsFromLatLonZone projects l into the given zone instead of its
// standard one. It fails with ErrZoneMismatch when the zone cannot
// represent the point: a UTM zone whose central meridian is more than 60
// degrees away, UPS for a latitude within 70 degrees of the equator, or a
// result outside the zone's domain.
func UtmUpsFromLatLonZone(l LatLon, zone int) (UtmUps, error) {
	switch {
	case zone < ZoneUPS || zone > MaxUTMZone:
		return UtmUps{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidZone, zone, ZoneUPS, MaxUTMZone)
	case zone == ZoneUPS:
		if !upsAllowed(l.lat) {
			return UtmUps{}, fmt.Errorf("%w: latitude %v is less than %v degrees from the equator, UPS not applicable",
				ErrZoneMismatch, l.lat, upsMinOverrideLat)
		}
	default:
		if dlon := angDiff(CentralMeridian(zone), l.lon); math.Abs(dlon) > utmMaxOverrideLon {
			return UtmUps{}, fmt.Errorf("%w: longitude %v is %v degrees from the central meridian of zone %d",
				ErrZoneMismatch, l.lon, math.Abs(dlon), zone)
		}
	}
	u, _ := project(l, zone)
	if err := checkCoords(zone != ZoneUPS, u.IsNorth(), u.easting, u.northing); err != nil {
		return UtmUps{}, fmt.Errorf("%w: zone %d: %v", ErrZoneMismatch, zone, err)
	}
	return u, nil
}

// Zone returns the zone number, 0 for UPS.
func (u UtmUps) Zone() int { return u.zone }

// Hemisphere returns the hemisphere.
func (u UtmUps) Hemisphere() Hemisphere { return u.hemisphere }

// IsNorth reports whether the coordinate is in the northern hemisphere.
func (u UtmUps) IsNorth() bool { return u.hemisphere == HemisphereNorth }

// IsUPS reports whether the coordinate is polar stereographic.
func (u UtmUps) IsUPS() bool { return u.zone == ZoneUPS }

// Easting returns the easting in meters.
func (u UtmUps) Easting() float64 { return u.easting }

// Northing returns the northing in meters.
func (u UtmUps) Northing() float64 { return u.northing }

// ZoneString returns the zone and hemisphere in the compact form used by
// ParseUtmUps, such as "18n", or "s" for the south pole.
func (u UtmUps) ZoneString() string {
	h := "s"
	if u.IsNorth() {
		h = "n"
	}
	if u.zone == ZoneUPS {
		return h
	}
	return strconv.Itoa(u.zone) + h
}

func (u UtmUps) String() string {
	return u.ZoneString() + " " +
		strconv.FormatFloat(u.easting, 'f', -1, 64) + " " +
		strconv.FormatFloat(u.northing, 'f', -1, 64)
}

// ToLatLon inverts the projection.
func (u UtmUps) ToLatLon() LatLon {
	return latLonFromGeo(u.reverse())
}

func (u UtmUps) reverse() geoCoords {
	if u.zone == ZoneUPS {
		return upsReverse(u.IsNorth(), u.easting, u.northing)
	}
	return utmReverse(u.zone, u.IsNorth(), u.easting, u.northing)
}

// ToMGRS returns the MGRS reference of the square containing u.
func (u UtmUps) ToMGRS(precision int) (MGRS, error) {
	return MGRSFromUtmUps(u, precision)
}
