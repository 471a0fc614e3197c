package coordconv

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func parseFloatField(name, field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrMalformedCoordinate, name, field)
	}
	return v, nil
}

// ParseLatLon parses a latitude and longitude in decimal degrees separated
// by a comma or white space, as in "40.748333 -73.985278".
func ParseLatLon(s string) (LatLon, error) {
	fields := splitFields(s)
	if len(fields) != 2 {
		return LatLon{}, fmt.Errorf("%w: %q: want latitude and longitude", ErrMalformedCoordinate, s)
	}
	lat, err := parseFloatField("latitude", fields[0])
	if err != nil {
		return LatLon{}, err
	}
	lon, err := parseFloatField("longitude", fields[1])
	if err != nil {
		return LatLon{}, err
	}
	return NewLatLon(lat, lon)
}

// ParseUtmUps parses the form written by UtmUps.String: a zone token, an
// easting and a northing. The zone token is the zone number followed by n
// or s, or n or s alone for UPS.
func ParseUtmUps(s string) (UtmUps, error) {
	fields := splitFields(s)
	if len(fields) != 3 {
		return UtmUps{}, fmt.Errorf("%w: %q: want zone, easting and northing", ErrMalformedCoordinate, s)
	}
	zone, h, err := parseZone(fields[0])
	if err != nil {
		return UtmUps{}, err
	}
	easting, err := parseFloatField("easting", fields[1])
	if err != nil {
		return UtmUps{}, err
	}
	northing, err := parseFloatField("northing", fields[2])
	if err != nil {
		return UtmUps{}, err
	}
	return NewUtmUps(zone, h, easting, northing)
}

func parseZone(s string) (int, Hemisphere, error) {
	t := strings.ToLower(s)
	var h Hemisphere
	switch {
	case strings.HasSuffix(t, "n"):
		h = HemisphereNorth
	case strings.HasSuffix(t, "s"):
		h = HemisphereSouth
	default:
		return 0, HemisphereInvalid, fmt.Errorf("%w: zone %q does not end in n or s", ErrInvalidHemisphere, s)
	}
	digits := t[:len(t)-1]
	if digits == "" {
		return ZoneUPS, h, nil
	}
	zone, err := strconv.Atoi(digits)
	if err != nil {
		return 0, HemisphereInvalid, fmt.Errorf("%w: zone %q", ErrMalformedCoordinate, s)
	}
	return zone, h, nil
}
