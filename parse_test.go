package coordconv_test

import (
	"errors"
	"testing"

	"github.com/tzneal/coordconv/v2"
)

func TestParseLatLon(t *testing.T) {
	for _, in := range []string{
		"40.748333 -73.985278",
		"40.748333,-73.985278",
		" 40.748333 , -73.985278\n",
		"40.748333\t-73.985278",
	} {
		l, err := coordconv.ParseLatLon(in)
		if err != nil {
			t.Errorf("%q: %s", in, err)
			continue
		}
		if l.Latitude() != 40.748333 || l.Longitude() != -73.985278 {
			t.Errorf("%q: got %s", in, l)
		}
	}
}

func TestParseLatLonErrors(t *testing.T) {
	for _, tc := range []struct {
		in  string
		err error
	}{
		{"", coordconv.ErrMalformedCoordinate},
		{"40.7", coordconv.ErrMalformedCoordinate},
		{"40.7 -73.9 12", coordconv.ErrMalformedCoordinate},
		{"north -73.9", coordconv.ErrMalformedCoordinate},
		{"40.7 west", coordconv.ErrMalformedCoordinate},
		{"91 0", coordconv.ErrOutOfRange},
		{"0 inf", coordconv.ErrOutOfRange},
	} {
		if _, err := coordconv.ParseLatLon(tc.in); !errors.Is(err, tc.err) {
			t.Errorf("%q: expected %v, got %v", tc.in, tc.err, err)
		}
	}
}

func TestParseUtmUps(t *testing.T) {
	for _, tc := range []struct {
		in                string
		zone              int
		hemisphere        coordconv.Hemisphere
		easting, northing float64
	}{
		{"18n 585664.121 4511315.422", 18, coordconv.HemisphereNorth, 585664.121, 4511315.422},
		{"18N,585664.121,4511315.422", 18, coordconv.HemisphereNorth, 585664.121, 4511315.422},
		{"56s 334369 6252249", 56, coordconv.HemisphereSouth, 334369, 6252249},
		{"n 2000000 2000000", coordconv.ZoneUPS, coordconv.HemisphereNorth, 2000000, 2000000},
		{"S 2000000 2000000", coordconv.ZoneUPS, coordconv.HemisphereSouth, 2000000, 2000000},
	} {
		u, err := coordconv.ParseUtmUps(tc.in)
		if err != nil {
			t.Errorf("%q: %s", tc.in, err)
			continue
		}
		if u.Zone() != tc.zone || u.Hemisphere() != tc.hemisphere || u.Easting() != tc.easting || u.Northing() != tc.northing {
			t.Errorf("%q: got %s", tc.in, u)
		}
	}
}

func TestParseUtmUpsRoundTrip(t *testing.T) {
	for _, geo := range []coordconv.LatLon{
		mustLatLon(t, 40.748333, -73.985278),
		mustLatLon(t, -33.856784, 151.215297),
		mustLatLon(t, 89.5, 45),
		mustLatLon(t, -85, -120),
	} {
		u := geo.ToUtmUps()
		back, err := coordconv.ParseUtmUps(u.String())
		if err != nil {
			t.Fatalf("%s: %s", u, err)
		}
		if back != u {
			t.Errorf("expected %s, got %s", u, back)
		}
	}
}

func TestParseUtmUpsErrors(t *testing.T) {
	for _, tc := range []struct {
		in  string
		err error
	}{
		{"", coordconv.ErrMalformedCoordinate},
		{"18n 585664", coordconv.ErrMalformedCoordinate},
		{"18x 585664 4511315", coordconv.ErrInvalidHemisphere},
		{"18 585664 4511315", coordconv.ErrInvalidHemisphere},
		{"1a8n 585664 4511315", coordconv.ErrMalformedCoordinate},
		{"18n east 4511315", coordconv.ErrMalformedCoordinate},
		{"18n 585664 north", coordconv.ErrMalformedCoordinate},
		{"61n 585664 4511315", coordconv.ErrInvalidZone},
		{"18n 585664 9900000", coordconv.ErrOutOfProjectionDomain},
	} {
		if _, err := coordconv.ParseUtmUps(tc.in); !errors.Is(err, tc.err) {
			t.Errorf("%q: expected %v, got %v", tc.in, tc.err, err)
		}
	}
}
