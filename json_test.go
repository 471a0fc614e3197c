package coordconv_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tzneal/coordconv/v2"
)

func TestLatLonJSON(t *testing.T) {
	l := mustLatLon(t, 40.748333, -73.985278)
	buf, err := json.Marshal(l)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(buf); got != `{"latitude":40.748333,"longitude":-73.985278}` {
		t.Errorf("unexpected encoding %s", got)
	}
	var back coordconv.LatLon
	if err := json.Unmarshal(buf, &back); err != nil {
		t.Fatal(err)
	}
	if back != l {
		t.Errorf("expected %s, got %s", l, back)
	}

	var short coordconv.LatLon
	if err := json.Unmarshal([]byte(`{"lat":-33.5,"lon":190}`), &short); err != nil {
		t.Fatal(err)
	}
	if short.Latitude() != -33.5 || short.Longitude() != -170 {
		t.Errorf("short form decoded to %s", short)
	}
}

func TestLatLonJSONErrors(t *testing.T) {
	for _, tc := range []struct {
		in  string
		err error
	}{
		{`{"latitude":91,"longitude":0}`, coordconv.ErrOutOfRange},
		{`{"longitude":0}`, coordconv.ErrOutOfRange},
		{`{"lat":0}`, coordconv.ErrOutOfRange},
		{`{}`, coordconv.ErrOutOfRange},
	} {
		var l coordconv.LatLon
		if err := json.Unmarshal([]byte(tc.in), &l); !errors.Is(err, tc.err) {
			t.Errorf("%s: expected %v, got %v", tc.in, tc.err, err)
		}
	}
	var l coordconv.LatLon
	if err := json.Unmarshal([]byte(`{"latitude":"north"}`), &l); err == nil {
		t.Errorf("expected an error for a string latitude")
	}
}

func TestUtmUpsJSON(t *testing.T) {
	u, err := coordconv.NewUtmUps(18, coordconv.HemisphereNorth, 585664.121, 4511315.422)
	if err != nil {
		t.Fatal(err)
	}
	buf, err := json.Marshal(u)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(buf); got != `{"zone":18,"north":true,"easting":585664.121,"northing":4511315.422}` {
		t.Errorf("unexpected encoding %s", got)
	}
	var back coordconv.UtmUps
	if err := json.Unmarshal(buf, &back); err != nil {
		t.Fatal(err)
	}
	if back != u {
		t.Errorf("expected %s, got %s", u, back)
	}
}

func TestUtmUpsJSONErrors(t *testing.T) {
	for _, tc := range []struct {
		in  string
		err error
	}{
		{`{"north":true,"easting":500000,"northing":0}`, coordconv.ErrInvalidZone},
		{`{"zone":61,"north":true,"easting":500000,"northing":0}`, coordconv.ErrInvalidZone},
		{`{"zone":18,"easting":500000,"northing":0}`, coordconv.ErrInvalidHemisphere},
		{`{"zone":18,"north":true,"northing":0}`, coordconv.ErrOutOfProjectionDomain},
		{`{"zone":18,"north":true,"easting":500000}`, coordconv.ErrOutOfProjectionDomain},
		{`{"zone":18,"north":false,"easting":500000,"northing":0}`, coordconv.ErrOutOfProjectionDomain},
	} {
		var u coordconv.UtmUps
		if err := json.Unmarshal([]byte(tc.in), &u); !errors.Is(err, tc.err) {
			t.Errorf("%s: expected %v, got %v", tc.in, tc.err, err)
		}
	}
}

func TestMGRSJSON(t *testing.T) {
	type waypoint struct {
		Name string         `json:"name"`
		Grid coordconv.MGRS `json:"grid"`
	}
	in := waypoint{Name: "esb", Grid: mustMGRS(t, "18TWL8566411315")}
	buf, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(buf); got != `{"name":"esb","grid":"18TWL8566411315"}` {
		t.Errorf("unexpected encoding %s", got)
	}
	var out waypoint
	if err := json.Unmarshal(buf, &out); err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("expected %+v, got %+v", in, out)
	}
	if err := json.Unmarshal([]byte(`{"grid":"18TIL"}`), &out); !errors.Is(err, coordconv.ErrMalformedMGRS) {
		t.Errorf("expected ErrMalformedMGRS, got %v", err)
	}
}
