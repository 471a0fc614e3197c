package coordconv

import (
	"encoding/json"
	"fmt"
)

type latLonJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MarshalJSON encodes l as {"latitude":..., "longitude":...}.
func (l LatLon) MarshalJSON() ([]byte, error) {
	return json.Marshal(latLonJSON{Latitude: l.lat, Longitude: l.lon})
}

// UnmarshalJSON decodes an object with "latitude" and "longitude" members,
// or the short forms "lat" and "lon", and validates it like NewLatLon.
func (l *LatLon) UnmarshalJSON(data []byte) error {
	var v struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Lat       *float64 `json:"lat"`
		Lon       *float64 `json:"lon"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	lat, lon := firstSet(v.Latitude, v.Lat), firstSet(v.Longitude, v.Lon)
	if lat == nil {
		return fmt.Errorf("%w: missing latitude", ErrOutOfRange)
	}
	if lon == nil {
		return fmt.Errorf("%w: missing longitude", ErrOutOfRange)
	}
	ll, err := NewLatLon(*lat, *lon)
	if err != nil {
		return err
	}
	*l = ll
	return nil
}

func firstSet(vs ...*float64) *float64 {
	for _, v := range vs {
		if v != nil {
			return v
		}
	}
	return nil
}

type utmUpsJSON struct {
	Zone     int     `json:"zone"`
	North    bool    `json:"north"`
	Easting  float64 `json:"easting"`
	Northing float64 `json:"northing"`
}

// MarshalJSON encodes u as {"zone":..., "north":..., "easting":...,
// "northing":...}. Zone 0 is UPS.
func (u UtmUps) MarshalJSON() ([]byte, error) {
	return json.Marshal(utmUpsJSON{
		Zone:     u.zone,
		North:    u.IsNorth(),
		Easting:  u.easting,
		Northing: u.northing,
	})
}

// UnmarshalJSON decodes the form written by MarshalJSON and validates it
// like NewUtmUps. All four members are required.
func (u *UtmUps) UnmarshalJSON(data []byte) error {
	var v struct {
		Zone     *int     `json:"zone"`
		North    *bool    `json:"north"`
		Easting  *float64 `json:"easting"`
		Northing *float64 `json:"northing"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case v.Zone == nil:
		return fmt.Errorf("%w: missing zone", ErrInvalidZone)
	case v.North == nil:
		return fmt.Errorf("%w: missing north", ErrInvalidHemisphere)
	case v.Easting == nil:
		return fmt.Errorf("%w: missing easting", ErrOutOfProjectionDomain)
	case v.Northing == nil:
		return fmt.Errorf("%w: missing northing", ErrOutOfProjectionDomain)
	}
	h := HemisphereSouth
	if *v.North {
		h = HemisphereNorth
	}
	uu, err := NewUtmUps(*v.Zone, h, *v.Easting, *v.Northing)
	if err != nil {
		return err
	}
	*u = uu
	return nil
}
