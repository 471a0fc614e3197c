package coordconv

import "math"

// polarStereographic is an ellipsoidal polar stereographic projection
// centered on either pole. Coordinates are relative to the pole; the UPS
// false origin is applied by the caller.
type polarStereographic struct {
	a, f, k0 float64
	e2, es   float64
	e2m      float64
	c        float64 // (1-f) * exp(e*atanh(e))
}

func newPolarStereographic(a, f, k0 float64) (*polarStereographic, error) {
	if err := checkEllipsoid(a, f, k0); err != nil {
		return nil, err
	}
	p := &polarStereographic{a: a, f: f, k0: k0}
	p.e2 = f * (2 - f)
	p.es = math.Sqrt(p.e2)
	p.e2m = 1 - p.e2
	p.c = (1 - f) * math.Exp(eatanhe(1, p.es))
	return p, nil
}

// scale returns the point scale at distance rho from the pole for a point
// whose latitude has tangent tau.
func (p *polarStereographic) scale(rho, tau float64) float64 {
	secphi := math.Hypot(1, tau)
	return rho / p.a * secphi * math.Sqrt(p.e2m+p.e2/(secphi*secphi))
}

// forward projects (lat, lon) onto the plane tangent at the north pole if
// north is set, otherwise the south pole.
func (p *polarStereographic) forward(north bool, lat, lon float64) mapCoords {
	if !north {
		lat = -lat
	}
	tau := tand(lat)
	taup := taupf(tau, p.es)
	rho := math.Hypot(1, taup) + math.Abs(taup)
	if taup >= 0 {
		if lat != quarterTurn {
			rho = 1 / rho
		} else {
			rho = 0
		}
	}
	rho *= 2 * p.k0 * p.a / p.c

	k := p.k0
	if lat != quarterTurn {
		k = p.scale(rho, tau)
	}
	x, y := sincosd(lon)
	x *= rho
	if north {
		y *= -rho
	} else {
		y *= rho
	}
	gamma := lon
	if !north {
		gamma = -lon
	}
	return mapCoords{easting: x, northing: y, gamma: angNormalize(gamma), k: k}
}

func (p *polarStereographic) reverse(north bool, x, y float64) geoCoords {
	rho := math.Hypot(x, y)
	t := epsilon * epsilon
	if rho != 0 {
		t = rho / (2 * p.k0 * p.a / p.c)
	}
	taup := (1/t - t) / 2
	tau := tauf(taup, p.es)

	k := p.k0
	if rho != 0 {
		k = p.scale(rho, tau)
	}
	lat := atand(tau)
	if !north {
		lat = -lat
		y = -y
	}
	lon := atan2d(x, -y)
	gamma := lon
	if !north {
		gamma = -lon
	}
	return geoCoords{lat: lat, lon: lon, gamma: angNormalize(gamma), k: k}
}
