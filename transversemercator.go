package coordconv

import (
	"math"
	"math/cmplx"
)

// maxPow is the order of the Krüger series.
const maxPow = 6

// b1Coeff holds the polynomial in n^2 for b1*(1+n), followed by its divisor.
var b1Coeff = [...]float64{1, 4, 64, 256, 256}

// alpCoeff holds the polynomials in n for the forward series coefficients
// alpha_1..alpha_6. Each polynomial is followed by its divisor.
var alpCoeff = [...]float64{
	31564, -66675, 34440, 47250, -100800, 75600, 151200,
	-1983433, 863232, 748608, -1161216, 524160, 1935360,
	670412, 406647, -533952, 184464, 725760,
	6601661, -7732800, 2230245, 7257600,
	-13675556, 3438171, 7983360,
	212378941, 319334400,
}

// betCoeff is the reverse series counterpart of alpCoeff.
var betCoeff = [...]float64{
	384796, -382725, -6720, 932400, -1612800, 1209600, 2419200,
	-1118711, 1695744, -1174656, 258048, 80640, 3870720,
	22276, -16929, -15984, 12852, 362880,
	-830251, -158400, 197865, 7257600,
	-435388, 453717, 15966720,
	20648693, 638668800,
}

// transverseMercator is an ellipsoidal transverse Mercator projection with
// the central meridian left as a per call parameter. Coordinates are
// relative to the intersection of the central meridian and the equator;
// false origins are applied by the caller.
//
// It is immutable after construction and safe for concurrent use.
type transverseMercator struct {
	a, f, k0 float64

	e2  float64 // eccentricity squared
	es  float64 // eccentricity
	e2m float64 // 1 - e2
	c   float64 // scale at the pole for the unit sphere
	n   float64 // third flattening

	a1, b1   float64 // rectifying radius and its normalized form
	alp, bet [maxPow + 1]float64
}

// mapCoords is the result of a forward projection: planar coordinates in
// meters, meridian convergence in degrees and point scale.
type mapCoords struct {
	easting, northing float64
	gamma, k          float64
}

// geoCoords is the result of a reverse projection.
type geoCoords struct {
	lat, lon float64
	gamma, k float64
}

func newTransverseMercator(a, f, k0 float64) (*transverseMercator, error) {
	if err := checkEllipsoid(a, f, k0); err != nil {
		return nil, err
	}
	t := &transverseMercator{a: a, f: f, k0: k0}
	t.e2 = f * (2 - f)
	t.es = math.Sqrt(t.e2)
	t.e2m = 1 - t.e2
	t.c = math.Sqrt(t.e2m) * math.Exp(eatanhe(1, t.es))
	t.n = f / (2 - f)

	const m = maxPow / 2
	t.b1 = polyval(b1Coeff[:m+1], t.n*t.n) / (b1Coeff[m+1] * (1 + t.n))
	t.a1 = t.b1 * a

	o := 0
	d := t.n
	for l := 1; l <= maxPow; l++ {
		order := maxPow - l
		t.alp[l] = d * polyval(alpCoeff[o:o+order+1], t.n) / alpCoeff[o+order+1]
		t.bet[l] = d * polyval(betCoeff[o:o+order+1], t.n) / betCoeff[o+order+1]
		o += order + 2
		d *= t.n
	}
	return t, nil
}

// clenshaw sums the series with coefficients coeff (sign applied to each)
// for the complex argument 2*zeta, returning the series value and its
// derivative factor.
func (t *transverseMercator) clenshaw(coeff *[maxPow + 1]float64, sign, xi, eta float64) (y, z complex128) {
	c0, ch0 := math.Cos(2*xi), math.Cosh(2*eta)
	s0, sh0 := math.Sin(2*xi), math.Sinh(2*eta)
	a := complex(2*c0*ch0, -2*s0*sh0)

	term := func(n int) (complex128, complex128) {
		return complex(sign*coeff[n], 0), complex(sign*2*float64(n)*coeff[n], 0)
	}
	var y0, y1, z0, z1 complex128
	n := maxPow
	if n&1 == 1 {
		y0, z0 = term(n)
		n--
	}
	for n > 0 {
		ty, tz := term(n)
		y1 = a*y0 - y1 + ty
		z1 = a*z0 - z1 + tz
		n--
		ty, tz = term(n)
		y0 = a*y1 - y0 + ty
		z0 = a*z1 - z0 + tz
		n--
	}
	a /= 2
	z1 = 1 - z1 + a*z0
	a = complex(s0*ch0, c0*sh0)
	y1 = complex(xi, eta) + a*y0
	return y1, z1
}

// forward projects (lat, lon) onto the transverse Mercator with central
// meridian lon0. Points more than 90 degrees from lon0 are mapped onto the
// back side of the projection.
func (t *transverseMercator) forward(lon0, lat, lon float64) mapCoords {
	lon = angDiff(lon0, lon)
	latsign, lonsign := 1.0, 1.0
	if math.Signbit(lat) {
		latsign = -1
	}
	if math.Signbit(lon) {
		lonsign = -1
	}
	lat *= latsign
	lon *= lonsign
	backside := lon > quarterTurn
	if backside {
		if lat == 0 {
			latsign = -1
		}
		lon = halfTurn - lon
	}

	sphi, cphi := sincosd(lat)
	slam, clam := sincosd(lon)
	var etap, xip, gamma, k float64
	if lat != quarterTurn {
		tau := sphi / cphi
		taup := taupf(tau, t.es)
		xip = math.Atan2(taup, clam)
		etap = math.Asinh(slam / math.Hypot(taup, clam))
		gamma = atan2d(slam*taup, clam*math.Hypot(1, taup))
		k = math.Sqrt(t.e2m+t.e2*cphi*cphi) * math.Hypot(1, tau) / math.Hypot(taup, clam)
	} else {
		xip = math.Pi / 2
		gamma = lon
		k = t.c
	}

	y, z := t.clenshaw(&t.alp, 1, xip, etap)
	gamma -= atan2d(imag(z), real(z))
	k *= t.b1 * cmplx.Abs(z)

	xi, eta := real(y), imag(y)
	if backside {
		xi = math.Pi - xi
		gamma = halfTurn - gamma
	}
	gamma = angNormalize(gamma * latsign * lonsign)
	return mapCoords{
		easting:  t.a1 * t.k0 * eta * lonsign,
		northing: t.a1 * t.k0 * xi * latsign,
		gamma:    gamma,
		k:        k * t.k0,
	}
}

// reverse is the inverse of forward.
func (t *transverseMercator) reverse(lon0, x, y float64) geoCoords {
	xi := y / (t.a1 * t.k0)
	eta := x / (t.a1 * t.k0)
	xisign, etasign := 1.0, 1.0
	if math.Signbit(xi) {
		xisign = -1
	}
	if math.Signbit(eta) {
		etasign = -1
	}
	xi *= xisign
	eta *= etasign
	backside := xi > math.Pi/2
	if backside {
		xi = math.Pi - xi
	}

	yy, z := t.clenshaw(&t.bet, -1, xi, eta)
	gamma := atan2d(imag(z), real(z))
	k := t.b1 / cmplx.Abs(z)

	xip, etap := real(yy), imag(yy)
	s := math.Sinh(etap)
	c := math.Max(0, math.Cos(xip))
	r := math.Hypot(s, c)
	var lat, lon float64
	if r != 0 {
		lon = atan2d(s, c)
		sxip := math.Sin(xip)
		tau := tauf(sxip/r, t.es)
		gamma += atan2d(sxip*math.Tanh(etap), c)
		lat = atand(tau)
		k *= math.Sqrt(t.e2m+t.e2/(1+tau*tau)) * math.Hypot(1, tau) * r
	} else {
		lat = quarterTurn
		k *= t.c
	}

	lat *= xisign
	if backside {
		lon = halfTurn - lon
		gamma = halfTurn - gamma
	}
	lon *= etasign
	return geoCoords{
		lat:   lat,
		lon:   angNormalize(lon + lon0),
		gamma: angNormalize(gamma * xisign * etasign),
		k:     k * t.k0,
	}
}
