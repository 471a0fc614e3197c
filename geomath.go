package coordconv

import "math"

const (
	degree      = math.Pi / 180
	quarterTurn = 90.0
	halfTurn    = 180.0
	fullTurn    = 360.0

	// epsilon is the difference between 1 and the next float64.
	epsilon = 0x1p-52
)

// sincosd returns the sine and cosine of x degrees, reducing the argument
// exactly so that multiples of 90 give exact results.
func sincosd(x float64) (sinx, cosx float64) {
	r := math.Mod(x, fullTurn)
	q := math.Round(r / quarterTurn)
	r -= quarterTurn * q
	s, c := math.Sincos(r * degree)
	switch uint(int(q)) & 3 {
	case 0:
		sinx, cosx = s, c
	case 1:
		sinx, cosx = c, -s
	case 2:
		sinx, cosx = -s, -c
	default:
		sinx, cosx = -c, s
	}
	return sinx, cosx
}

// tand returns the tangent of x degrees. At ±90 it returns a large finite
// value rather than infinity.
func tand(x float64) float64 {
	const overflow = 1 / (epsilon * epsilon)
	s, c := sincosd(x)
	if c != 0 {
		return s / c
	}
	if s < 0 {
		return -overflow
	}
	return overflow
}

// atan2d returns atan2(y, x) in degrees, in the range [-180, 180].
func atan2d(y, x float64) float64 {
	q := 0
	if math.Abs(y) > math.Abs(x) {
		x, y = y, x
		q = 2
	}
	if math.Signbit(x) {
		x = -x
		q++
	}
	ang := math.Atan2(y, x) / degree
	switch q {
	case 1:
		ang = math.Copysign(halfTurn, y) - ang
	case 2:
		ang = quarterTurn - ang
	case 3:
		ang = -quarterTurn + ang
	}
	return ang
}

func atand(x float64) float64 {
	return atan2d(x, 1)
}

// angNormalize reduces x to [-180, 180]; -180 is kept only for inputs
// that were negative.
func angNormalize(x float64) float64 {
	y := math.Remainder(x, fullTurn)
	if math.Abs(y) == halfTurn {
		return math.Copysign(halfTurn, x)
	}
	return y
}

// twoSum returns s = u+v and the rounding error t such that s+t == u+v
// exactly.
func twoSum(u, v float64) (s, t float64) {
	s = u + v
	up := s - v
	vpp := s - up
	up -= u
	vpp -= v
	t = -(up + vpp)
	return s, t
}

// angDiff returns y - x reduced to [-180, 180], computed without losing
// accuracy when x and y are large.
func angDiff(x, y float64) float64 {
	d, t := twoSum(math.Remainder(-x, fullTurn), math.Remainder(y, fullTurn))
	d, t = twoSum(math.Remainder(d, fullTurn), t)
	if d == 0 || math.Abs(d) == halfTurn {
		sign := -t
		if t == 0 {
			sign = y - x
		}
		d = math.Copysign(d, sign)
	}
	return d
}

// eatanhe returns e*atanh(e*x) for an ellipsoid with eccentricity es,
// where es is negative for prolate ellipsoids.
func eatanhe(x, es float64) float64 {
	if es > 0 {
		return es * math.Atanh(es*x)
	}
	return -es * math.Atan(es*x)
}

// taupf maps tan(phi) to tan(chi), where chi is the conformal latitude.
func taupf(tau, es float64) float64 {
	if math.IsInf(tau, 0) {
		return tau
	}
	tau1 := math.Hypot(1, tau)
	sig := math.Sinh(eatanhe(tau/tau1, es))
	return math.Hypot(1, sig)*tau - sig*tau1
}

// tauf inverts taupf with a short Newton iteration. Five iterations are
// more than enough for terrestrial eccentricities.
func tauf(taup, es float64) float64 {
	const numit = 5
	tol := math.Sqrt(epsilon) / 10
	taumax := 2 / math.Sqrt(epsilon)
	e2m := 1 - es*es

	var tau float64
	if math.Abs(taup) > 70 {
		tau = taup * math.Exp(eatanhe(1, es))
	} else {
		tau = taup / e2m
	}
	stol := tol * math.Max(1, math.Abs(taup))
	if !(math.Abs(tau) < taumax) {
		return tau
	}
	for i := 0; i < numit; i++ {
		taupa := taupf(tau, es)
		dtau := (taup - taupa) * (1 + e2m*tau*tau) /
			(e2m * math.Hypot(1, tau) * math.Hypot(1, taupa))
		tau += dtau
		if !(math.Abs(dtau) >= stol) {
			break
		}
	}
	return tau
}

// polyval evaluates the polynomial p, highest order coefficient first, at
// x using Horner's method.
func polyval(p []float64, x float64) float64 {
	y := 0.0
	for _, c := range p {
		y = y*x + c
	}
	return y
}
