package coordconv

import "fmt"

// WGS84 ellipsoid parameters.
const (
	semiMajorAxis = 6378137.0
	flattening    = 1 / 298.257223563
)

// Central scale factors of the UTM and UPS projections.
const (
	utmScaleFactor = 0.9996
	upsScaleFactor = 0.994
)

// utmProjection is the WGS84 transverse Mercator engine shared by all UTM
// zones; the central meridian is supplied per call.
var utmProjection *transverseMercator

// upsProjection is the WGS84 polar stereographic engine for both poles.
var upsProjection *polarStereographic

func init() {
	var err error
	utmProjection, err = newTransverseMercator(semiMajorAxis, flattening, utmScaleFactor)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 transverse Mercator projection: %s", err))
	}
	upsProjection, err = newPolarStereographic(semiMajorAxis, flattening, upsScaleFactor)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 polar stereographic projection: %s", err))
	}
}

// checkEllipsoid validates the ellipsoid and scale parameters shared by
// both projection constructors.
func checkEllipsoid(a, f, k0 float64) error {
	if !(a > 0) {
		return fmt.Errorf("semi-major axis must be greater than zero, got %v", a)
	}
	if invF := 1 / f; invF < 250 || invF > 350 {
		return fmt.Errorf("inverse flattening must be between 250 and 350, got %v", invF)
	}
	if !(k0 > 0) || k0 > 3 {
		return fmt.Errorf("central scale factor must be in (0, 3], got %v", k0)
	}
	return nil
}
