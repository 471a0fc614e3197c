package coordconv

import "errors"

// Error kinds returned by this package. Errors are wrapped with context, so
// test for a kind with errors.Is.
var (
	// ErrOutOfRange reports a latitude outside [-90, 90] or a non-finite
	// longitude.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrInvalidZone reports a zone number outside [0, 60].
	ErrInvalidZone = errors.New("invalid zone")

	// ErrInvalidHemisphere reports a hemisphere that is neither north nor
	// south.
	ErrInvalidHemisphere = errors.New("invalid hemisphere")

	// ErrOutOfProjectionDomain reports an easting or northing outside the
	// region a UTM zone or UPS pole accepts, or a grid reference MGRS
	// cannot express.
	ErrOutOfProjectionDomain = errors.New("outside projection domain")

	// ErrZoneMismatch reports a zone override that cannot represent the
	// point.
	ErrZoneMismatch = errors.New("zone incompatible with point")

	// ErrPrecisionOutOfRange reports an MGRS precision outside [0, 11].
	ErrPrecisionOutOfRange = errors.New("MGRS precision out of range")

	// ErrMalformedMGRS reports MGRS text that cannot be parsed.
	ErrMalformedMGRS = errors.New("malformed MGRS")

	// ErrMalformedCoordinate reports latitude/longitude or UTM/UPS text
	// that cannot be parsed.
	ErrMalformedCoordinate = errors.New("malformed coordinate")
)
