// Package coordconv converts WGS84 positions between geodetic latitude and
// longitude, UTM/UPS grid coordinates and MGRS references.
//
// UTM uses a sixth order Krüger series, accurate to a few nanometers within
// the standard zones. MGRS references carry up to 11 digits per axis, that
// is micrometer squares, and always name the square containing the point.
// Decoding an MGRS reference yields the southwest corner of its square.
//
// All values are immutable and every function is safe for concurrent use.
package coordconv
