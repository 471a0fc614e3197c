package coordconv

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Precision limits. Precision p gives p easting and p northing digits and a
// square of side 10^(5-p) meters; 0 names the 100 km square alone and 11
// resolves to the micrometer.
const (
	MinPrecision = 0
	MaxPrecision = 11
)

// Grid geometry, in units of tile.
const (
	minUTMCol        = 1
	maxUTMCol        = 9
	minUTMSouthRow   = 10
	maxUTMSouthRow   = 100
	minUTMNorthRow   = 0
	maxUTMNorthRow   = 95
	minUPSSouthIndex = 8
	maxUPSSouthIndex = 32
	minUPSNorthIndex = 13
	maxUPSNorthIndex = 27
	upsEastingIndex  = 20
	utmRowPeriod     = 20
	utmEvenRowShift  = 5
)

const (
	// utmNorthShift converts a northern northing to the southern false
	// origin.
	utmNorthShift = (maxUTMSouthRow - minUTMNorthRow) * tile

	micrometersPerMeter = 1000000
	micrometersPerTile  = tile * micrometersPerMeter

	// equatorEpsilon is the latitude below which a point is assigned to
	// band N or M by its hemisphere rather than its latitude.
	equatorEpsilon = 0x1p-46

	// edgeEpsilon moves a coordinate lying exactly on an excluded upper
	// limit just inside it.
	edgeEpsilon = 0x1p-28
)

// MGRS letter sets. I and O are never used.
const (
	latBands = "CDEFGHJKLMNPQRSTUVWX"
	upsBands = "ABYZ"
	utmRows  = "ABCDEFGHJKLMNPQRSTUV"
)

var (
	// utmCols is indexed by (zone-1) % 3.
	utmCols = [3]string{"ABCDEFGH", "JKLMNPQR", "STUVWXYZ"}
	// upsCols is indexed by the UPS band: A, B, Y, Z.
	upsCols = [4]string{"JKLPQRSTUXYZ", "ABCFGHJKLPQR", "RSTUXYZ", "ABCFGHJ"}
	// upsRows is indexed by hemisphere, south first.
	upsRows = [2]string{"ABCDEFGHJKLMNPQRSTUVWXYZ", "ABCDEFGHJKLMNP"}
)

var pow10 = [MaxPrecision + 1]int64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11,
}

// MGRS is a Military Grid Reference System square: a grid zone, a 100 km
// square within it and, for a precision above zero, the easting and
// northing digits of the square's southwest corner within the 100 km
// square.
//
// MGRS values are built by parsing or encoding, and compare equal with ==
// exactly when they render to the same text.
type MGRS struct {
	zone       int
	hemisphere Hemisphere
	// band is the latitude band index from -10 (C) to 9 (X) for UTM, or
	// the index into upsBands for UPS.
	band int
	// col and row locate the 100 km square in tiles from the false origin
	// of the hemisphere.
	col, row          int
	easting, northing int64
	precision         int
}

func checkPrecision(precision int) error {
	if precision < MinPrecision || precision > MaxPrecision {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrPrecisionOutOfRange, precision, MinPrecision, MaxPrecision)
	}
	return nil
}

// MGRSFromLatLon returns the square of the given precision that contains
// l in its standard zone.
func MGRSFromLatLon(l LatLon, precision int) (MGRS, error) {
	if err := checkPrecision(precision); err != nil {
		return MGRS{}, err
	}
	return encodeMGRS(UtmUpsFromLatLon(l), l.lat, precision)
}

// MGRSFromUtmUps returns the square of the given precision that contains
// u. A coordinate inside the UtmUps domain but outside the area MGRS
// covers results in ErrOutOfProjectionDomain.
func MGRSFromUtmUps(u UtmUps, precision int) (MGRS, error) {
	if err := checkPrecision(precision); err != nil {
		return MGRS{}, err
	}
	lat := 0.0
	if u.zone != ZoneUPS {
		lat = u.approximateLatitude()
	}
	return encodeMGRS(u, lat, precision)
}

// approximateLatitude estimates the latitude of a UTM coordinate from its
// northing, good enough to pick the latitude band. Near a band boundary
// the estimate is replaced by the exact inverse.
func (u UtmUps) approximateLatitude() float64 {
	ys := u.northing
	if !u.IsNorth() {
		ys -= utmNorthShift
	}
	ys /= tile
	if math.Abs(ys) < 1 {
		return 0.9 * ys
	}
	pole := -1.0
	if ys > 0 {
		pole = 1
	}
	latp := 0.901*ys + pole*0.135
	late := 0.902 * ys * (1 - 1.85e-6*ys*ys)
	if latitudeBand(latp) == latitudeBand(late) {
		return latp
	}
	return u.ToLatLon().lat
}

// mgrsCheckCoords applies the MGRS limits to (x, y) and moves UTM
// northings into the hemisphere MGRS files them under. A coordinate
// exactly on an upper limit is moved just inside it.
func mgrsCheckCoords(utm, north bool, x, y float64) (bool, float64, float64, error) {
	ind := domainIndex(utm, north)
	ix := math.Floor(x / tile)
	if minX, maxX := float64(minEastingTiles[ind]), float64(maxEastingTiles[ind]); !(ix >= minX && ix < maxX) {
		if !(ix == maxX && x == maxX*tile) {
			return north, x, y, fmt.Errorf("%w: easting %.2fkm not in MGRS %s range [%.0fkm, %.0fkm)",
				ErrOutOfProjectionDomain, x/1000, domainNames[ind], minX*tile/1000, maxX*tile/1000)
		}
		x -= edgeEpsilon
	}
	iy := math.Floor(y / tile)
	if minY, maxY := float64(minNorthingTiles[ind]), float64(maxNorthingTiles[ind]); !(iy >= minY && iy < maxY) {
		if !(iy == maxY && y == maxY*tile) {
			return north, x, y, fmt.Errorf("%w: northing %.2fkm not in MGRS %s range [%.0fkm, %.0fkm)",
				ErrOutOfProjectionDomain, y/1000, domainNames[ind], minY*tile/1000, maxY*tile/1000)
		}
		y -= edgeEpsilon
	}
	if utm {
		switch {
		case north && iy < minUTMNorthRow:
			north = false
			y += utmNorthShift
		case !north && iy >= maxUTMSouthRow:
			if y == maxUTMSouthRow*tile {
				// on the equator; keep it in the south
				y -= edgeEpsilon
			} else {
				north = true
				y -= utmNorthShift
			}
		}
	}
	return north, x, y, nil
}

// toMicrometers returns the largest whole number of micrometers n for which
// n converted back to meters by fromMicrometers does not exceed x. This
// makes fromMicrometers an exact inverse for every n.
func toMicrometers(x float64) int64 {
	n := int64(math.Floor(x * micrometersPerMeter))
	for fromMicrometers(n+1) <= x {
		n++
	}
	for fromMicrometers(n) > x {
		n--
	}
	return n
}

func fromMicrometers(n int64) float64 {
	return float64(n) / micrometersPerMeter
}

// encodeMGRS builds the MGRS square containing u. lat is the latitude of
// the point, or an estimate of it, used to choose the latitude band.
func encodeMGRS(u UtmUps, lat float64, precision int) (MGRS, error) {
	utm := u.zone != ZoneUPS
	north, x, y, err := mgrsCheckCoords(utm, u.IsNorth(), u.easting, u.northing)
	if err != nil {
		return MGRS{}, err
	}
	ix, iy := toMicrometers(x), toMicrometers(y)
	xh := int(ix / micrometersPerTile)
	yh := int(iy / micrometersPerTile)
	ind := domainIndex(utm, north)
	if xh < minEastingTiles[ind] || xh >= maxEastingTiles[ind] ||
		yh < minNorthingTiles[ind] || yh >= maxNorthingTiles[ind] {
		return MGRS{}, fmt.Errorf("%w: %v rounds outside the MGRS grid", ErrOutOfProjectionDomain, u)
	}

	m := MGRS{zone: u.zone, hemisphere: HemisphereSouth, col: xh, row: yh, precision: precision}
	if north {
		m.hemisphere = HemisphereNorth
	}
	if utm {
		var band int
		switch {
		case math.Abs(lat) >= equatorEpsilon:
			band = latitudeBand(lat)
		case north:
			band = 0
		default:
			band = -1
		}
		want := yh - minUTMNorthRow
		if !north {
			want = yh - maxUTMSouthRow
		}
		if row := utmRow(band, xh-minUTMCol, yh%utmRowPeriod); row != want {
			return MGRS{}, fmt.Errorf("%w: latitude %v inconsistent with UTM northing %v",
				ErrOutOfProjectionDomain, lat, u.northing)
		}
		m.band = band
	} else {
		m.band = upsBand(north, xh >= upsEastingIndex)
	}
	if precision > 0 {
		unit := pow10[MaxPrecision-precision]
		m.easting = (ix - int64(xh)*micrometersPerTile) / unit
		m.northing = (iy - int64(yh)*micrometersPerTile) / unit
	}
	return m, nil
}

// utmRow resolves the row letter index row (0..19, already corrected for
// the even zone shift) to a row in tiles from the equator for the given
// latitude band and column index. It returns maxUTMSouthRow when the
// square does not lie in the band.
func utmRow(band, col, row int) int {
	c := 100 * float64(8*band+4) / 90
	north := band >= 0
	adjust := 0.0
	if north {
		adjust = 0.1
	}
	minRow := -90
	if band > -10 {
		minRow = int(math.Floor(c - 4.3 - adjust))
	}
	maxRow := 94
	if band < 9 {
		maxRow = int(math.Floor(c + 4.4 - adjust))
	}
	baseRow := (minRow+maxRow)/2 - utmRowPeriod/2
	row = (row-baseRow+maxUTMSouthRow)%utmRowPeriod + baseRow
	if row >= minRow && row <= maxRow {
		return row
	}
	// Squares that straddle a band boundary are accepted in the band they
	// mostly lie in. Mirror into the north-east quadrant to test.
	sband, srow, scol := band, row, col
	if band < 0 {
		sband = -band - 1
	}
	if row < 0 {
		srow = -row - 1
	}
	if col >= 4 {
		scol = 7 - col
	}
	if (srow == 70 && sband == 8 && scol >= 2) ||
		(srow == 71 && sband == 7 && scol <= 2) ||
		(srow == 79 && sband == 9 && scol >= 1) ||
		(srow == 80 && sband == 8 && scol <= 1) {
		return row
	}
	return maxUTMSouthRow
}

func upsBand(north, east bool) int {
	b := 0
	if north {
		b = 2
	}
	if east {
		b++
	}
	return b
}

// upsColOrigin and upsRowOrigin give the tile index of the first letter of
// the UPS column and row sets.
func upsColOrigin(north, east bool) int {
	switch {
	case east:
		return upsEastingIndex
	case north:
		return minUPSNorthIndex
	}
	return minUPSSouthIndex
}

func upsRowOrigin(north bool) int {
	if north {
		return minUPSNorthIndex
	}
	return minUPSSouthIndex
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ParseMGRS parses an MGRS reference such as "18TWL8566411315" or
// "ZAH0000000000". Letters may be in either case. Spaces may surround the
// reference and separate the grid zone, the 100 km square, the easting and
// the northing, as in "18T WL 85664 11315", but may not appear elsewhere.
// The zone may be written with one or two digits and is omitted for UPS.
// The number of digits after the letters must be even and at most
// 2*MaxPrecision.
func ParseMGRS(s string) (MGRS, error) {
	malformed := func(format string, args ...any) (MGRS, error) {
		return MGRS{}, fmt.Errorf("%w %q: %s", ErrMalformedMGRS, s, fmt.Sprintf(format, args...))
	}

	// gaps holds the offsets into the compacted text at which spaces were
	// removed
	var gaps []int
	buf := bytes.Buffer{}
	t := strings.Trim(s, " ")
	for i := 0; i < len(t); i++ {
		b := t[i]
		switch {
		case b == ' ':
			if n := buf.Len(); len(gaps) == 0 || gaps[len(gaps)-1] != n {
				gaps = append(gaps, n)
			}
		case isdigit(b) || isalpha(b):
			buf.WriteByte(b)
		default:
			return malformed("invalid character %q", b)
		}
	}
	v := strings.ToUpper(buf.String())
	if v == "" {
		return malformed("empty")
	}

	p := 0
	zone := ZoneUPS
	for p < len(v) && isdigit(v[p]) {
		if p == 2 {
			return malformed("more than 2 digits in zone")
		}
		zone = 10*zone + int(v[p]-'0')
		p++
	}
	utm := p > 0
	if utm && (zone < MinUTMZone || zone > MaxUTMZone) {
		return malformed("zone %d not in [%d, %d]", zone, MinUTMZone, MaxUTMZone)
	}
	if len(v)-p < 3 {
		return malformed("missing band or 100km square letters")
	}

	var band int
	if utm {
		band = strings.IndexByte(latBands, v[p])
		if band < 0 {
			return malformed("band letter %c not in %s", v[p], latBands)
		}
		band -= 10
	} else {
		band = strings.IndexByte(upsBands, v[p])
		if band < 0 {
			return malformed("band letter %c not in %s", v[p], upsBands)
		}
	}
	p++
	north := band >= 0
	if !utm {
		north = band >= 2
	}

	var col, row int
	if utm {
		cols := utmCols[(zone-1)%3]
		if col = strings.IndexByte(cols, v[p]); col < 0 {
			return malformed("column letter %c not in zone %d set %s", v[p], zone, cols)
		}
		if row = strings.IndexByte(utmRows, v[p+1]); row < 0 {
			return malformed("row letter %c not in %s", v[p+1], utmRows)
		}
		if (zone-1)%2 == 1 {
			row = (row + utmRowPeriod - utmEvenRowShift) % utmRowPeriod
		}
		if row = utmRow(band, col, row); row == maxUTMSouthRow {
			return malformed("square %s not in zone %d%c", v[p:p+2], zone, v[p-1])
		}
		if !north {
			row += maxUTMSouthRow - minUTMNorthRow
		}
		col += minUTMCol
	} else {
		east := band&1 == 1
		cols := upsCols[band]
		if col = strings.IndexByte(cols, v[p]); col < 0 {
			return malformed("column letter %c not in UPS %c set %s", v[p], v[p-1], cols)
		}
		rows := upsRows[boolIndex(north)]
		if row = strings.IndexByte(rows, v[p+1]); row < 0 {
			return malformed("row letter %c not in UPS %c set %s", v[p+1], v[p-1], rows)
		}
		col += upsColOrigin(north, east)
		row += upsRowOrigin(north)
	}
	p += 2

	digits := v[p:]
	for i := 0; i < len(digits); i++ {
		if !isdigit(digits[i]) {
			return malformed("non-digit %c in easting/northing", digits[i])
		}
	}
	if len(digits)%2 != 0 {
		return malformed("odd number of digits %q", digits)
	}
	if len(digits) > 2*MaxPrecision {
		return malformed("more than %d digits", 2*MaxPrecision)
	}
	for _, g := range gaps {
		if g != p-2 && g != p && g != p+len(digits)/2 {
			return malformed("space inside a part at offset %d", g)
		}
	}

	m := MGRS{
		zone:       zone,
		hemisphere: HemisphereSouth,
		band:       band,
		col:        col,
		row:        row,
		precision:  len(digits) / 2,
	}
	if north {
		m.hemisphere = HemisphereNorth
	}
	if m.precision > 0 {
		// at most 11 digits each; cannot overflow
		m.easting, _ = strconv.ParseInt(digits[:m.precision], 10, 64)
		m.northing, _ = strconv.ParseInt(digits[m.precision:], 10, 64)
	}
	return m, nil
}

func isdigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isalpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Zone returns the zone number, 0 for UPS.
func (m MGRS) Zone() int { return m.zone }

// Hemisphere returns the hemisphere of the square.
func (m MGRS) Hemisphere() Hemisphere { return m.hemisphere }

// Precision returns the number of easting (and northing) digits.
func (m MGRS) Precision() int { return m.precision }

// IsUPS reports whether the square is in a polar region.
func (m MGRS) IsUPS() bool { return m.zone == ZoneUPS }

// GridZoneDesignation returns the zone and band, such as "18T", or the UPS
// band letter alone.
func (m MGRS) GridZoneDesignation() string {
	if !m.hemisphere.valid() {
		return ""
	}
	if m.zone == ZoneUPS {
		return upsBands[m.band : m.band+1]
	}
	return fmt.Sprintf("%2.2d%c", m.zone, latBands[m.band+10])
}

// SquareID returns the two letters naming the 100 km square.
func (m MGRS) SquareID() string {
	if !m.hemisphere.valid() {
		return ""
	}
	var id [2]byte
	if m.zone == ZoneUPS {
		north := m.IsNorth()
		east := m.band&1 == 1
		id[0] = upsCols[m.band][m.col-upsColOrigin(north, east)]
		id[1] = upsRows[boolIndex(north)][m.row-upsRowOrigin(north)]
	} else {
		zonem := m.zone - 1
		id[0] = utmCols[zonem%3][m.col-minUTMCol]
		id[1] = utmRows[(m.row+utmEvenRowShift*(zonem%2))%utmRowPeriod]
	}
	return string(id[:])
}

// IsNorth reports whether the square is in the northern hemisphere.
func (m MGRS) IsNorth() bool { return m.hemisphere == HemisphereNorth }

func (m MGRS) String() string {
	if !m.hemisphere.valid() {
		return "INVALID"
	}
	buf := bytes.Buffer{}
	buf.WriteString(m.GridZoneDesignation())
	buf.WriteString(m.SquareID())
	if m.precision > 0 {
		fmt.Fprintf(&buf, "%0*d%0*d", m.precision, m.easting, m.precision, m.northing)
	}
	return buf.String()
}

// WithPrecision returns the square of the given precision containing m's
// southwest corner. Reducing the precision truncates digits; increasing it
// appends zeros.
func (m MGRS) WithPrecision(precision int) (MGRS, error) {
	if err := checkPrecision(precision); err != nil {
		return MGRS{}, err
	}
	if precision < m.precision {
		d := pow10[m.precision-precision]
		m.easting /= d
		m.northing /= d
	} else {
		d := pow10[precision-m.precision]
		m.easting *= d
		m.northing *= d
	}
	m.precision = precision
	return m, nil
}

// ToUtmUps returns the southwest corner of the square.
func (m MGRS) ToUtmUps() UtmUps {
	unit := pow10[MaxPrecision-m.precision]
	x := int64(m.col)*micrometersPerTile + m.easting*unit
	y := int64(m.row)*micrometersPerTile + m.northing*unit
	return UtmUps{
		zone:       m.zone,
		hemisphere: m.hemisphere,
		easting:    fromMicrometers(x),
		northing:   fromMicrometers(y),
	}
}

// ToLatLon returns the geodetic position of the southwest corner of the
// square.
func (m MGRS) ToLatLon() LatLon {
	return m.ToUtmUps().ToLatLon()
}

// MarshalText implements encoding.TextMarshaler.
func (m MGRS) MarshalText() ([]byte, error) {
	if !m.hemisphere.valid() {
		return nil, fmt.Errorf("%w: zero MGRS value", ErrMalformedMGRS)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MGRS) UnmarshalText(text []byte) error {
	v, err := ParseMGRS(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
