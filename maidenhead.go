// Package maidenhead converts between Maidenhead grid square locators and
// geodetic coordinates, and computes great-circle distance and bearing
// between locators. A good introduction to the encoding is
// http://www.w8bh.net/grid_squares.pdf
//
// A locator is 4, 6, 8 or 10 characters, one pair per tier:
// field / square / subsquare / extended square / superextended square,
// e.g. FM18lv53SL. Each pair holds a longitude digit then a latitude
// digit. The enumeration starts at the south pole and the antimeridian,
// so decoded values are shifted by -180/-90 to get signed degrees.
package maidenhead

import (
	"math"
	"strings"
	"unicode"

	"github.com/golang/geo/s2"
)

const longOffset = 180.0
const latOffset = 90.0

// Angular width in degrees of one digit at each tier, field through
// superextended square.
var longWidths = [5]float64{20, 2, 5.0 / 60, 30.0 / 3600, 1.25 / 3600}
var latWidths = [5]float64{10, 1, 2.5 / 60, 15.0 / 3600, 0.625 / 3600}

// refAlphabet holds the reference character each locator position is
// measured against when decoding. baseAlphabet holds the character each
// digit is added to when encoding; subsquares are conventionally lowercase.
const refAlphabet = "AA00AA00AA"
const baseAlphabet = "AA00aa00AA"

// positionSpans holds the alphabet size for each locator position: fields
// run A-R, squares and extended squares 0-9, subsquares and superextended
// squares A-X.
var positionSpans = [10]int{18, 18, 10, 10, 24, 24, 10, 10, 24, 24}

func validLength(n int) bool {
	return n == 4 || n == 6 || n == 8 || n == 10
}

// GridToLongLat parses a Maidenhead locator of 4, 6, 8 or 10 characters
// and returns the longitude and latitude, in signed decimal degrees, of
// the center of the cell it names. Letters are accepted in either case.
func GridToLongLat(grid string) (float64, float64, error) {
	runes := []rune(grid)
	if !validLength(len(runes)) {
		return 0, 0, &InvalidGridLengthError{Length: len(runes)}
	}

	var long, lat float64
	for i, r := range runes {
		if r > unicode.MaxASCII {
			return 0, 0, &InvalidGridError{Grid: grid}
		}
		v := int(unicode.ToUpper(r)) - int(refAlphabet[i])
		if v < 0 || v >= positionSpans[i] {
			return 0, 0, &InvalidGridError{Grid: grid}
		}
		if i%2 == 0 {
			long += float64(v) * longWidths[i/2]
		} else {
			lat += float64(v) * latWidths[i/2]
		}
	}

	// Move from the southwest corner to the center of the finest square
	// present. Centering is what makes encoding the result reproduce the
	// input locator.
	finest := len(runes)/2 - 1
	long += longWidths[finest] / 2
	lat += latWidths[finest] / 2

	return long - longOffset, lat - latOffset, nil
}

// GridToLatLng parses a Maidenhead locator and returns the center of its
// cell as an s2.LatLng.
func GridToLatLng(grid string) (s2.LatLng, error) {
	long, lat, err := GridToLongLat(grid)
	if err != nil {
		return s2.LatLng{}, err
	}
	return s2.LatLngFromDegrees(lat, long), nil
}

// LongLatToGrid encodes signed decimal-degree coordinates as a Maidenhead
// locator of the requested precision, which must be 4, 6, 8 or 10
// characters. Longitude must lie in [-180, 180] and latitude in [-90, 90].
func LongLatToGrid(longitude, latitude float64, precision int) (string, error) {
	if !validLength(precision) {
		return "", &InvalidGridLengthError{Length: precision}
	}
	if longitude < -longOffset || longitude > longOffset ||
		latitude < -latOffset || latitude > latOffset {
		return "", &InvalidLongLatError{Longitude: longitude, Latitude: latitude}
	}

	long := longitude + longOffset
	lat := latitude + latOffset

	var sb strings.Builder
	for i := 0; i < precision; i++ {
		coord, widths := long, &longWidths
		if i%2 == 1 {
			coord, widths = lat, &latWidths
		}
		tier := i / 2
		if tier > 0 {
			coord = math.Mod(coord, widths[tier-1])
		}
		v := int(coord / widths[tier])
		if v < 0 || v >= positionSpans[i] {
			return "", ErrGridEncoding
		}
		sb.WriteByte(baseAlphabet[i] + byte(v))
	}
	return sb.String(), nil
}

// LatLngToGrid encodes an s2.LatLng as a Maidenhead locator of the
// requested precision.
func LatLngToGrid(ll s2.LatLng, precision int) (string, error) {
	return LongLatToGrid(ll.Lng.Degrees(), ll.Lat.Degrees(), precision)
}
