package maidenhead

import (
	"errors"
	"fmt"
)

// InvalidGridError reports a locator with a character that does not belong
// to the alphabet for its position.
type InvalidGridError struct {
	Grid string
}

func (e *InvalidGridError) Error() string {
	return fmt.Sprintf("invalid grid locator %q", e.Grid)
}

// InvalidGridLengthError reports a locator length, or a requested encoding
// precision, outside the supported set of 4, 6, 8 or 10 characters.
type InvalidGridLengthError struct {
	Length int
}

func (e *InvalidGridLengthError) Error() string {
	return fmt.Sprintf("invalid grid length %d, must be 4, 6, 8 or 10", e.Length)
}

// InvalidLongLatError reports coordinates outside the valid longitude
// [-180, 180] or latitude [-90, 90] range.
type InvalidLongLatError struct {
	Longitude float64
	Latitude  float64
}

func (e *InvalidLongLatError) Error() string {
	return fmt.Sprintf("coordinates out of range: longitude %g, latitude %g", e.Longitude, e.Latitude)
}

// ErrGridEncoding is returned when a computed grid digit cannot be mapped
// to a locator character. Unreachable for coordinates strictly inside the
// valid range.
var ErrGridEncoding = errors.New("failed to generate grid locator")
