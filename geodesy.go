package maidenhead

import "math"

// earthRadiusKm is the mean Earth radius of the spherical model used for
// great-circle distances.
const earthRadiusKm = 6371.0

// GridDistBearing decodes two locators and returns the great-circle
// distance in kilometers between their cell centers, together with the
// initial bearing in degrees from the first toward the second, normalized
// to [0, 360). The locators may be of different precision.
func GridDistBearing(from, to string) (float64, float64, error) {
	long1, lat1, err := GridToLongLat(from)
	if err != nil {
		return 0, 0, err
	}
	long2, lat2, err := GridToLongLat(to)
	if err != nil {
		return 0, 0, err
	}

	p1 := lat1 * math.Pi / 180
	p2 := lat2 * math.Pi / 180
	dp := (lat2 - lat1) * math.Pi / 180
	dl := (long2 - long1) * math.Pi / 180

	// Haversine distance.
	a := math.Sin(dp/2)*math.Sin(dp/2) +
		math.Cos(p1)*math.Cos(p2)*math.Sin(dl/2)*math.Sin(dl/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	// Initial bearing on the great circle from the first point.
	theta := math.Atan2(math.Sin(dl)*math.Cos(p2),
		math.Cos(p1)*math.Sin(p2)-math.Sin(p1)*math.Cos(p2)*math.Cos(dl))
	bearing := math.Mod(theta*180/math.Pi+360, 360)

	return earthRadiusKm * c, bearing, nil
}

// GridDistance returns the great-circle distance in kilometers between the
// centers of two locators.
func GridDistance(from, to string) (float64, error) {
	dist, _, err := GridDistBearing(from, to)
	return dist, err
}

// GridBearing returns the initial bearing in degrees, normalized to
// [0, 360), from the center of one locator toward another.
func GridBearing(from, to string) (float64, error) {
	_, bearing, err := GridDistBearing(from, to)
	return bearing, err
}
