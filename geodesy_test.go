package maidenhead_test

import (
	"errors"
	"math"
	"testing"

	"github.com/olofj/maidenhead"
)

func TestGridDistBearing(t *testing.T) {
	// San Francisco to Oulu, Finland.
	dist, bearing, err := maidenhead.GridDistBearing("CM87um", "KP04ow")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if math.Abs(dist-8189) > 1.0 {
		t.Errorf("got distance %f, expected 8189 km", dist)
	}
	if math.Abs(bearing-15.224) > 0.001 {
		t.Errorf("got bearing %f, expected 15.224 degrees", bearing)
	}

	dist2, err := maidenhead.GridDistance("CM87um", "KP04ow")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	bearing2, err := maidenhead.GridBearing("CM87um", "KP04ow")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if dist2 != dist || bearing2 != bearing {
		t.Errorf("wrappers disagree: (%f, %f) != (%f, %f)", dist2, bearing2, dist, bearing)
	}
}

func TestNullDistance(t *testing.T) {
	for _, g := range []string{"CM87", "FM18lv", "KP04ow42", testGrid} {
		dist, err := maidenhead.GridDistance(g, g)
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", g, err)
		}
		if dist != 0 {
			t.Errorf("%s: got distance %g, expected exactly 0", g, dist)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	there, err := maidenhead.GridDistance("CM87um", "KP04ow")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	back, err := maidenhead.GridDistance("KP04ow", "CM87um")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if math.Abs(there-back) > 1e-9 {
		t.Errorf("distance not symmetric: %f != %f", there, back)
	}
}

func TestDistanceMatchesS2(t *testing.T) {
	// s2 computes the same haversine in asin form; both must agree.
	from, err := maidenhead.GridToLatLng("CM87um")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	to, err := maidenhead.GridToLatLng("KP04ow")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	dist, err := maidenhead.GridDistance("CM87um", "KP04ow")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	s2Dist := from.Distance(to).Radians() * 6371
	if math.Abs(dist-s2Dist) > 1e-6 {
		t.Errorf("got %f, s2 computes %f", dist, s2Dist)
	}
}

func TestGeodesyErrorPropagation(t *testing.T) {
	var gridErr *maidenhead.InvalidGridError
	var lenErr *maidenhead.InvalidGridLengthError

	if _, _, err := maidenhead.GridDistBearing("AIA2", "KP04ow"); !errors.As(err, &gridErr) {
		t.Errorf("bad from: expected InvalidGridError, got %v", err)
	}
	if _, _, err := maidenhead.GridDistBearing("CM87um", "AIA2"); !errors.As(err, &gridErr) {
		t.Errorf("bad to: expected InvalidGridError, got %v", err)
	}
	if _, err := maidenhead.GridDistance("CM87um", "AI021"); !errors.As(err, &lenErr) {
		t.Errorf("bad length: expected InvalidGridLengthError, got %v", err)
	}
	if _, err := maidenhead.GridBearing("AI021", "CM87um"); !errors.As(err, &lenErr) {
		t.Errorf("bad length: expected InvalidGridLengthError, got %v", err)
	}
}
