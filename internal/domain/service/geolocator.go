package service

import (
	"context"

	"marketsync/internal/errors"

	"github.com/paulmach/orb"
)

// Geolocation failures reported by a device. Each maps to its own origin state.
var (
	ErrGeoPermissionDenied    = errors.New("permission-denied")
	ErrGeoPositionUnavailable = errors.New("position-unavailable")
	ErrGeoTimeout             = errors.New("timeout")
	ErrGeoUnsupported         = errors.New("unsupported")
)

// Geolocator returns the current device coordinate as (lng, lat).
type Geolocator interface {
	CurrentPosition(ctx context.Context) (orb.Point, error)
}

// ParseGeolocationError maps a reported failure code to its error. Unknown
// codes are treated as position-unavailable.
func ParseGeolocationError(code string) error {
	for _, err := range []error{ErrGeoPermissionDenied, ErrGeoPositionUnavailable, ErrGeoTimeout, ErrGeoUnsupported} {
		if err.Error() == code {
			return err
		}
	}

	return ErrGeoPositionUnavailable
}

// ReportedPosition is a geolocation result relayed by the client: either a
// coordinate or one of the failure codes.
type ReportedPosition struct {
	Latitude  *float64
	Longitude *float64
	ErrorCode string
}

// CurrentPosition implements Geolocator. A report without coordinates or code
// means the client has no geolocation support.
func (r ReportedPosition) CurrentPosition(_ context.Context) (orb.Point, error) {
	if r.ErrorCode != "" {
		return orb.Point{}, ParseGeolocationError(r.ErrorCode)
	}
	if r.Latitude == nil || r.Longitude == nil {
		return orb.Point{}, ErrGeoUnsupported
	}

	return orb.Point{*r.Longitude, *r.Latitude}, nil
}
