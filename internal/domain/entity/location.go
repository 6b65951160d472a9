package entity

import "github.com/paulmach/orb"

// PreferredLocation is the per-user fallback origin for distance computation.
type PreferredLocation struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point returns the location as an orb point (lng, lat).
func (l *PreferredLocation) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// OriginSource tells where a distance origin came from.
type OriginSource string

const (
	OriginLive      OriginSource = "live"
	OriginPreferred OriginSource = "preferred"
	OriginUnknown   OriginSource = "unknown"
)

// Origin is the coordinate distances are measured from. When Source is
// OriginUnknown, Point is meaningless and Reason names the geolocation state.
type Origin struct {
	Point  orb.Point    `json:"point"`
	Source OriginSource `json:"source"`
	Reason string       `json:"reason,omitempty"`
}

// Known reports whether the origin carries a usable coordinate.
func (o Origin) Known() bool {
	return o.Source == OriginLive || o.Source == OriginPreferred
}
