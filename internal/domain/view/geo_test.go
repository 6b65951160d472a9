package view

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name     string
		p1       orb.Point
		p2       orb.Point
		expected float64
		delta    float64
	}{
		{name: "one degree of latitude at the equator", p1: orb.Point{0, 0}, p2: orb.Point{0, 1}, expected: 111.19, delta: 0.5},
		{name: "one degree of longitude at the equator", p1: orb.Point{0, 0}, p2: orb.Point{1, 0}, expected: 111.19, delta: 0.5},
		{name: "same point", p1: orb.Point{121.5654, 25.0330}, p2: orb.Point{121.5654, 25.0330}, expected: 0, delta: 1e-9},
		{name: "antipodal points", p1: orb.Point{0, 0}, p2: orb.Point{180, 0}, expected: 20015.09, delta: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DistanceKm(tt.p1, tt.p2), tt.delta)
			assert.InDelta(t, DistanceKm(tt.p1, tt.p2), DistanceKm(tt.p2, tt.p1), 1e-9)
		})
	}
}
