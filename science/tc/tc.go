/*
Copyright © 2026 the stormlab authors.
This file is part of stormlab.

stormlab is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

stormlab is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with stormlab.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package tc computes time of concentration (C3) as the sum of travel
// times over an ordered list of flow segments: sheet flow, shallow
// concentrated flow, and open-channel flow.
package tc

import (
	"fmt"
	"math"
)

// SegmentKind distinguishes the three travel-time formulas of TR-55
// chapter 3.
type SegmentKind int

// The three flow-segment kinds, applied in the order they appear on a
// Subcatchment's flow path (upland to outlet).
const (
	Sheet SegmentKind = iota
	ShallowConcentrated
	Channel
)

// Surface distinguishes paved and unpaved shallow-concentrated flow,
// which use different velocity coefficients.
type Surface int

// The two shallow-concentrated flow surfaces.
const (
	Unpaved Surface = iota
	Paved
)

// Velocity coefficients for shallow concentrated flow (ft/s per sqrt(ft/ft)).
const (
	kPaved   = 20.3282
	kUnpaved = 16.1345
)

// Segment is one leg of a flow path. Only the fields relevant to Kind are
// meaningful; Calculate validates exactly what each kind requires.
type Segment struct {
	Kind SegmentKind

	// Sheet flow.
	ManningN     float64 // n
	Length       float64 // ft, <= 300
	Slope        float64 // ft/ft
	TwoYr24hrP2  float64 // in, 2-yr 24-hr rainfall depth

	// Shallow concentrated flow.
	ShallowLength float64 // ft
	ShallowSlope  float64 // ft/ft
	ShallowSurf   Surface

	// Channel flow.
	ChannelLength   float64 // ft
	ChannelSlope    float64 // ft/ft
	ChannelManningN float64
	ChannelArea     float64 // ft^2, cross-sectional flow area
	WettedPerimeter float64 // ft
}

// TravelTime returns the segment's travel time in hours.
func (s Segment) TravelTime() (float64, error) {
	switch s.Kind {
	case Sheet:
		return sheetFlow(s)
	case ShallowConcentrated:
		return shallowConcentratedFlow(s)
	case Channel:
		return channelFlow(s)
	default:
		return 0, fmt.Errorf("tc: unknown segment kind %v", s.Kind)
	}
}

func sheetFlow(s Segment) (float64, error) {
	if s.Length > 300 {
		return 0, fmt.Errorf("tc: sheet flow length %v exceeds the 300 ft TR-55 limit", s.Length)
	}
	if s.Slope <= 0 {
		return 0, fmt.Errorf("tc: sheet flow slope must be positive, got %v", s.Slope)
	}
	if s.TwoYr24hrP2 <= 0 {
		return 0, fmt.Errorf("tc: sheet flow 2-yr 24-hr rainfall (P2) must be positive, got %v", s.TwoYr24hrP2)
	}
	nl := math.Pow(s.ManningN*s.Length, 0.8)
	return 0.007 * nl / (math.Pow(s.TwoYr24hrP2, 0.5) * math.Pow(s.Slope, 0.4)), nil
}

func shallowConcentratedFlow(s Segment) (float64, error) {
	if s.ShallowSlope <= 0 {
		return 0, fmt.Errorf("tc: shallow concentrated flow slope must be positive, got %v", s.ShallowSlope)
	}
	k := kUnpaved
	if s.ShallowSurf == Paved {
		k = kPaved
	}
	v := k * math.Sqrt(s.ShallowSlope)
	return s.ShallowLength / v / 3600, nil
}

func channelFlow(s Segment) (float64, error) {
	if s.ChannelArea <= 0 {
		return 0, fmt.Errorf("tc: channel flow area must be positive, got %v", s.ChannelArea)
	}
	if s.WettedPerimeter <= 0 {
		return 0, fmt.Errorf("tc: channel wetted perimeter must be positive, got %v", s.WettedPerimeter)
	}
	if s.ChannelSlope <= 0 {
		return 0, fmt.Errorf("tc: channel slope must be positive, got %v", s.ChannelSlope)
	}
	r := s.ChannelArea / s.WettedPerimeter
	v := (1.49 / s.ChannelManningN) * math.Pow(r, 2.0/3) * math.Sqrt(s.ChannelSlope)
	return s.ChannelLength / v / 3600, nil
}

// Calculate sums travel times across an ordered list of segments,
// returning the total time of concentration in hours.
func Calculate(segments []Segment) (float64, error) {
	var total float64
	for i, s := range segments {
		tt, err := s.TravelTime()
		if err != nil {
			return 0, fmt.Errorf("tc: segment %d: %w", i, err)
		}
		total += tt
	}
	return total, nil
}
