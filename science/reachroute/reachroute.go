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

// Package reachroute implements C9: kinematic reach translation. A
// representative flow (0.7 of peak inflow) sets a normal depth via
// Manning's equation, solved by bisection, and the hydrograph is lagged
// by the resulting travel time. There is no attenuation beyond the
// discrete-lag quantization — replacing this with Muskingum or full
// dynamic-wave routing would not require reshaping the package's
// (inflow, geometry) -> (outflow, peak, tp, travelTime) contract (spec
// Design Note).
package reachroute

import (
	"fmt"
	"math"

	"github.com/alejandroechev/stormlab/hydrograph"
)

// Shape is a channel cross-section that can report flow area and wetted
// perimeter at a given depth.
type Shape interface {
	// AreaAndPerimeter returns the cross-sectional flow area (ft^2) and
	// wetted perimeter (ft) at the given depth (ft).
	AreaAndPerimeter(depth float64) (area, perimeter float64)
	// MaxDepth bounds the bisection search (e.g. pipe diameter).
	MaxDepth() float64
}

// Rectangular is a rectangular channel of fixed width.
type Rectangular struct{ WidthFt float64 }

func (r Rectangular) AreaAndPerimeter(d float64) (float64, float64) {
	return r.WidthFt * d, r.WidthFt + 2*d
}
func (r Rectangular) MaxDepth() float64 { return 1e6 }

// Trapezoidal is a trapezoidal channel with bottom width B and side
// slopes zH:1V.
type Trapezoidal struct {
	BottomWidthFt float64
	SideSlopeHV   float64
}

func (tz Trapezoidal) AreaAndPerimeter(d float64) (float64, float64) {
	top := tz.BottomWidthFt + 2*tz.SideSlopeHV*d
	area := (tz.BottomWidthFt + top) / 2 * d
	wp := tz.BottomWidthFt + 2*d*math.Sqrt(1+tz.SideSlopeHV*tz.SideSlopeHV)
	return area, wp
}
func (tz Trapezoidal) MaxDepth() float64 { return 1e6 }

// Circular is a circular pipe of diameter D, using the central-angle
// partial-flow formula below the crown and full-pipe area/perimeter at
// or above it.
type Circular struct{ DiameterFt float64 }

func (c Circular) AreaAndPerimeter(d float64) (float64, float64) {
	r := c.DiameterFt / 2
	if d >= c.DiameterFt {
		area := math.Pi * r * r
		perim := math.Pi * c.DiameterFt
		return area, perim
	}
	if d <= 0 {
		return 0, 0
	}
	theta := 2 * math.Acos((r-d)/r)
	area := r * r / 2 * (theta - math.Sin(theta))
	perim := r * theta
	return area, perim
}
func (c Circular) MaxDepth() float64 { return c.DiameterFt }

// Result is the translated outflow hydrograph and its routing summary.
type Result struct {
	Outflow    hydrograph.Hydrograph
	PeakOutflow float64
	TimeOfPeak  float64
	TravelTime  float64 // hr
}

// Route translates inflow by the travel time implied by Manning's
// equation at 0.7*Qpeak through shape over length (ft) at slope (ft/ft)
// with roughness manningN.
func Route(inflow hydrograph.Hydrograph, length, manningN, slope float64, shape Shape) (Result, error) {
	if len(inflow.Samples) < 2 {
		return Result{}, fmt.Errorf("reachroute: inflow must have at least 2 samples, got %d", len(inflow.Samples))
	}
	if length <= 0 {
		return Result{}, fmt.Errorf("reachroute: length must be positive, got %v", length)
	}
	if manningN <= 0 {
		return Result{}, fmt.Errorf("reachroute: Manning's n must be positive, got %v", manningN)
	}
	if slope <= 0 {
		return Result{}, fmt.Errorf("reachroute: slope must be positive, got %v", slope)
	}

	peak, _ := inflow.Peak()
	qRep := 0.7 * peak

	depth, err := normalDepth(qRep, manningN, slope, shape)
	if err != nil {
		return Result{}, err
	}
	area, _ := shape.AreaAndPerimeter(depth)
	var velocity float64
	if area > 0 {
		velocity = qRep / area
	}

	var travelTime float64
	if velocity > 0 {
		travelTime = length / velocity / 3600
	}

	dt := inflow.Samples[1].Time - inflow.Samples[0].Time
	lag := 0
	if dt > 0 {
		lag = int(math.Round(travelTime / dt))
	}

	n := len(inflow.Samples)
	out := make([]hydrograph.Sample, n)
	for i, s := range inflow.Samples {
		out[i].Time = s.Time
		srcIdx := i - lag
		if srcIdx >= 0 {
			out[i].Flow = inflow.Samples[srcIdx].Flow
		}
	}
	outHG := hydrograph.Hydrograph{Samples: out}
	peakOut, tPeak := outHG.Peak()

	return Result{
		Outflow:     outHG,
		PeakOutflow: peakOut,
		TimeOfPeak:  tPeak,
		TravelTime:  travelTime,
	}, nil
}

// normalDepth solves Manning's equation Q = (1.49/n)*A*R^(2/3)*sqrt(s)
// for depth via bisection on [0, shape.MaxDepth()], at most 100
// iterations or until the discharge residual is within 0.001 cfs.
func normalDepth(q, manningN, slope float64, shape Shape) (float64, error) {
	if q <= 0 {
		return 0, nil
	}
	flowAt := func(depth float64) float64 {
		area, perim := shape.AreaAndPerimeter(depth)
		if area <= 0 || perim <= 0 {
			return 0
		}
		r := area / perim
		return (1.49 / manningN) * area * math.Pow(r, 2.0/3) * math.Sqrt(slope)
	}

	lo, hi := 0.0, shape.MaxDepth()
	if math.IsInf(hi, 1) || hi > 1e5 {
		hi = 1e5
	}
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		residual := flowAt(mid) - q
		if math.Abs(residual) < 0.001 {
			return mid, nil
		}
		if residual < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}
