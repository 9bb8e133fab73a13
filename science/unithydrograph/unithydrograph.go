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

// Package unithydrograph builds a runoff hydrograph (C4) from the SCS
// dimensionless unit hydrograph and discrete convolution of the
// excess-rainfall increments derived from C1 (rainfall) and C2 (runoff).
package unithydrograph

import (
	"fmt"
	"math"

	"github.com/alejandroechev/stormlab/hydrograph"
	"github.com/alejandroechev/stormlab/science/rainfall"
	"github.com/alejandroechev/stormlab/science/runoff"
	"gonum.org/v1/gonum/floats"
)

// DefaultPeakFactor is the standard SCS dimensionless unit hydrograph peak
// rate factor. A peak factor can be supplied explicitly via
// GenerateWithPeakFactor, but the pipeline (Generate) always uses this
// constant: spec Open Question 3 leaves the parameter exposed but unused.
const DefaultPeakFactor = 484.0

// duPoint is one (t/Tp, q/qp) node of the SCS dimensionless unit
// hydrograph curve.
type duPoint struct{ ratio, ordinate float64 }

// du is the standard 33-point SCS dimensionless unit hydrograph table.
var du = []duPoint{
	{0.0, 0.000}, {0.1, 0.030}, {0.2, 0.100}, {0.3, 0.190}, {0.4, 0.310},
	{0.5, 0.470}, {0.6, 0.660}, {0.7, 0.820}, {0.8, 0.930}, {0.9, 0.990},
	{1.0, 1.000}, {1.1, 0.990}, {1.2, 0.930}, {1.3, 0.860}, {1.4, 0.780},
	{1.5, 0.680}, {1.6, 0.560}, {1.7, 0.460}, {1.8, 0.390}, {1.9, 0.330},
	{2.0, 0.280}, {2.2, 0.207}, {2.4, 0.147}, {2.6, 0.107}, {2.8, 0.077},
	{3.0, 0.055}, {3.2, 0.040}, {3.4, 0.029}, {3.6, 0.021}, {3.8, 0.015},
	{4.0, 0.011}, {4.5, 0.005}, {5.0, 0.000},
}

// dimensionless interpolates the SCS dimensionless unit hydrograph table
// at x = t/Tp, returning 0 outside [0,5].
func dimensionless(x float64) float64 {
	if x < 0 || x > 5 {
		return 0
	}
	for i := 1; i < len(du); i++ {
		if x <= du[i].ratio {
			lo, hi := du[i-1], du[i]
			frac := (x - lo.ratio) / (hi.ratio - lo.ratio)
			return lo.ordinate + frac*(hi.ordinate-lo.ordinate)
		}
	}
	return 0
}

// Params bundles the inputs to Generate.
type Params struct {
	AreaAcres  float64
	CN         float64
	TcHours    float64
	Storm      rainfall.StormType
	TotalDepth float64 // in

	// DtOverride, if > 0, replaces the auto-selected convolution
	// timestep max(0.01, min(Tc/5, 0.1)).
	DtOverride float64

	// Lambda is the initial-abstraction ratio; 0 means
	// runoff.DefaultInitialAbstractionRatio.
	Lambda float64
}

// Result is the hydrograph produced by convolution plus its summary
// statistics.
type Result struct {
	Hydrograph hydrograph.Hydrograph
	PeakFlow   float64
	TimeOfPeak float64
	Volume     float64
	Dt         float64
	Tp         float64
}

// Generate builds a runoff hydrograph from p using the standard SCS peak
// factor (484). It implements C4's five-step algorithm: timestep
// selection, lag/Tp, excess-rainfall increments, UH ordinates, and
// discrete convolution.
func Generate(p Params) (Result, error) {
	return GenerateWithPeakFactor(p, DefaultPeakFactor)
}

// GenerateWithPeakFactor is Generate with an explicit dimensionless unit
// hydrograph peak-rate factor in place of the standard 484. It exists so
// the constant can be overridden for research/calibration use; the main
// pipeline never calls it with anything but DefaultPeakFactor.
func GenerateWithPeakFactor(p Params, peakFactor float64) (Result, error) {
	if p.AreaAcres <= 0 {
		return Result{}, fmt.Errorf("unithydrograph: area must be positive, got %v", p.AreaAcres)
	}
	if p.TcHours <= 0 {
		return Result{}, fmt.Errorf("unithydrograph: time of concentration must be positive, got %v", p.TcHours)
	}
	lambda := p.Lambda
	if lambda == 0 {
		lambda = runoff.DefaultInitialAbstractionRatio
	}

	dt := p.DtOverride
	if dt <= 0 {
		dt = math.Max(0.01, math.Min(p.TcHours/5, 0.1))
	}

	lag := 0.6 * p.TcHours
	tp := dt/2 + lag

	excess, err := excessIncrements(p.Storm, p.TotalDepth, p.CN, lambda, dt)
	if err != nil {
		return Result{}, err
	}

	qpUnit := peakFactor * (p.AreaAcres / 640) / tp
	nUH := int(math.Ceil(5*tp/dt)) + 1
	xMax := float64(nUH-1) * dt / tp
	xs := floats.Span(make([]float64, nUH), 0, xMax)
	uh := make([]float64, nUH)
	for i, x := range xs {
		uh[i] = qpUnit * dimensionless(x)
	}

	n := len(excess) + nUH
	q := make([]float64, n)
	for k, dq := range excess {
		if dq <= 0 {
			continue
		}
		for j, u := range uh {
			q[j+k] += dq * u
		}
	}

	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) * dt
	}
	hg := hydrograph.New(times, q)
	peak, tPeak := hg.Peak()

	return Result{
		Hydrograph: hg,
		PeakFlow:   peak,
		TimeOfPeak: tPeak,
		Volume:     hg.Volume(),
		Dt:         dt,
		Tp:         tp,
	}, nil
}

// excessIncrements returns, for each step k = 1..ceil(24/dt), the excess
// (runoff) rainfall depth ΔQ_k = Q(t_k) - Q(t_{k-1}), where Q is
// cumulative SCS runoff and t_k = k*dt truncated to the 24-hour window.
func excessIncrements(storm rainfall.StormType, totalDepth, cn, lambda, dt float64) ([]float64, error) {
	var out []float64
	prevQ, err := cumulativeRunoffAt(storm, totalDepth, cn, lambda, 0)
	if err != nil {
		return nil, err
	}
	for t := dt; ; t += dt {
		end := t
		if end > 24 {
			end = 24
		}
		q, err := cumulativeRunoffAt(storm, totalDepth, cn, lambda, end)
		if err != nil {
			return nil, err
		}
		out = append(out, q-prevQ)
		prevQ = q
		if end >= 24 {
			break
		}
	}
	return out, nil
}

func cumulativeRunoffAt(storm rainfall.StormType, totalDepth, cn, lambda, t float64) (float64, error) {
	p, err := rainfall.Cumulative(storm, totalDepth, t)
	if err != nil {
		return 0, err
	}
	return runoff.Runoff(cn, p, lambda)
}
