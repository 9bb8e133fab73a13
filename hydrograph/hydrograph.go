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

// Package hydrograph holds the time-series type shared by every stage of
// the simulation pipeline (runoff generation, pond/reach routing, and the
// system router) along with the sampling algebra (C10) used to resample,
// align and sum hydrographs produced on different time grids.
package hydrograph

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Sample is one (time, flow) point of a Hydrograph, in hours and cfs.
type Sample struct {
	Time float64
	Flow float64
}

// Hydrograph is a strictly time-increasing series of flow samples. It is
// not restartable and, within a single computation, is usually but not
// necessarily evenly spaced — C10's Sum resamples onto a common grid
// precisely because different nodes produce different spacings.
type Hydrograph struct {
	Samples []Sample
}

// New builds a Hydrograph from parallel time/flow slices. The caller must
// supply strictly increasing times; New does not sort or validate, since
// every producer in this package already emits in time order.
func New(times, flows []float64) Hydrograph {
	s := make([]Sample, len(times))
	for i := range times {
		s[i] = Sample{Time: times[i], Flow: flows[i]}
	}
	return Hydrograph{Samples: s}
}

// Empty reports whether the hydrograph carries no samples.
func (h Hydrograph) Empty() bool { return len(h.Samples) == 0 }

// Times returns the hydrograph's sample times.
func (h Hydrograph) Times() []float64 {
	t := make([]float64, len(h.Samples))
	for i, s := range h.Samples {
		t[i] = s.Time
	}
	return t
}

// Flows returns the hydrograph's sample flows.
func (h Hydrograph) Flows() []float64 {
	f := make([]float64, len(h.Samples))
	for i, s := range h.Samples {
		f[i] = s.Flow
	}
	return f
}

// At linearly interpolates the flow at time t: zero before the first
// sample, the last sample's flow after the last, and linear interpolation
// between bracketing samples otherwise.
func (h Hydrograph) At(t float64) float64 {
	n := len(h.Samples)
	if n == 0 {
		return 0
	}
	if t <= h.Samples[0].Time {
		if t == h.Samples[0].Time {
			return h.Samples[0].Flow
		}
		return 0
	}
	if t >= h.Samples[n-1].Time {
		return h.Samples[n-1].Flow
	}
	// Find the first sample with Time >= t; i-1 and i bracket t.
	i := sort.Search(n, func(i int) bool { return h.Samples[i].Time >= t })
	lo, hi := h.Samples[i-1], h.Samples[i]
	if hi.Time == lo.Time {
		return lo.Flow
	}
	frac := (t - lo.Time) / (hi.Time - lo.Time)
	return lo.Flow + frac*(hi.Flow-lo.Flow)
}

// Peak returns the maximum flow and the time at which it occurs. If the
// hydrograph is empty it returns (0, 0).
func (h Hydrograph) Peak() (flow, time float64) {
	for i, s := range h.Samples {
		if i == 0 || s.Flow > flow {
			flow, time = s.Flow, s.Time
		}
	}
	return flow, time
}

// Volume integrates the hydrograph trapezoidally and converts from
// cfs·hr to acre-feet (1 ac-ft = 43,560 ft³; 1 hr = 3600 s). The per-
// interval trapezoid areas are reduced with gonum's floats.Sum rather than
// an accumulating loop, the same reduction the teacher reaches for whenever
// it folds a slice of per-cell or per-segment quantities into a scalar.
func (h Hydrograph) Volume() float64 {
	n := len(h.Samples)
	if n < 2 {
		return 0
	}
	areas := make([]float64, n-1)
	for i := 1; i < n; i++ {
		dt := h.Samples[i].Time - h.Samples[i-1].Time
		avg := (h.Samples[i].Flow + h.Samples[i-1].Flow) / 2
		areas[i-1] = avg * dt
	}
	return floats.Sum(areas) * 3600 / 43560
}

// Sum forms the union of every input hydrograph's sample times (sorted,
// deduplicated) and, at each common time, sums the linearly-interpolated
// value of each input. This is the sole reason C10 exists: nodes may
// produce hydrographs on different Δt grids (subcatchments auto-select Δt
// from Tc; routers inherit Δt from their inflow), so junction-level
// summation must resample before adding.
func Sum(hs ...Hydrograph) Hydrograph {
	live := make([]Hydrograph, 0, len(hs))
	for _, h := range hs {
		if !h.Empty() {
			live = append(live, h)
		}
	}
	if len(live) == 0 {
		return Hydrograph{}
	}
	if len(live) == 1 {
		return live[0]
	}

	union := commonTimes(live)
	out := Hydrograph{Samples: make([]Sample, len(union))}
	for i, t := range union {
		var flow float64
		for _, h := range live {
			flow += h.At(t)
		}
		out.Samples[i] = Sample{Time: t, Flow: flow}
	}
	return out
}

// commonTimes returns the sorted, deduplicated union of every hydrograph's
// sample times.
func commonTimes(hs []Hydrograph) []float64 {
	seen := make(map[float64]struct{})
	var all []float64
	for _, h := range hs {
		for _, s := range h.Samples {
			if _, ok := seen[s.Time]; !ok {
				seen[s.Time] = struct{}{}
				all = append(all, s.Time)
			}
		}
	}
	sort.Float64s(all)
	return all
}
