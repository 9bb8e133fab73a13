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

// Package rainfall implements the NRCS/SCS 24-hour synthetic rainfall
// mass-curve distributions (C1): cumulative and incremental depth as a
// function of storm type and time.
package rainfall

import "fmt"

// StormType identifies one of the four NRCS 24-hour rainfall
// distributions.
type StormType string

// The four NRCS synthetic storm distributions.
const (
	TypeI   StormType = "I"
	TypeIA  StormType = "IA"
	TypeII  StormType = "II"
	TypeIII StormType = "III"
)

// point is one (hour, cumulative-fraction) node of a mass curve.
type point struct {
	hour, frac float64
}

// tables holds the fixed (hour, cumulative fraction) nodes for each storm
// type, each starting at (0,0), ending at (24,1), and non-decreasing in
// fraction. Values are the standard NRCS TR-55 Type I/IA/II/III tables.
var tables = map[StormType][]point{
	TypeI: {
		{0, 0}, {2, .035}, {4, .076}, {6, .125}, {7, .156}, {8, .194},
		{8.5, .219}, {9, .254}, {9.5, .303}, {9.75, .362}, {10, .515},
		{10.5, .583}, {11, .624}, {11.5, .654}, {11.75, .669}, {12, .682},
		{12.5, .706}, {13, .728}, {13.5, .748}, {14, .766}, {16, .83},
		{20, .926}, {24, 1},
	},
	TypeIA: {
		{0, 0}, {2, .05}, {4, .116}, {6, .206}, {7, .268}, {8, .425},
		{8.5, .48}, {9, .52}, {9.5, .554}, {9.75, .57}, {10, .585},
		{10.5, .615}, {11, .645}, {11.5, .68}, {11.75, .7}, {12, .735},
		{12.5, .77}, {13, .795}, {13.5, .82}, {14, .85}, {16, .92},
		{20, .975}, {24, 1},
	},
	TypeII: {
		{0, 0}, {2, .022}, {4, .048}, {6, .08}, {7, .098}, {8, .12},
		{8.5, .133}, {9, .147}, {9.5, .163}, {9.75, .172}, {10, .181},
		{10.5, .204}, {11, .235}, {11.5, .283}, {11.75, .357}, {12, .663},
		{12.5, .735}, {13, .772}, {13.5, .799}, {14, .82}, {16, .88},
		{20, .952}, {24, 1},
	},
	TypeIII: {
		{0, 0}, {2, .02}, {4, .041}, {6, .061}, {7, .074}, {8, .089},
		{8.5, .102}, {9, .115}, {9.5, .133}, {9.75, .146}, {10, .161},
		{10.5, .203}, {11, .252}, {11.5, .42}, {11.75, .546}, {12, .638},
		{12.5, .703}, {13, .748}, {13.5, .781}, {14, .808}, {16, .886},
		{20, .957}, {24, 1},
	},
}

// Fraction returns F(t), the storm type's cumulative fraction of total
// depth at time t (hr), linearly interpolated between table nodes and
// clamped to [0,24].
func Fraction(storm StormType, t float64) (float64, error) {
	tbl, ok := tables[storm]
	if !ok {
		return 0, fmt.Errorf("rainfall: unknown storm type %q", storm)
	}
	if t <= 0 {
		return tbl[0].frac, nil
	}
	if t >= 24 {
		return tbl[len(tbl)-1].frac, nil
	}
	for i := 1; i < len(tbl); i++ {
		if t <= tbl[i].hour {
			lo, hi := tbl[i-1], tbl[i]
			frac := (t - lo.hour) / (hi.hour - lo.hour)
			return lo.frac + frac*(hi.frac-lo.frac), nil
		}
	}
	return tbl[len(tbl)-1].frac, nil
}

// Cumulative returns the cumulative rainfall depth P·F(t) for a storm of
// total depth totalDepth (in) at time t (hr).
func Cumulative(storm StormType, totalDepth, t float64) (float64, error) {
	f, err := Fraction(storm, t)
	if err != nil {
		return 0, err
	}
	return totalDepth * f, nil
}

// Increment is one discrete step of the incremental rainfall series: the
// depth (in) that falls between Time-Δt and Time.
type Increment struct {
	Time  float64 // hr, the end of the interval
	Depth float64 // in, rainfall depth during [Time-Δt, Time]
}

// Incremental breaks the 24-hour storm into steps of width Δt and returns,
// for each step, the rainfall depth that falls during that step:
// totalDepth·[F(t_k) - F(t_{k-1})]. The returned series covers exactly the
// [0,24] window; the final step is truncated to end at 24 if Δt does not
// evenly divide it. Fails if Δt <= 0.
func Incremental(storm StormType, totalDepth, dt float64) ([]Increment, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("rainfall: timestep must be positive, got %v", dt)
	}
	var out []Increment
	prev, err := Cumulative(storm, totalDepth, 0)
	if err != nil {
		return nil, err
	}
	for t := dt; ; t += dt {
		end := t
		if end > 24 {
			end = 24
		}
		cum, err := Cumulative(storm, totalDepth, end)
		if err != nil {
			return nil, err
		}
		out = append(out, Increment{Time: end, Depth: cum - prev})
		prev = cum
		if end >= 24 {
			break
		}
	}
	return out, nil
}
