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

// Package pondroute implements C8, Modified Puls storage-indication
// routing: a precomputed lookup turns the per-step nonlinear reservoir
// continuity equation into a single interpolation, the way the teacher's
// storage-indication-adjacent numerical work (e.g. its convective mixing
// solvers in science.go) favors precomputed coefficients over per-step
// root finding.
package pondroute

import (
	"fmt"
	"sort"

	"github.com/alejandroechev/stormlab/hydrograph"
	"github.com/alejandroechev/stormlab/science/outlet"
	"github.com/alejandroechev/stormlab/science/stagestorage"
	"gonum.org/v1/gonum/floats"
)

// tableRows is the number of stages at which the storage-indication
// curve is tabulated (spec: N=200).
const tableRows = 200

// row is one tabulated (indicator, outflow, stage, storage) node of the
// storage-indication curve, ordered by increasing stage (equivalently,
// increasing indicator, since storage and outflow are both monotone in
// stage).
type row struct {
	indicator float64 // 2S/Δt + O
	outflow   float64
	stage     float64
	storage   float64
}

// Result is the routed pond's outflow hydrograph and its peak summary.
type Result struct {
	Outflow         hydrograph.Hydrograph
	PeakInflow      float64
	PeakOutflow     float64
	PeakOutflowTime float64
	PeakStage       float64
	PeakStorage     float64
}

// Route performs Modified Puls storage-indication routing of inflow
// through curve/devices starting from initialWSE (clamped into the
// curve's domain). inflow must have at least 2, uniformly spaced (in
// hours) samples.
func Route(inflow hydrograph.Hydrograph, curve stagestorage.Curve, devices []outlet.Device, initialWSE float64) (Result, error) {
	samples := inflow.Samples
	if len(samples) < 2 {
		return Result{}, fmt.Errorf("pondroute: inflow must have at least 2 samples, got %d", len(samples))
	}
	dtHours := samples[1].Time - samples[0].Time
	if dtHours <= 0 {
		return Result{}, fmt.Errorf("pondroute: inflow timestep must be positive, got %v", dtHours)
	}
	dtSeconds := dtHours * 3600

	wse0 := initialWSE
	if wse0 < curve.MinStage() {
		wse0 = curve.MinStage()
	} else if wse0 > curve.MaxStage() {
		wse0 = curve.MaxStage()
	}

	table := buildTable(curve, devices, dtSeconds)

	out := make([]hydrograph.Sample, len(samples))
	s0 := curve.Storage(wse0)
	o0 := outlet.Composite(devices, wse0)
	out[0] = hydrograph.Sample{Time: samples[0].Time, Flow: o0}

	var res Result
	res.PeakInflow, _ = inflow.Peak()
	res.PeakStage = wse0
	res.PeakStorage = s0
	res.PeakOutflow = o0
	res.PeakOutflowTime = samples[0].Time

	stage, storage, o := wse0, s0, o0
	for k := 0; k < len(samples)-1; k++ {
		rhs := samples[k].Flow + samples[k+1].Flow + (2*storage/dtSeconds - o)
		o, storage, stage = lookup(table, rhs)

		out[k+1] = hydrograph.Sample{Time: samples[k+1].Time, Flow: o}
		if o > res.PeakOutflow {
			res.PeakOutflow = o
			res.PeakOutflowTime = samples[k+1].Time
		}
		if stage > res.PeakStage {
			res.PeakStage = stage
		}
		if storage > res.PeakStorage {
			res.PeakStorage = storage
		}
	}

	res.Outflow = hydrograph.Hydrograph{Samples: out}
	return res, nil
}

// buildTable tabulates (indicator, outflow, stage, storage) at
// tableRows stages evenly spaced across the curve's domain.
func buildTable(curve stagestorage.Curve, devices []outlet.Device, dtSeconds float64) []row {
	stages := floats.Span(make([]float64, tableRows), curve.MinStage(), curve.MaxStage())
	rows := make([]row, tableRows)
	for i, stage := range stages {
		storage := curve.Storage(stage)
		o := outlet.Composite(devices, stage)
		rows[i] = row{
			indicator: 2*storage/dtSeconds + o,
			outflow:   o,
			stage:     stage,
			storage:   storage,
		}
	}
	return rows
}

// lookup interpolates the storage-indication table at the given
// indicator value, clamping at the table's endpoints.
func lookup(table []row, indicator float64) (outflow, storage, stage float64) {
	n := len(table)
	if indicator <= table[0].indicator {
		return table[0].outflow, table[0].storage, table[0].stage
	}
	if indicator >= table[n-1].indicator {
		return table[n-1].outflow, table[n-1].storage, table[n-1].stage
	}
	i := sort.Search(n, func(i int) bool { return table[i].indicator >= indicator })
	lo, hi := table[i-1], table[i]
	frac := (indicator - lo.indicator) / (hi.indicator - lo.indicator)
	outflow = lo.outflow + frac*(hi.outflow-lo.outflow)
	storage = lo.storage + frac*(hi.storage-lo.storage)
	stage = lo.stage + frac*(hi.stage-lo.stage)
	return outflow, storage, stage
}
