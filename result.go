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

package stormlab

import "github.com/alejandroechev/stormlab/hydrograph"

// NodeResult is one node's outcome for one event: its outflow
// hydrograph, peak flow and timing, total volume, and (ponds only) the
// peak inflow, stage, and storage.
type NodeResult struct {
	Outflow    hydrograph.Hydrograph
	PeakOutflow float64
	TimeOfPeak  float64
	VolumeAcFt  float64

	// Pond-only fields; zero for every other node kind.
	PeakInflow  float64
	PeakStageFt float64
	PeakStorageFt3 float64
}

// SimulationResult is the output of RunSimulation: the event it ran and
// every node's result keyed by node id.
type SimulationResult struct {
	EventID string
	Results map[string]NodeResult
}
