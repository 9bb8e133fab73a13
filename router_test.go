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

import (
	"testing"

	"github.com/alejandroechev/stormlab/science/outlet"
	"github.com/alejandroechev/stormlab/science/rainfall"
	"github.com/alejandroechev/stormlab/science/stagestorage"
)

func detentionPondProject(t *testing.T, totalDepth float64) *Project {
	t.Helper()
	curve, err := stagestorage.Prismatic(100, 100, 50, 1, 10, 50)
	if err != nil {
		t.Fatal(err)
	}
	return &Project{
		ID:   "p1",
		Name: "detention pond demo",
		Nodes: []Node{
			{
				ID:   "basin",
				Name: "North Basin",
				Data: SubcatchmentData{
					SubAreas:            []SubArea{{Description: "mixed", SoilGroup: "C", CN: 70, AreaAcres: 100}},
					CompositeCNOverride: 70,
					TcOverrideHours:     0.5,
				},
			},
			{
				ID:   "pond",
				Name: "Detention Pond",
				Data: PondData{
					Curve: curve,
					Devices: []outlet.Device{
						outlet.Orifice{Coefficient: 0.6, DiameterFt: 1, CenterElevFt: 100.5},
						outlet.Weir{Kind: outlet.BroadCrested, Coefficient: 2.85, LengthFt: 8, CrestElevFt: 106},
					},
					InitialWSEFt: 100,
				},
			},
			{ID: "outlet", Name: "Outlet", Data: JunctionData{}},
		},
		Links: []Link{
			{ID: "l1", From: "basin", To: "pond"},
			{ID: "l2", From: "pond", To: "outlet"},
		},
		Events: []RainfallEvent{
			{ID: "storm", Label: "design storm", StormType: rainfall.TypeII, TotalDepth: totalDepth},
		},
	}
}

func TestScenario4DetentionPond(t *testing.T) {
	p := detentionPondProject(t, 6.0)
	res, err := RunSimulation(p, "storm")
	if err != nil {
		t.Fatal(err)
	}

	basin := res.Results["basin"]
	pond := res.Results["pond"]
	out := res.Results["outlet"]

	if !(basin.PeakOutflow > pond.PeakOutflow) {
		t.Errorf("expected subcatchment peak %v > pond peak outflow %v", basin.PeakOutflow, pond.PeakOutflow)
	}
	if pond.PeakOutflow <= 0 {
		t.Errorf("expected positive pond peak outflow, got %v", pond.PeakOutflow)
	}
	if !(pond.PeakStageFt > 100 && pond.PeakStageFt <= 110) {
		t.Errorf("pond peak stage %v outside (100, 110]", pond.PeakStageFt)
	}
	if diff := out.PeakOutflow - pond.PeakOutflow; diff > 0.05 || diff < -0.05 {
		t.Errorf("junction peak outflow %v should equal pond peak outflow %v within 0.05 cfs", out.PeakOutflow, pond.PeakOutflow)
	}
}

func TestScenario5WorkedBenchmarkOrdering(t *testing.T) {
	small := detentionPondProject(t, 3.2)  // 2-yr
	large := detentionPondProject(t, 8.0)  // 100-yr

	smallRes, err := RunSimulation(small, "storm")
	if err != nil {
		t.Fatal(err)
	}
	largeRes, err := RunSimulation(large, "storm")
	if err != nil {
		t.Fatal(err)
	}

	if !(largeRes.Results["basin"].PeakOutflow > smallRes.Results["basin"].PeakOutflow) {
		t.Error("the 100-yr storm should produce a larger subcatchment peak than the 2-yr storm")
	}
	if !(largeRes.Results["pond"].PeakOutflow > smallRes.Results["pond"].PeakOutflow) {
		t.Error("the 100-yr storm should produce a larger pond peak outflow than the 2-yr storm")
	}
	if !(largeRes.Results["pond"].PeakStageFt > smallRes.Results["pond"].PeakStageFt) {
		t.Error("the 100-yr storm should produce a higher pond peak stage than the 2-yr storm")
	}
}

func TestScenario6CycleIsFatal(t *testing.T) {
	p := &Project{
		Nodes: []Node{
			{ID: "A", Data: JunctionData{}},
			{ID: "B", Data: JunctionData{}},
		},
		Links: []Link{
			{ID: "l1", From: "A", To: "B"},
			{ID: "l2", From: "B", To: "A"},
		},
		Events: []RainfallEvent{{ID: "e1", StormType: rainfall.TypeII, TotalDepth: 1}},
	}
	if _, err := RunSimulation(p, "e1"); err == nil {
		t.Error("expected a fatal cycle error from RunSimulation")
	}
}

func TestUnknownEventIsFatal(t *testing.T) {
	p := detentionPondProject(t, 6.0)
	if _, err := RunSimulation(p, "does-not-exist"); err == nil {
		t.Error("expected a fatal unknown-event error")
	}
}

func TestPondWithoutInflowYieldsEmptyResult(t *testing.T) {
	curve, err := stagestorage.Prismatic(100, 100, 50, 1, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	p := &Project{
		Nodes: []Node{
			{ID: "pond", Data: PondData{
				Curve:        curve,
				Devices:      []outlet.Device{outlet.Orifice{Coefficient: 0.6, DiameterFt: 1, CenterElevFt: 100.5}},
				InitialWSEFt: 100,
			}},
		},
		Events: []RainfallEvent{{ID: "e1", StormType: rainfall.TypeII, TotalDepth: 1}},
	}
	res, err := RunSimulation(p, "e1")
	if err != nil {
		t.Fatal(err)
	}
	pond := res.Results["pond"]
	if pond.PeakOutflow != 0 || !pond.Outflow.Empty() {
		t.Errorf("expected an empty zero-valued result for an upstream-less pond, got %+v", pond)
	}
}
