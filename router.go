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
	"fmt"

	"github.com/alejandroechev/stormlab/hydrograph"
	"github.com/alejandroechev/stormlab/science/pondroute"
	"github.com/alejandroechev/stormlab/science/reachroute"
	"github.com/sirupsen/logrus"
)

// RunSimulation is the core's single primary operation (C12): for a
// Project and an event id, it topologically sorts the nodes, then visits
// each in order, summing upstream outflow (C10), dispatching to the
// per-kind routine, and recording a NodeResult. No node is visited
// before all of its predecessors.
func RunSimulation(p *Project, eventID string) (SimulationResult, error) {
	event, ok := findEvent(p, eventID)
	if !ok {
		return SimulationResult{}, invalidProject("unknown event id", fmt.Errorf("%q", eventID))
	}

	order, err := topologicalSort(p)
	if err != nil {
		return SimulationResult{}, invalidProject("cycle in drainage network", err)
	}

	nodesByID := make(map[string]*Node, len(p.Nodes))
	for i := range p.Nodes {
		nodesByID[p.Nodes[i].ID] = &p.Nodes[i]
	}
	upstreamOf := make(map[string][]string)
	for _, l := range p.Links {
		upstreamOf[l.To] = append(upstreamOf[l.To], l.From)
	}

	results := make(map[string]NodeResult, len(p.Nodes))
	for _, id := range order {
		node := nodesByID[id]
		var upstream []hydrograph.Hydrograph
		for _, u := range upstreamOf[id] {
			upstream = append(upstream, results[u].Outflow)
		}
		inflow := hydrograph.Sum(upstream...)

		log.WithFields(logrus.Fields{
			"event": eventID,
			"node":  id,
			"kind":  node.Data.Kind().String(),
		}).Info("dispatching node")

		res, err := dispatchNode(*node, event, inflow)
		if err != nil {
			return SimulationResult{}, fmt.Errorf("node %q: %w", id, err)
		}
		results[id] = res
	}

	return SimulationResult{EventID: eventID, Results: results}, nil
}

func findEvent(p *Project, eventID string) (RainfallEvent, bool) {
	for _, e := range p.Events {
		if e.ID == eventID {
			return e, true
		}
	}
	return RainfallEvent{}, false
}

// dispatchNode computes one node's NodeResult given the summed upstream
// inflow hydrograph.
func dispatchNode(node Node, event RainfallEvent, inflow hydrograph.Hydrograph) (NodeResult, error) {
	switch data := node.Data.(type) {
	case SubcatchmentData:
		return routeSubcatchment(data, event, inflow)
	case PondData:
		return routePond(node, data, inflow)
	case ReachData:
		return routeReachNode(node, data, inflow)
	case JunctionData:
		return routeJunction(inflow), nil
	default:
		return NodeResult{}, fmt.Errorf("unknown node payload %T", node.Data)
	}
}

func routeSubcatchment(data SubcatchmentData, event RainfallEvent, inflow hydrograph.Hydrograph) (NodeResult, error) {
	uh, err := generateHydrograph(data, event)
	if err != nil {
		return NodeResult{}, err
	}
	runoff := uh.Hydrograph
	outflow := runoff
	if !inflow.Empty() {
		outflow = hydrograph.Sum(runoff, inflow)
	}
	peak, tPeak := outflow.Peak()
	return NodeResult{
		Outflow:     outflow,
		PeakOutflow: peak,
		TimeOfPeak:  tPeak,
		// Open Question 1: volume reported is the pure-runoff volume from
		// C4, not a recomputation over the summed series.
		VolumeAcFt: uh.Volume,
	}, nil
}

func routePond(node Node, data PondData, inflow hydrograph.Hydrograph) (NodeResult, error) {
	if len(inflow.Samples) < 2 {
		log.WithFields(logrus.Fields{"node": node.ID, "kind": "pond"}).Warn("no inflow; reporting empty result")
		return NodeResult{}, nil
	}
	res, err := pondroute.Route(inflow, data.Curve, data.Devices, data.InitialWSEFt)
	if err != nil {
		return NodeResult{}, invalidInput("pond", err)
	}
	return NodeResult{
		Outflow:        res.Outflow,
		PeakOutflow:    res.PeakOutflow,
		TimeOfPeak:     res.PeakOutflowTime,
		VolumeAcFt:     res.Outflow.Volume(),
		PeakInflow:     res.PeakInflow,
		PeakStageFt:    res.PeakStage,
		PeakStorageFt3: res.PeakStorage,
	}, nil
}

func routeReachNode(node Node, data ReachData, inflow hydrograph.Hydrograph) (NodeResult, error) {
	if len(inflow.Samples) < 2 {
		log.WithFields(logrus.Fields{"node": node.ID, "kind": "reach"}).Warn("no inflow; reporting empty result")
		return NodeResult{}, nil
	}
	res, err := reachroute.Route(inflow, data.LengthFt, data.ManningN, data.SlopeFtFt, data.channelShape())
	if err != nil {
		return NodeResult{}, invalidInput("reach", err)
	}
	return NodeResult{
		Outflow:     res.Outflow,
		PeakOutflow: res.PeakOutflow,
		TimeOfPeak:  res.TimeOfPeak,
		VolumeAcFt:  res.Outflow.Volume(),
	}, nil
}

func routeJunction(inflow hydrograph.Hydrograph) NodeResult {
	peak, tPeak := inflow.Peak()
	return NodeResult{
		Outflow:     inflow,
		PeakOutflow: peak,
		TimeOfPeak:  tPeak,
		VolumeAcFt:  inflow.Volume(),
	}
}
