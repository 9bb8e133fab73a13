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

// Package stormlab is the simulation core: a DAG of hydrologic nodes (C11)
// driven to completion by the system router (C12) over the hydrology
// (rainfall/runoff/Tc/unit-hydrograph) and hydraulics (stage-storage,
// outlet, pond/reach routing) packages under science/.
package stormlab

import (
	"github.com/alejandroechev/stormlab/science/outlet"
	"github.com/alejandroechev/stormlab/science/reachroute"
	"github.com/alejandroechev/stormlab/science/stagestorage"
	"github.com/alejandroechev/stormlab/science/tc"
	"github.com/ctessum/geom"
)

// NodeKind tags which variant a Node's Data field holds.
type NodeKind int

const (
	Subcatchment NodeKind = iota
	Pond
	Reach
	Junction
)

func (k NodeKind) String() string {
	switch k {
	case Subcatchment:
		return "subcatchment"
	case Pond:
		return "pond"
	case Reach:
		return "reach"
	case Junction:
		return "junction"
	default:
		return "unknown"
	}
}

// NodePayload is the tagged-sum-type marker for a Node's variant data,
// mirroring the Device interface in science/outlet: a single Kind method
// reports the variant for logging and serialization, while the system
// router dispatches on the concrete payload type with a type switch.
type NodePayload interface {
	Kind() NodeKind
}

// Node is one element of a Project's drainage network: a stable
// identifier, a display name, a diagram position opaque to the core, and
// a tagged variant payload.
type Node struct {
	ID       string
	Name     string
	Position geom.Point
	Data     NodePayload
}

// SubArea is one homogeneous piece of a Subcatchment's land area, with
// its own hydrologic soil group and curve number.
type SubArea struct {
	Description string
	SoilGroup   string // one of A, B, C, D
	CN          float64
	AreaAcres   float64
}

// SubcatchmentData is the payload of a Subcatchment node: the land areas
// that determine composite CN, the flow segments that determine Tc (C3),
// and optional overrides for both.
type SubcatchmentData struct {
	SubAreas     []SubArea
	FlowSegments []tc.Segment

	// TcOverrideHours, if > 0, replaces the C3 sum of FlowSegments.
	TcOverrideHours float64
	// CompositeCNOverride, if > 0, replaces the area-weighted composite CN.
	CompositeCNOverride float64
}

func (SubcatchmentData) Kind() NodeKind { return Subcatchment }

// PondData is the payload of a Pond node: a stage-storage curve, its
// outlet devices, and the initial water-surface elevation (clamped into
// the curve's domain by the router, never a failure).
type PondData struct {
	Curve            stagestorage.Curve
	Devices          []outlet.Device
	InitialWSEFt     float64
}

func (PondData) Kind() NodeKind { return Pond }

// ReachShape is the tagged cross-section of a Reach node, mirroring
// science/reachroute.Shape but keeping the project model free of a
// science/ import cycle concern: the router builds the concrete
// reachroute.Shape from these fields when it routes.
type ReachShape int

const (
	RectangularShape ReachShape = iota
	TrapezoidalShape
	CircularShape
)

// ReachData is the payload of a Reach node: Manning kinematic routing
// geometry (C9).
type ReachData struct {
	LengthFt    float64
	ManningN    float64
	SlopeFtFt   float64
	Shape       ReachShape
	WidthFt     float64 // rectangular
	BottomWidthFt float64 // trapezoidal
	SideSlopeHV float64 // trapezoidal
	DiameterFt  float64 // circular
}

func (ReachData) Kind() NodeKind { return Reach }

// channelShape converts ReachData's tagged fields into a concrete
// reachroute.Shape.
func (r ReachData) channelShape() reachroute.Shape {
	switch r.Shape {
	case TrapezoidalShape:
		return reachroute.Trapezoidal{BottomWidthFt: r.BottomWidthFt, SideSlopeHV: r.SideSlopeHV}
	case CircularShape:
		return reachroute.Circular{DiameterFt: r.DiameterFt}
	default:
		return reachroute.Rectangular{WidthFt: r.WidthFt}
	}
}

// JunctionData is the payload of a Junction node: a flow-through point
// with no hydrologic computation of its own.
type JunctionData struct{}

func (JunctionData) Kind() NodeKind { return Junction }
