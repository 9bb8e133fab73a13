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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alejandroechev/stormlab/science/outlet"
	"github.com/alejandroechev/stormlab/science/rainfall"
	"github.com/alejandroechev/stormlab/science/stagestorage"
	"github.com/alejandroechev/stormlab/science/tc"
	"github.com/ctessum/geom"
)

// Project is the root entity: a drainage network (Nodes, Links) and the
// rainfall events it can be simulated against.
type Project struct {
	ID          string
	Name        string
	Description string
	Nodes       []Node
	Links       []Link
	Events      []RainfallEvent
}

// Load reads and parses a native project file from r.
func Load(r io.Reader) (*Project, error) {
	var doc jsonProject
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("stormlab: decoding project: %w", err)
	}
	return doc.toProject()
}

// LoadFile opens path and parses it as a native project file.
func LoadFile(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stormlab: opening project file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Save serializes p as a native project file to w.
func Save(w io.Writer, p *Project) error {
	doc := fromProject(p)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("stormlab: encoding project: %w", err)
	}
	return nil
}

// --- native JSON wire format ---

type jsonPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonSubArea struct {
	Description string  `json:"description"`
	SoilGroup   string  `json:"soilGroup"`
	CN          float64 `json:"cn"`
	AreaAcres   float64 `json:"areaAcres"`
}

type jsonFlowSegment struct {
	Kind string `json:"kind"` // sheet, shallow, channel

	ManningN    float64 `json:"manningN,omitempty"`
	LengthFt    float64 `json:"lengthFt,omitempty"`
	SlopeFtFt   float64 `json:"slopeFtFt,omitempty"`
	TwoYr24hrP2 float64 `json:"twoYr24hrP2,omitempty"`

	ShallowSurface string `json:"shallowSurface,omitempty"` // paved, unpaved

	ChannelManningN     float64 `json:"channelManningN,omitempty"`
	ChannelAreaFt2      float64 `json:"channelAreaFt2,omitempty"`
	WettedPerimeterFt   float64 `json:"wettedPerimeterFt,omitempty"`
}

type jsonOutletDevice struct {
	Kind string `json:"kind"` // orifice, weir, vNotch

	Coefficient  float64 `json:"coefficient"`
	DiameterFt   float64 `json:"diameterFt,omitempty"`
	CenterElevFt float64 `json:"centerElevFt,omitempty"`

	WeirKind    string  `json:"weirKind,omitempty"` // broadCrested, sharpCrested
	LengthFt    float64 `json:"lengthFt,omitempty"`
	CrestElevFt float64 `json:"crestElevFt,omitempty"`

	AngleDegrees float64 `json:"angleDegrees,omitempty"`
}

type jsonStagePoint struct {
	StageFt    float64 `json:"stageFt"`
	StorageFt3 float64 `json:"storageFt3"`
}

type jsonNodeData struct {
	// Subcatchment
	SubAreas            []jsonSubArea     `json:"subAreas,omitempty"`
	FlowSegments        []jsonFlowSegment `json:"flowSegments,omitempty"`
	TcOverrideHours     float64           `json:"tcOverrideHours,omitempty"`
	CompositeCNOverride float64           `json:"compositeCNOverride,omitempty"`

	// Pond
	StageStorageCurve []jsonStagePoint   `json:"stageStorageCurve,omitempty"`
	OutletDevices     []jsonOutletDevice `json:"outletDevices,omitempty"`
	InitialWSEFt      float64            `json:"initialWSEFt,omitempty"`

	// Reach
	LengthFt      float64 `json:"lengthFt,omitempty"`
	ManningN      float64 `json:"manningN,omitempty"`
	SlopeFtFt     float64 `json:"slopeFtFt,omitempty"`
	Shape         string  `json:"shape,omitempty"` // rectangular, trapezoidal, circular
	WidthFt       float64 `json:"widthFt,omitempty"`
	BottomWidthFt float64 `json:"bottomWidthFt,omitempty"`
	SideSlopeHV   float64 `json:"sideSlopeHV,omitempty"`
	DiameterFt    float64 `json:"diameterFt,omitempty"`
}

type jsonNode struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	Position jsonPosition `json:"position"`
	Data     jsonNodeData `json:"data"`
}

type jsonLink struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

type jsonEvent struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	StormType  string  `json:"stormType"`
	TotalDepth float64 `json:"totalDepth"`
}

type jsonProject struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Nodes       []jsonNode  `json:"nodes"`
	Links       []jsonLink  `json:"links"`
	Events      []jsonEvent `json:"events"`
}

func (doc *jsonProject) toProject() (*Project, error) {
	p := &Project{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
	}

	for _, jn := range doc.Nodes {
		data, err := jn.Data.toPayload(jn.Type)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", jn.ID, err)
		}
		p.Nodes = append(p.Nodes, Node{
			ID:       jn.ID,
			Name:     jn.Name,
			Position: geom.Point{X: jn.Position.X, Y: jn.Position.Y},
			Data:     data,
		})
	}
	for _, jl := range doc.Links {
		p.Links = append(p.Links, Link{ID: jl.ID, From: jl.From, To: jl.To})
	}
	for _, je := range doc.Events {
		p.Events = append(p.Events, RainfallEvent{
			ID:         je.ID,
			Label:      je.Label,
			StormType:  rainfall.StormType(je.StormType),
			TotalDepth: je.TotalDepth,
		})
	}
	return p, nil
}

func (d jsonNodeData) toPayload(nodeType string) (NodePayload, error) {
	switch nodeType {
	case "subcatchment":
		areas := make([]SubArea, len(d.SubAreas))
		for i, a := range d.SubAreas {
			areas[i] = SubArea{
				Description: a.Description,
				SoilGroup:   a.SoilGroup,
				CN:          a.CN,
				AreaAcres:   a.AreaAcres,
			}
		}
		segs := make([]tc.Segment, len(d.FlowSegments))
		for i, s := range d.FlowSegments {
			seg, err := s.toSegment()
			if err != nil {
				return nil, err
			}
			segs[i] = seg
		}
		return SubcatchmentData{
			SubAreas:            areas,
			FlowSegments:        segs,
			TcOverrideHours:     d.TcOverrideHours,
			CompositeCNOverride: d.CompositeCNOverride,
		}, nil
	case "pond":
		pts := make([]stagestorage.Point, len(d.StageStorageCurve))
		for i, pt := range d.StageStorageCurve {
			pts[i] = stagestorage.Point{StageFt: pt.StageFt, StorageFt3: pt.StorageFt3}
		}
		curve, err := stagestorage.New(pts)
		if err != nil {
			return nil, fmt.Errorf("stage-storage curve: %w", err)
		}
		devices := make([]outlet.Device, len(d.OutletDevices))
		for i, od := range d.OutletDevices {
			dev, err := od.toDevice()
			if err != nil {
				return nil, err
			}
			devices[i] = dev
		}
		return PondData{
			Curve:        curve,
			Devices:      devices,
			InitialWSEFt: d.InitialWSEFt,
		}, nil
	case "reach":
		shape, err := parseReachShape(d.Shape)
		if err != nil {
			return nil, err
		}
		return ReachData{
			LengthFt:      d.LengthFt,
			ManningN:      d.ManningN,
			SlopeFtFt:     d.SlopeFtFt,
			Shape:         shape,
			WidthFt:       d.WidthFt,
			BottomWidthFt: d.BottomWidthFt,
			SideSlopeHV:   d.SideSlopeHV,
			DiameterFt:    d.DiameterFt,
		}, nil
	case "junction":
		return JunctionData{}, nil
	default:
		return nil, fmt.Errorf("unknown node type %q", nodeType)
	}
}

func (s jsonFlowSegment) toSegment() (tc.Segment, error) {
	switch s.Kind {
	case "sheet":
		return tc.Segment{
			Kind:        tc.Sheet,
			ManningN:    s.ManningN,
			Length:      s.LengthFt,
			Slope:       s.SlopeFtFt,
			TwoYr24hrP2: s.TwoYr24hrP2,
		}, nil
	case "shallow":
		surf := tc.Unpaved
		if s.ShallowSurface == "paved" {
			surf = tc.Paved
		}
		return tc.Segment{
			Kind:          tc.ShallowConcentrated,
			ShallowLength: s.LengthFt,
			ShallowSlope:  s.SlopeFtFt,
			ShallowSurf:   surf,
		}, nil
	case "channel":
		return tc.Segment{
			Kind:            tc.Channel,
			ChannelLength:   s.LengthFt,
			ChannelSlope:    s.SlopeFtFt,
			ChannelManningN: s.ChannelManningN,
			ChannelArea:     s.ChannelAreaFt2,
			WettedPerimeter: s.WettedPerimeterFt,
		}, nil
	default:
		return tc.Segment{}, fmt.Errorf("unknown flow segment kind %q", s.Kind)
	}
}

func (od jsonOutletDevice) toDevice() (outlet.Device, error) {
	switch od.Kind {
	case "orifice":
		return outlet.Orifice{
			Coefficient:  od.Coefficient,
			DiameterFt:   od.DiameterFt,
			CenterElevFt: od.CenterElevFt,
		}, nil
	case "weir":
		kind := outlet.BroadCrested
		if od.WeirKind == "sharpCrested" {
			kind = outlet.SharpCrested
		}
		return outlet.Weir{
			Kind:        kind,
			Coefficient: od.Coefficient,
			LengthFt:    od.LengthFt,
			CrestElevFt: od.CrestElevFt,
		}, nil
	case "vNotch":
		return outlet.VNotch{
			Coefficient:  od.Coefficient,
			AngleDegrees: od.AngleDegrees,
			CrestElevFt:  od.CrestElevFt,
		}, nil
	default:
		return nil, fmt.Errorf("unknown outlet device kind %q", od.Kind)
	}
}

func parseReachShape(s string) (ReachShape, error) {
	switch s {
	case "rectangular", "":
		return RectangularShape, nil
	case "trapezoidal":
		return TrapezoidalShape, nil
	case "circular":
		return CircularShape, nil
	default:
		return 0, fmt.Errorf("unknown reach shape %q", s)
	}
}

func fromProject(p *Project) jsonProject {
	doc := jsonProject{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
	for _, n := range p.Nodes {
		doc.Nodes = append(doc.Nodes, jsonNode{
			ID:       n.ID,
			Name:     n.Name,
			Type:     n.Data.Kind().String(),
			Position: jsonPosition{X: n.Position.X, Y: n.Position.Y},
			Data:     fromPayload(n.Data),
		})
	}
	for _, l := range p.Links {
		doc.Links = append(doc.Links, jsonLink{ID: l.ID, From: l.From, To: l.To})
	}
	for _, e := range p.Events {
		doc.Events = append(doc.Events, jsonEvent{
			ID:         e.ID,
			Label:      e.Label,
			StormType:  string(e.StormType),
			TotalDepth: e.TotalDepth,
		})
	}
	return doc
}

func fromPayload(data NodePayload) jsonNodeData {
	switch d := data.(type) {
	case SubcatchmentData:
		areas := make([]jsonSubArea, len(d.SubAreas))
		for i, a := range d.SubAreas {
			areas[i] = jsonSubArea{
				Description: a.Description,
				SoilGroup:   a.SoilGroup,
				CN:          a.CN,
				AreaAcres:   a.AreaAcres,
			}
		}
		segs := make([]jsonFlowSegment, len(d.FlowSegments))
		for i, s := range d.FlowSegments {
			segs[i] = fromSegment(s)
		}
		return jsonNodeData{
			SubAreas:            areas,
			FlowSegments:        segs,
			TcOverrideHours:     d.TcOverrideHours,
			CompositeCNOverride: d.CompositeCNOverride,
		}
	case PondData:
		pts := make([]jsonStagePoint, len(d.Curve.Points))
		for i, pt := range d.Curve.Points {
			pts[i] = jsonStagePoint{StageFt: pt.StageFt, StorageFt3: pt.StorageFt3}
		}
		devices := make([]jsonOutletDevice, len(d.Devices))
		for i, dev := range d.Devices {
			devices[i] = fromDevice(dev)
		}
		return jsonNodeData{
			StageStorageCurve: pts,
			OutletDevices:     devices,
			InitialWSEFt:      d.InitialWSEFt,
		}
	case ReachData:
		return jsonNodeData{
			LengthFt:      d.LengthFt,
			ManningN:      d.ManningN,
			SlopeFtFt:     d.SlopeFtFt,
			Shape:         reachShapeName(d.Shape),
			WidthFt:       d.WidthFt,
			BottomWidthFt: d.BottomWidthFt,
			SideSlopeHV:   d.SideSlopeHV,
			DiameterFt:    d.DiameterFt,
		}
	default:
		return jsonNodeData{}
	}
}

func fromSegment(s tc.Segment) jsonFlowSegment {
	switch s.Kind {
	case tc.Sheet:
		return jsonFlowSegment{
			Kind:        "sheet",
			ManningN:    s.ManningN,
			LengthFt:    s.Length,
			SlopeFtFt:   s.Slope,
			TwoYr24hrP2: s.TwoYr24hrP2,
		}
	case tc.ShallowConcentrated:
		surf := "unpaved"
		if s.ShallowSurf == tc.Paved {
			surf = "paved"
		}
		return jsonFlowSegment{
			Kind:           "shallow",
			LengthFt:       s.ShallowLength,
			SlopeFtFt:      s.ShallowSlope,
			ShallowSurface: surf,
		}
	default:
		return jsonFlowSegment{
			Kind:                "channel",
			LengthFt:            s.ChannelLength,
			SlopeFtFt:           s.ChannelSlope,
			ChannelManningN:     s.ChannelManningN,
			ChannelAreaFt2:      s.ChannelArea,
			WettedPerimeterFt:   s.WettedPerimeter,
		}
	}
}

func fromDevice(dev outlet.Device) jsonOutletDevice {
	switch d := dev.(type) {
	case outlet.Orifice:
		return jsonOutletDevice{Kind: "orifice", Coefficient: d.Coefficient, DiameterFt: d.DiameterFt, CenterElevFt: d.CenterElevFt}
	case outlet.Weir:
		kind := "broadCrested"
		if d.Kind == outlet.SharpCrested {
			kind = "sharpCrested"
		}
		return jsonOutletDevice{Kind: "weir", Coefficient: d.Coefficient, WeirKind: kind, LengthFt: d.LengthFt, CrestElevFt: d.CrestElevFt}
	case outlet.VNotch:
		return jsonOutletDevice{Kind: "vNotch", Coefficient: d.Coefficient, AngleDegrees: d.AngleDegrees, CrestElevFt: d.CrestElevFt}
	default:
		return jsonOutletDevice{}
	}
}

func reachShapeName(s ReachShape) string {
	switch s {
	case TrapezoidalShape:
		return "trapezoidal"
	case CircularShape:
		return "circular"
	default:
		return "rectangular"
	}
}
