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

// Package stagestorage implements C6: a monotone piecewise-linear
// elevation<->volume curve, interpolated in both directions, plus the
// three generators (prismatic, conical, cylindrical) that external
// editors use to build one from basin geometry.
package stagestorage

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Point is one (stage, storage) node of a Curve.
type Point struct {
	StageFt     float64
	StorageFt3  float64
}

// Curve is a strictly increasing stage<->storage relationship: both
// StageFt and StorageFt3 increase monotonically along Points.
type Curve struct {
	Points []Point
}

// New validates and builds a Curve from (stage, storage) pairs, which
// must already be sorted by stage and strictly increasing in both axes.
func New(points []Point) (Curve, error) {
	if len(points) < 2 {
		return Curve{}, fmt.Errorf("stagestorage: curve needs at least 2 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].StageFt <= points[i-1].StageFt {
			return Curve{}, fmt.Errorf("stagestorage: stage must strictly increase (point %d)", i)
		}
		if points[i].StorageFt3 <= points[i-1].StorageFt3 {
			return Curve{}, fmt.Errorf("stagestorage: storage must strictly increase (point %d)", i)
		}
	}
	return Curve{Points: points}, nil
}

// MinStage and MaxStage are the curve's domain endpoints.
func (c Curve) MinStage() float64 { return c.Points[0].StageFt }
func (c Curve) MaxStage() float64 { return c.Points[len(c.Points)-1].StageFt }

// Storage returns the piecewise-linear storage volume at the given
// stage, clamped to the curve's endpoints.
func (c Curve) Storage(stage float64) float64 {
	p := c.Points
	if stage <= p[0].StageFt {
		return p[0].StorageFt3
	}
	if stage >= p[len(p)-1].StageFt {
		return p[len(p)-1].StorageFt3
	}
	i := sort.Search(len(p), func(i int) bool { return p[i].StageFt >= stage })
	lo, hi := p[i-1], p[i]
	frac := (stage - lo.StageFt) / (hi.StageFt - lo.StageFt)
	return lo.StorageFt3 + frac*(hi.StorageFt3-lo.StorageFt3)
}

// Stage returns the piecewise-linear stage at the given storage volume,
// clamped to the curve's endpoints.
func (c Curve) Stage(storage float64) float64 {
	p := c.Points
	if storage <= p[0].StorageFt3 {
		return p[0].StageFt
	}
	if storage >= p[len(p)-1].StorageFt3 {
		return p[len(p)-1].StageFt
	}
	i := sort.Search(len(p), func(i int) bool { return p[i].StorageFt3 >= storage })
	lo, hi := p[i-1], p[i]
	frac := (storage - lo.StorageFt3) / (hi.StorageFt3 - lo.StorageFt3)
	return lo.StageFt + frac*(hi.StageFt-lo.StageFt)
}

// stageGrid returns n stages evenly spaced between base and base+depth.
func stageGrid(base, depth float64, n int) []float64 {
	return floats.Span(make([]float64, n), base, base+depth)
}

// Prismatic generates a curve for a rectangular basin with bottom
// dimensions length x width and side slopes zH:1V, using the
// prismoidal formula for volume between successive stages:
// V = h/6 * (A1 + 4*Am + A2).
func Prismatic(base, length, width, sideSlope, depth float64, n int) (Curve, error) {
	if n < 2 {
		return Curve{}, fmt.Errorf("stagestorage: prismatic generator needs n >= 2, got %d", n)
	}
	stages := stageGrid(base, depth, n)
	pts := make([]Point, n)
	pts[0] = Point{StageFt: stages[0], StorageFt3: 0}
	areaAt := func(h float64) float64 {
		l := length + 2*sideSlope*h
		w := width + 2*sideSlope*h
		return l * w
	}
	var cum float64
	for i := 1; i < n; i++ {
		h1 := stages[i-1] - base
		h2 := stages[i] - base
		a1 := areaAt(h1)
		a2 := areaAt(h2)
		am := areaAt((h1 + h2) / 2)
		cum += (h2 - h1) / 6 * (a1 + 4*am + a2)
		pts[i] = Point{StageFt: stages[i], StorageFt3: cum}
	}
	return New(pts)
}

// Conical generates a curve for an inverted-cone basin of base radius r0
// and side slope zH:1V (radius grows z ft per ft of depth), using the
// closed-form cone-frustum volume at each stage.
func Conical(base, radius0, sideSlope, depth float64, n int) (Curve, error) {
	if n < 2 {
		return Curve{}, fmt.Errorf("stagestorage: conical generator needs n >= 2, got %d", n)
	}
	stages := stageGrid(base, depth, n)
	pts := make([]Point, n)
	volAt := func(h float64) float64 {
		r := radius0 + sideSlope*h
		// Frustum of a cone from radius0 at h=0 to r at height h.
		return math.Pi * h / 3 * (radius0*radius0 + radius0*r + r*r)
	}
	for i, s := range stages {
		h := s - base
		pts[i] = Point{StageFt: s, StorageFt3: volAt(h)}
	}
	return New(pts)
}

// Cylindrical generates a curve for a constant-radius cylindrical basin.
func Cylindrical(base, radius, depth float64, n int) (Curve, error) {
	if n < 2 {
		return Curve{}, fmt.Errorf("stagestorage: cylindrical generator needs n >= 2, got %d", n)
	}
	stages := stageGrid(base, depth, n)
	area := math.Pi * radius * radius
	pts := make([]Point, n)
	for i, s := range stages {
		pts[i] = Point{StageFt: s, StorageFt3: area * (s - base)}
	}
	return New(pts)
}
