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
	"math"

	"github.com/alejandroechev/stormlab/science/tc"
	"github.com/alejandroechev/stormlab/science/unithydrograph"
)

// compositeCN returns the area-weighted composite curve number of areas,
// rounded to the nearest integer, unless override is positive.
func compositeCN(areas []SubArea, override float64) (float64, error) {
	if override > 0 {
		return override, nil
	}
	var totalArea, weighted float64
	for _, a := range areas {
		if a.AreaAcres <= 0 {
			continue
		}
		if a.CN <= 0 || a.CN > 100 {
			return 0, invalidInput("subArea.CN", fmt.Errorf("curve number %v out of range (0,100]", a.CN))
		}
		totalArea += a.AreaAcres
		weighted += a.CN * a.AreaAcres
	}
	if totalArea <= 0 {
		return 0, invalidInput("subAreas", fmt.Errorf("no sub-area with positive area"))
	}
	return math.Round(weighted / totalArea), nil
}

// totalArea sums the positive-area sub-areas of a Subcatchment.
func totalArea(areas []SubArea) float64 {
	var total float64
	for _, a := range areas {
		if a.AreaAcres > 0 {
			total += a.AreaAcres
		}
	}
	return total
}

// calculateTc returns the Subcatchment's time of concentration: the
// override if positive, else the C3 sum over segments.
func calculateTc(segments []tc.Segment, override float64) (float64, error) {
	if override > 0 {
		return override, nil
	}
	total, err := tc.Calculate(segments)
	if err != nil {
		return 0, invalidInput("flowSegments", err)
	}
	if total <= 0 {
		return 0, invalidInput("flowSegments", fmt.Errorf("time of concentration must be positive, got %v", total))
	}
	return total, nil
}

// generateHydrograph composes C1-C4 into a runoff hydrograph (C5) for a
// Subcatchment node under the given event.
func generateHydrograph(data SubcatchmentData, event RainfallEvent) (unithydrograph.Result, error) {
	cn, err := compositeCN(data.SubAreas, data.CompositeCNOverride)
	if err != nil {
		return unithydrograph.Result{}, err
	}
	area := totalArea(data.SubAreas)
	tcHours, err := calculateTc(data.FlowSegments, data.TcOverrideHours)
	if err != nil {
		return unithydrograph.Result{}, err
	}

	res, err := unithydrograph.Generate(unithydrograph.Params{
		AreaAcres:  area,
		CN:         cn,
		TcHours:    tcHours,
		Storm:      event.StormType,
		TotalDepth: event.TotalDepth,
	})
	if err != nil {
		return unithydrograph.Result{}, invalidInput("subcatchment", err)
	}
	return res, nil
}
