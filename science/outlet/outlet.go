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

// Package outlet implements the discharge equations of C7's polymorphic
// pond outlet devices (orifice, broad/sharp-crested weir, V-notch weir)
// as a tagged sum type: a single Device interface dispatches to each
// device's own Discharge method, and Composite sums them the way a
// chemical Mechanism's species sum across reactions in the teacher
// codebase's mechanism.go.
package outlet

import "math"

// GravityFtS2 is standard gravity in ft/s^2.
const GravityFtS2 = 32.174

// Device is any pond outlet that can report its discharge at a given
// water-surface elevation. Every implementation returns 0 for
// non-positive head and is monotone non-decreasing above it.
type Device interface {
	Discharge(wse float64) float64
}

// Orifice is a circular submerged orifice.
type Orifice struct {
	Coefficient   float64
	DiameterFt    float64
	CenterElevFt  float64
}

// Discharge returns C*A*sqrt(2*g*H), H = wse - CenterElevFt, 0 if H <= 0.
func (o Orifice) Discharge(wse float64) float64 {
	h := wse - o.CenterElevFt
	if h <= 0 {
		return 0
	}
	area := math.Pi * o.DiameterFt * o.DiameterFt / 4
	return o.Coefficient * area * math.Sqrt(2*GravityFtS2*h)
}

// WeirKind distinguishes the two rectangular weir discharge equations;
// both share the same C*L*H^1.5 form and differ only in coefficient
// convention.
type WeirKind int

const (
	BroadCrested WeirKind = iota
	SharpCrested
)

// Weir is a broad- or sharp-crested rectangular weir.
type Weir struct {
	Kind        WeirKind
	Coefficient float64
	LengthFt    float64
	CrestElevFt float64
}

// Discharge returns C*L*H^1.5, H = wse - CrestElevFt, 0 if H <= 0.
func (w Weir) Discharge(wse float64) float64 {
	h := wse - w.CrestElevFt
	if h <= 0 {
		return 0
	}
	return w.Coefficient * w.LengthFt * math.Pow(h, 1.5)
}

// VNotch is a triangular V-notch weir.
type VNotch struct {
	Coefficient  float64
	AngleDegrees float64 // 0 < theta < 180
	CrestElevFt  float64
}

// Discharge returns C*tan(theta/2)*H^2.5, H = wse - CrestElevFt, 0 if H <= 0.
func (v VNotch) Discharge(wse float64) float64 {
	h := wse - v.CrestElevFt
	if h <= 0 {
		return 0
	}
	thetaRad := v.AngleDegrees * math.Pi / 180
	return v.Coefficient * math.Tan(thetaRad/2) * math.Pow(h, 2.5)
}

// Composite returns the sum of every device's discharge at wse.
func Composite(devices []Device, wse float64) float64 {
	var total float64
	for _, d := range devices {
		total += d.Discharge(wse)
	}
	return total
}
