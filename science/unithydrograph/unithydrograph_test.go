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

package unithydrograph

import (
	"math"
	"testing"

	"github.com/alejandroechev/stormlab/science/rainfall"
	"github.com/alejandroechev/stormlab/science/runoff"
)

// Volume-conservation law: |integral Q dt (ac-ft) - (Q_total_inches*area/12)| / expected <= 0.10.
func TestVolumeConservation(t *testing.T) {
	p := Params{AreaAcres: 100, CN: 75, TcHours: 0.5, Storm: rainfall.TypeII, TotalDepth: 5.0}
	res, err := Generate(p)
	if err != nil {
		t.Fatal(err)
	}

	totalRunoffIn, err := runoff.Runoff(p.CN, p.TotalDepth, runoff.DefaultInitialAbstractionRatio)
	if err != nil {
		t.Fatal(err)
	}
	expected := totalRunoffIn * p.AreaAcres / 12
	diff := math.Abs(res.Volume-expected) / expected
	if diff > 0.10 {
		t.Errorf("volume conservation violated: got %v ac-ft, expected %v ac-ft (%.1f%% off)",
			res.Volume, expected, diff*100)
	}
}

func TestPeakIsPositive(t *testing.T) {
	p := Params{AreaAcres: 50, CN: 80, TcHours: 0.75, Storm: rainfall.TypeII, TotalDepth: 4.0}
	res, err := Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	if res.PeakFlow <= 0 {
		t.Errorf("peak flow = %v, want > 0", res.PeakFlow)
	}
	if res.TimeOfPeak <= 0 {
		t.Errorf("time of peak = %v, want > 0", res.TimeOfPeak)
	}
}

func TestDtOverride(t *testing.T) {
	p := Params{AreaAcres: 50, CN: 80, TcHours: 0.75, Storm: rainfall.TypeII, TotalDepth: 4.0, DtOverride: 0.05}
	res, err := Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dt != 0.05 {
		t.Errorf("Dt = %v, want override 0.05", res.Dt)
	}
}

func TestInvalidArea(t *testing.T) {
	p := Params{AreaAcres: 0, CN: 80, TcHours: 0.5, Storm: rainfall.TypeII, TotalDepth: 4.0}
	if _, err := Generate(p); err == nil {
		t.Error("expected error for zero area")
	}
}

func TestInvalidTc(t *testing.T) {
	p := Params{AreaAcres: 10, CN: 80, TcHours: 0, Storm: rainfall.TypeII, TotalDepth: 4.0}
	if _, err := Generate(p); err == nil {
		t.Error("expected error for zero Tc")
	}
}
