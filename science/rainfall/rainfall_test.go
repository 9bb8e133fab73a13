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

package rainfall

import (
	"math"
	"testing"
)

const tol = 0.01

func TestEndpoints(t *testing.T) {
	for _, storm := range []StormType{TypeI, TypeIA, TypeII, TypeIII} {
		f0, err := Fraction(storm, 0)
		if err != nil {
			t.Fatal(err)
		}
		if f0 != 0 {
			t.Errorf("%s: F(0) = %v, want 0", storm, f0)
		}
		f24, err := Fraction(storm, 24)
		if err != nil {
			t.Fatal(err)
		}
		if f24 != 1 {
			t.Errorf("%s: F(24) = %v, want 1", storm, f24)
		}
	}
}

func TestMonotone(t *testing.T) {
	for _, storm := range []StormType{TypeI, TypeIA, TypeII, TypeIII} {
		prev := -1.0
		for tt := 0.0; tt <= 24; tt += 0.25 {
			f, err := Fraction(storm, tt)
			if err != nil {
				t.Fatal(err)
			}
			if f < prev {
				t.Errorf("%s: F not non-decreasing at t=%v (%v < %v)", storm, tt, f, prev)
			}
			prev = f
		}
	}
}

// Scenario 2 — cumulative Type II: P=5.0 in at t=12 hr -> 5.0*0.663 = 3.315 in.
func TestScenario2CumulativeTypeII(t *testing.T) {
	got, err := Cumulative(TypeII, 5.0, 12)
	if err != nil {
		t.Fatal(err)
	}
	want := 3.315
	if math.Abs(got-want) > tol {
		t.Errorf("Cumulative(TypeII, 5.0, 12) = %v, want %v +/- %v", got, want, tol)
	}
}

func TestClamp(t *testing.T) {
	low, err := Fraction(TypeII, -5)
	if err != nil {
		t.Fatal(err)
	}
	if low != 0 {
		t.Errorf("F(-5) = %v, want 0", low)
	}
	high, err := Fraction(TypeII, 100)
	if err != nil {
		t.Fatal(err)
	}
	if high != 1 {
		t.Errorf("F(100) = %v, want 1", high)
	}
}

func TestIncrementalCoversWindow(t *testing.T) {
	incs, err := Incremental(TypeII, 5.0, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(incs) == 0 {
		t.Fatal("no increments returned")
	}
	last := incs[len(incs)-1]
	if math.Abs(last.Time-24) > 1e-9 {
		t.Errorf("last increment time = %v, want 24", last.Time)
	}
	var sum float64
	for _, inc := range incs {
		if inc.Depth < -1e-9 {
			t.Errorf("negative increment depth %v at t=%v", inc.Depth, inc.Time)
		}
		sum += inc.Depth
	}
	if math.Abs(sum-5.0) > 0.02 {
		t.Errorf("sum of increments = %v, want ~5.0", sum)
	}
}

func TestIncrementalRejectsNonPositiveStep(t *testing.T) {
	if _, err := Incremental(TypeII, 5.0, 0); err == nil {
		t.Error("expected error for dt=0")
	}
	if _, err := Incremental(TypeII, 5.0, -1); err == nil {
		t.Error("expected error for dt<0")
	}
}

func TestUnknownStormType(t *testing.T) {
	if _, err := Fraction(StormType("V"), 1); err == nil {
		t.Error("expected error for unknown storm type")
	}
}
