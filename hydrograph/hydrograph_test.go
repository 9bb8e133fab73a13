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

package hydrograph

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestAtClampsBeforeAndAfterRange(t *testing.T) {
	h := New([]float64{1, 2, 3}, []float64{0, 10, 0})
	if got := h.At(0); got != 0 {
		t.Errorf("At(before first sample) = %v, want 0", got)
	}
	if got := h.At(3); got != 0 {
		t.Errorf("At(last sample) = %v, want 0", got)
	}
	if got := h.At(10); got != 0 {
		t.Errorf("At(after last sample) = %v, want last sample's flow 0", got)
	}
}

func TestAtInterpolatesLinearly(t *testing.T) {
	h := New([]float64{0, 2}, []float64{0, 10})
	if got := h.At(1); math.Abs(got-5) > tol {
		t.Errorf("At(1) = %v, want 5", got)
	}
	if got := h.At(0.5); math.Abs(got-2.5) > tol {
		t.Errorf("At(0.5) = %v, want 2.5", got)
	}
}

func TestAtOnEmptyHydrographIsZero(t *testing.T) {
	var h Hydrograph
	if got := h.At(5); got != 0 {
		t.Errorf("At() on empty hydrograph = %v, want 0", got)
	}
}

func TestPeakReturnsMaxFlowAndItsTime(t *testing.T) {
	h := New([]float64{0, 1, 2, 3}, []float64{1, 5, 3, 0})
	flow, time := h.Peak()
	if flow != 5 || time != 1 {
		t.Errorf("Peak() = (%v, %v), want (5, 1)", flow, time)
	}
}

func TestPeakOnEmptyHydrographIsZero(t *testing.T) {
	var h Hydrograph
	flow, time := h.Peak()
	if flow != 0 || time != 0 {
		t.Errorf("Peak() on empty hydrograph = (%v, %v), want (0, 0)", flow, time)
	}
}

func TestVolumeIntegratesTrapezoidally(t *testing.T) {
	// A 1 hr wide, 43560 cfs tall rectangle: 43560 cfs * 3600 s = 3600 * 43560 ft³ = 3600 ac-ft.
	h := New([]float64{0, 1}, []float64{43560, 43560})
	if got := h.Volume(); math.Abs(got-3600) > 1e-6 {
		t.Errorf("Volume() = %v, want 3600", got)
	}
}

func TestVolumeOfTriangularHydrograph(t *testing.T) {
	// Triangle peaking at 2 hr, base 4 hr, peak 100 cfs: area = 0.5*4*100 = 200 cfs-hr.
	h := New([]float64{0, 2, 4}, []float64{0, 100, 0})
	wantAcFt := 200.0 * 3600 / 43560
	if got := h.Volume(); math.Abs(got-wantAcFt) > 1e-9 {
		t.Errorf("Volume() = %v, want %v", got, wantAcFt)
	}
}

func TestVolumeOfDegenerateHydrographIsZero(t *testing.T) {
	var h Hydrograph
	if got := h.Volume(); got != 0 {
		t.Errorf("Volume() on empty hydrograph = %v, want 0", got)
	}
	single := New([]float64{0}, []float64{50})
	if got := single.Volume(); got != 0 {
		t.Errorf("Volume() on single-sample hydrograph = %v, want 0", got)
	}
}

func TestSumOfEmptyHydrographsIsEmpty(t *testing.T) {
	if got := Sum(); !got.Empty() {
		t.Errorf("Sum() with no inputs = %v, want empty", got)
	}
	if got := Sum(Hydrograph{}, Hydrograph{}); !got.Empty() {
		t.Errorf("Sum() of only-empty inputs = %v, want empty", got)
	}
}

func TestSumSkipsEmptyInputsAndKeepsTheOthers(t *testing.T) {
	h := New([]float64{0, 1}, []float64{1, 2})
	got := Sum(Hydrograph{}, h)
	if len(got.Samples) != len(h.Samples) {
		t.Fatalf("Sum() with one empty input = %v samples, want %v", len(got.Samples), len(h.Samples))
	}
	for i := range h.Samples {
		if got.Samples[i] != h.Samples[i] {
			t.Errorf("Sum() sample %d = %v, want %v", i, got.Samples[i], h.Samples[i])
		}
	}
}

func TestSumResamplesOntoUnionOfMisalignedGrids(t *testing.T) {
	// h1 on a 1 hr grid, h2 on a 0.5 hr grid offset from h1's points.
	h1 := New([]float64{0, 1, 2}, []float64{0, 10, 0})
	h2 := New([]float64{0, 0.5, 1, 1.5, 2}, []float64{0, 5, 10, 5, 0})

	got := Sum(h1, h2)

	wantTimes := []float64{0, 0.5, 1, 1.5, 2}
	if len(got.Samples) != len(wantTimes) {
		t.Fatalf("Sum() produced %d samples, want %d (union of both grids)", len(got.Samples), len(wantTimes))
	}
	for i, wt := range wantTimes {
		if got.Samples[i].Time != wt {
			t.Errorf("sample %d time = %v, want %v", i, got.Samples[i].Time, wt)
		}
	}

	// At t=0.5, h1 (no sample there) linearly interpolates to 5; h2 samples 5 directly.
	if got := got.At(0.5); math.Abs(got-10) > tol {
		t.Errorf("Sum().At(0.5) = %v, want 10 (5 interpolated from h1 + 5 from h2)", got)
	}
	// At t=1, both hydrographs sample exactly: 10 + 10 = 20.
	if got := got.At(1); math.Abs(got-20) > tol {
		t.Errorf("Sum().At(1) = %v, want 20", got)
	}
}

func TestSumOfSingleHydrographReturnsItUnchanged(t *testing.T) {
	h := New([]float64{0, 1, 2}, []float64{0, 10, 0})
	got := Sum(h)
	if len(got.Samples) != len(h.Samples) {
		t.Fatalf("Sum() of one hydrograph = %v samples, want %v", len(got.Samples), len(h.Samples))
	}
	for i := range h.Samples {
		if got.Samples[i] != h.Samples[i] {
			t.Errorf("Sum() sample %d = %v, want %v", i, got.Samples[i], h.Samples[i])
		}
	}
}
