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

import "testing"

func TestCompositeCNAreaWeightedAverage(t *testing.T) {
	cases := []struct {
		name  string
		areas []SubArea
		want  float64
	}{
		{
			name: "two sub-areas",
			areas: []SubArea{
				{CN: 75, AreaAcres: 80},
				{CN: 90, AreaAcres: 20},
			},
			want: 78,
		},
		{
			name: "single sub-area",
			areas: []SubArea{
				{CN: 85, AreaAcres: 40},
			},
			want: 85,
		},
		{
			name: "ignores non-positive area entries",
			areas: []SubArea{
				{CN: 75, AreaAcres: 80},
				{CN: 90, AreaAcres: 20},
				{CN: 40, AreaAcres: 0},
			},
			want: 78,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := compositeCN(c.areas, 0)
			if err != nil {
				t.Fatalf("compositeCN() error = %v", err)
			}
			if got != c.want {
				t.Errorf("compositeCN() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCompositeCNOverrideShortCircuits(t *testing.T) {
	areas := []SubArea{{CN: 75, AreaAcres: 80}, {CN: 90, AreaAcres: 20}}
	got, err := compositeCN(areas, 82)
	if err != nil {
		t.Fatalf("compositeCN() error = %v", err)
	}
	if got != 82 {
		t.Errorf("compositeCN() with override = %v, want 82", got)
	}
}

func TestCompositeCNRejectsOutOfRangeCN(t *testing.T) {
	areas := []SubArea{{CN: 150, AreaAcres: 10}}
	if _, err := compositeCN(areas, 0); err == nil {
		t.Error("expected an error for a curve number outside (0,100]")
	}
}

func TestCompositeCNRejectsNoPositiveArea(t *testing.T) {
	areas := []SubArea{{CN: 80, AreaAcres: 0}}
	if _, err := compositeCN(areas, 0); err == nil {
		t.Error("expected an error when no sub-area has positive area")
	}
}

func TestTotalAreaSumsPositiveAreasOnly(t *testing.T) {
	areas := []SubArea{
		{AreaAcres: 80},
		{AreaAcres: 20},
		{AreaAcres: 0},
		{AreaAcres: -5},
	}
	if got := totalArea(areas); got != 100 {
		t.Errorf("totalArea() = %v, want 100", got)
	}
}
