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

// Package runoff implements the SCS curve-number method (C2): converting
// cumulative rainfall depth to cumulative runoff depth.
package runoff

import "fmt"

// DefaultInitialAbstractionRatio is the standard NRCS λ (Ia = λS).
const DefaultInitialAbstractionRatio = 0.2

// PotentialRetention returns S = 1000/CN - 10, in inches.
func PotentialRetention(cn float64) (float64, error) {
	if cn <= 0 || cn > 100 {
		return 0, fmt.Errorf("runoff: curve number must be in (0,100], got %v", cn)
	}
	return 1000/cn - 10, nil
}

// InitialAbstraction returns Ia = lambda*S, in inches.
func InitialAbstraction(cn, lambda float64) (float64, error) {
	s, err := PotentialRetention(cn)
	if err != nil {
		return 0, err
	}
	return lambda * s, nil
}

// Runoff returns the cumulative runoff depth Q for cumulative rainfall P,
// curve number CN, and initial-abstraction ratio lambda, following
// Q = 0 if P <= Ia, else (P-Ia)^2 / (P-Ia+S).
func Runoff(cn, p, lambda float64) (float64, error) {
	if p < 0 {
		return 0, fmt.Errorf("runoff: rainfall depth must be non-negative, got %v", p)
	}
	s, err := PotentialRetention(cn)
	if err != nil {
		return 0, err
	}
	ia := lambda * s
	return runoffFromRetention(p, ia, s), nil
}

func runoffFromRetention(p, ia, s float64) float64 {
	if p <= ia {
		return 0
	}
	num := p - ia
	return num * num / (num + s)
}
