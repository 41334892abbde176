// Copyright 2024 the driftsim authors
// This file is part of driftsim, a neutral genetic drift simulator.
//
// driftsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// driftsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with driftsim. If not, see <http://www.gnu.org/licenses/>.

package simulation

import (
	"fmt"
	"math"
)

// SumTolerance is the floating tolerance applied to frequency-vector totals.
const SumTolerance = 1e-9

// CheckFrequencies checks whether f is a valid allele-frequency vector.
// A valid vector has all frequencies in the range [0,1] and a total of one
// within SumTolerance.
func CheckFrequencies(f []float64) error {
	total := 0.0
	c := 0.0 // compensation term of Kahan's summation
	for i := 0; i < len(f); i++ {
		x := f[i]
		if x < 0.0 || x > 1.0 || math.IsNaN(x) {
			return fmt.Errorf("invalid frequency (%v) at index %v", x, i)
		}
		y := x - c
		t := total + y
		c = (t - total) - y
		total = t
	}
	if math.Abs(total-1.0) > SumTolerance {
		return fmt.Errorf("frequencies do not sum to one (%v)", total)
	}
	return nil
}
