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

import "fmt"

// BuildBoundaries converts a frequency vector into its running cumulative
// sums, the lookup structure of the inversion sampling in the drift step.
// The result has the same length and allele order as the input; the first
// element equals the first frequency, the sequence is non-decreasing, and
// the last element carries the total probability mass.
func BuildBoundaries(f []float64) ([]float64, error) {
	if len(f) == 0 {
		return nil, fmt.Errorf("empty frequency vector")
	}
	b := make([]float64, len(f))
	sum := 0.0
	c := 0.0 // compensation term of Kahan's summation
	for i := 0; i < len(f); i++ {
		y := f[i] - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		b[i] = sum
	}
	return b, nil
}
