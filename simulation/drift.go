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
	"math/rand"
	"sort"
)

// DrawEpsilon widens the upper bound of the uniform draw so that a draw is
// always strictly below an achievable boundary. Its magnitude only matters
// for the vanishing-probability case of a draw landing exactly on the top
// boundary; it must stay fixed to keep runs reproducible draw for draw.
const DrawEpsilon = 1e-9

// NextGeneration advances a population one generation under neutral drift
// (Wright-Fisher reproduction): each of the size individuals of the new
// generation picks its allele by inversion sampling against the boundary
// array. The winning bucket is the first index whose cumulative bound
// exceeds the uniform draw. It returns the allele counts of the new
// generation, which sum to size exactly, and the resulting frequency vector.
func NextGeneration(rg *rand.Rand, boundaries []float64, size int) ([]int, []float64, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("population size must be positive (%v)", size)
	}
	if len(boundaries) == 0 {
		return nil, nil, fmt.Errorf("empty boundary array")
	}
	counts := make([]int, len(boundaries))
	total := boundaries[len(boundaries)-1] + DrawEpsilon
	for n := 0; n < size; n++ {
		u := rg.Float64() * total
		i := sort.Search(len(boundaries), func(k int) bool { return u < boundaries[k] })
		if i == len(boundaries) {
			// u landed in the epsilon margin above the top boundary
			i = len(boundaries) - 1
		}
		counts[i]++
	}
	freqs := make([]float64, len(boundaries))
	for i, c := range counts {
		freqs[i] = float64(c) / float64(size)
	}
	return counts, freqs, nil
}
