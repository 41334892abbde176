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
)

// DrawSample models the sampling error of observing only sampleSize
// individuals of a population whose true allele composition is freqs. It
// materializes a pool of individuals with round(freq*size) copies per allele
// (round half up, so the pool length can deviate from size), permutes the
// pool with an unbiased Fisher-Yates pass, and tallies a prefix of the
// permutation. It returns the allele counts of the sample and the observed
// frequency vector in the same allele order as freqs.
//
// The observed frequencies divide by the requested sample size even when the
// pool is smaller than the request, so a truncated sample sums to less than
// one. The truncation itself is silent.
func DrawSample(rg *rand.Rand, freqs []float64, size, sampleSize int) ([]int, []float64, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("population size must be positive (%v)", size)
	}
	if sampleSize <= 0 {
		return nil, nil, fmt.Errorf("sample size must be positive (%v)", sampleSize)
	}
	if len(freqs) == 0 {
		return nil, nil, fmt.Errorf("empty frequency vector")
	}

	// materialize the pool, one entry per individual
	pool := make([]int, 0, size)
	for i := 0; i < len(freqs); i++ {
		n := int(freqs[i]*float64(size) + 0.5)
		for k := 0; k < n; k++ {
			pool = append(pool, i)
		}
	}

	// unbiased in-place permutation
	for i := len(pool) - 1; i > 0; i-- {
		j := rg.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	take := sampleSize
	if take > len(pool) {
		take = len(pool)
	}
	counts := make([]int, len(freqs))
	for _, a := range pool[:take] {
		counts[a]++
	}
	observed := make([]float64, len(freqs))
	for i, c := range counts {
		observed[i] = float64(c) / float64(sampleSize)
	}
	return counts, observed, nil
}
