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
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_FullSampleReproducesFrequencies(t *testing.T) {
	// sampling the whole pool removes all sampling error
	rg := rand.New(rand.NewSource(1))
	freqs := []float64{0.25, 0.25, 0.5}
	_, observed, err := DrawSample(rg, freqs, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, freqs, observed)

	freqs = []float64{0.5, 0.3, 0.2}
	_, observed, err = DrawSample(rg, freqs, 1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, freqs, observed)
}

func TestSample_ObservedFrequenciesAreSampleMultiples(t *testing.T) {
	rg := rand.New(rand.NewSource(7))
	freqs := []float64{0.667, 0.083, 0.250}
	counts, observed, err := DrawSample(rg, freqs, 10000, 12)
	require.NoError(t, err)

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 12, total)

	sum := 0.0
	for i, f := range observed {
		assert.InDelta(t, math.Round(f*12), f*12, 1e-9, "allele %d", i)
		sum += f
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestSample_TruncationIsSilent(t *testing.T) {
	// ten alleles at 0.1 over a pool of 44 individuals round down to a pool
	// of 40; a request for 50 silently truncates but still divides by 50
	rg := rand.New(rand.NewSource(11))
	freqs := make([]float64, 10)
	for i := range freqs {
		freqs[i] = 0.1
	}
	counts, observed, err := DrawSample(rg, freqs, 44, 50)
	require.NoError(t, err)

	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 40, total)

	sum := 0.0
	for _, f := range observed {
		sum += f
	}
	assert.InDelta(t, 0.8, sum, 1e-9)
}

func TestSample_Deterministic(t *testing.T) {
	freqs := []float64{0.55, 0.45}
	c1, o1, err := DrawSample(rand.New(rand.NewSource(1234)), freqs, 10000, 20)
	require.NoError(t, err)
	c2, o2, err := DrawSample(rand.New(rand.NewSource(1234)), freqs, 10000, 20)
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
	assert.Equal(t, o1, o2)
}

func TestSample_Preconditions(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	_, _, err := DrawSample(rg, []float64{0.5, 0.5}, 10, 0)
	assert.Error(t, err)
	_, _, err = DrawSample(rg, []float64{0.5, 0.5}, 0, 10)
	assert.Error(t, err)
	_, _, err = DrawSample(rg, nil, 10, 10)
	assert.Error(t, err)
}
