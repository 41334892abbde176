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

// AlleleFrequency pairs an allele label with its relative frequency.
type AlleleFrequency struct {
	Label     string
	Frequency float64
}

// PopulationRecord describes one population as read from the input file:
// the idealized breeding population size, the number of individuals observed
// when sampling, and the baseline allele frequencies. Records are treated as
// immutable by the simulation; every replicate iteration works on a fresh
// copy of the baseline.
type PopulationRecord struct {
	Name       string
	Size       int // breeding population size (Np)
	SampleSize int // observed sample size (Ns)
	Baseline   []AlleleFrequency
}

// Validate checks the preconditions of a record before simulation.
func (r *PopulationRecord) Validate() error {
	if r.Size <= 0 {
		return fmt.Errorf("population %v: population size must be positive (%v)", r.Name, r.Size)
	}
	if r.SampleSize <= 0 {
		return fmt.Errorf("population %v: sample size must be positive (%v)", r.Name, r.SampleSize)
	}
	if len(r.Baseline) == 0 {
		return fmt.Errorf("population %v: record has no alleles", r.Name)
	}
	if err := CheckFrequencies(r.Frequencies()); err != nil {
		return fmt.Errorf("population %v: %v", r.Name, err)
	}
	return nil
}

// Frequencies copies the baseline frequencies into a bare vector in allele
// order.
func (r *PopulationRecord) Frequencies() []float64 {
	f := make([]float64, len(r.Baseline))
	for i, a := range r.Baseline {
		f[i] = a.Frequency
	}
	return f
}

// Labeled re-attaches the record's allele labels to a frequency vector of
// the same shape as the baseline.
func (r *PopulationRecord) Labeled(f []float64) []AlleleFrequency {
	out := make([]AlleleFrequency, len(f))
	for i := range f {
		out[i] = AlleleFrequency{Label: r.Baseline[i].Label, Frequency: f[i]}
	}
	return out
}

// populationState is the mutable working copy of one population within one
// replicate iteration. It is created from the baseline record, advanced in
// place by the drift sampler, and discarded after the final sample draw.
type populationState struct {
	record      *PopulationRecord
	frequencies []float64
	boundaries  []float64
}

func newPopulationState(r *PopulationRecord) (*populationState, error) {
	f := r.Frequencies()
	b, err := BuildBoundaries(f)
	if err != nil {
		return nil, fmt.Errorf("population %v: %v", r.Name, err)
	}
	return &populationState{record: r, frequencies: f, boundaries: b}, nil
}

// advance runs one drift step and rebuilds the boundaries for the next one.
func (s *populationState) advance(rg *rand.Rand) error {
	_, next, err := NextGeneration(rg, s.boundaries, s.record.Size)
	if err != nil {
		return err
	}
	b, err := BuildBoundaries(next)
	if err != nil {
		return err
	}
	s.frequencies = next
	s.boundaries = b
	return nil
}
