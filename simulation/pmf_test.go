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
	"testing"
)

// TestPMF_CheckFrequencies checks validation of allele-frequency vectors.
func TestPMF_CheckFrequencies(t *testing.T) {
	f := []float64{0.2, 0.5, 0.3}
	if err := CheckFrequencies(f); err != nil {
		t.Fatalf("valid vector: want nil, got %v", err)
	}
	f = []float64{0.0, 1.0, 0.0}
	if err := CheckFrequencies(f); err != nil {
		t.Fatalf("valid vector with zeros: want nil, got %v", err)
	}
	f = []float64{0.0, 0.0, 0.0}
	if err := CheckFrequencies(f); err == nil {
		t.Fatalf("all zeros: want error, got nil")
	}
	f = []float64{-0.1, 0.6, 0.5}
	if err := CheckFrequencies(f); err == nil {
		t.Fatalf("negative frequency: want error, got nil")
	}
	f = []float64{1.1, 0.0, 0.0}
	if err := CheckFrequencies(f); err == nil {
		t.Fatalf("frequency greater than one: want error, got nil")
	}
	f = []float64{math.NaN(), 0.5, 0.5}
	if err := CheckFrequencies(f); err == nil {
		t.Fatalf("NaN frequency: want error, got nil")
	}
}

// TestPMF_CheckFrequenciesTolerance checks the floating tolerance of the sum.
func TestPMF_CheckFrequenciesTolerance(t *testing.T) {
	f := []float64{0.3333333333, 0.3333333333, 0.3333333334}
	if err := CheckFrequencies(f); err != nil {
		t.Fatalf("within tolerance: want nil, got %v", err)
	}
	f = []float64{0.333, 0.333, 0.333}
	if err := CheckFrequencies(f); err == nil {
		t.Fatalf("sum of 0.999: want error, got nil")
	}
}

// TestPMF_CheckFrequenciesKahan exercises the compensated summation with
// frequencies of very different magnitudes.
func TestPMF_CheckFrequenciesKahan(t *testing.T) {
	f := make([]float64, 0, 1001)
	for i := 0; i < 1000; i++ {
		f = append(f, 1e-12)
	}
	f = append(f, 1.0-1e-9)
	if err := CheckFrequencies(f); err != nil {
		t.Fatalf("tiny frequencies: want nil, got %v", err)
	}
}
