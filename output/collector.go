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

// Package output turns the emissions of a simulation run into result files,
// database rows, and the on-screen summary.
package output

import (
	"fmt"
	"strings"

	"github.com/popgenlab/driftsim/simulation"
)

// Column identifies one allele of one population in the horizontal layout.
// The catalog of columns spans all populations of a run, in record order and
// baseline allele order.
type Column struct {
	Population string
	Allele     string
}

// Catalog builds the cross-population allele catalog used to align the
// horizontal output.
func Catalog(records []simulation.PopulationRecord) []Column {
	var columns []Column
	for i := range records {
		for _, a := range records[i].Baseline {
			columns = append(columns, Column{Population: records[i].Name, Allele: a.Label})
		}
	}
	return columns
}

type sampleRow struct {
	iteration  int
	population string
	observed   []simulation.AlleleFrequency
}

type generationRow struct {
	iteration   int
	population  string
	generation  int
	frequencies []simulation.AlleleFrequency
}

// Collector implements simulation.Emitter. It buffers all emissions of a run
// and renders them on demand; rendering before the run finished yields the
// rows collected so far.
type Collector struct {
	columns     []Column
	samples     []sampleRow
	generations []generationRow
}

// NewCollector creates a collector whose horizontal layout is aligned
// against the catalog of the given baseline records.
func NewCollector(records []simulation.PopulationRecord) *Collector {
	return &Collector{columns: Catalog(records)}
}

// Generation buffers one intermediate frequency vector.
func (c *Collector) Generation(iteration int, population string, generation int, frequencies []simulation.AlleleFrequency) {
	c.generations = append(c.generations, generationRow{
		iteration:   iteration,
		population:  population,
		generation:  generation,
		frequencies: frequencies,
	})
}

// Sample buffers one observed sample.
func (c *Collector) Sample(iteration int, population string, observed []simulation.AlleleFrequency) {
	c.samples = append(c.samples, sampleRow{
		iteration:  iteration,
		population: population,
		observed:   observed,
	})
}

// VerticalString renders one line per (iteration, population, allele).
func (c *Collector) VerticalString() string {
	var sb strings.Builder
	sb.WriteString("iteration\tpopulation\tallele\tfrequency\n")
	for _, s := range c.samples {
		for _, a := range s.observed {
			fmt.Fprintf(&sb, "%d\t%s\t%s\t%.6f\n", s.iteration, s.population, a.Label, a.Frequency)
		}
	}
	return sb.String()
}

// HorizontalString renders one line per iteration with one column per
// catalog entry.
func (c *Collector) HorizontalString() string {
	var sb strings.Builder
	sb.WriteString("iteration")
	for _, col := range c.columns {
		fmt.Fprintf(&sb, "\t%s.%s", col.Population, col.Allele)
	}
	sb.WriteString("\n")

	values := map[int]map[Column]float64{}
	maxIteration := -1
	for _, s := range c.samples {
		row, ok := values[s.iteration]
		if !ok {
			row = map[Column]float64{}
			values[s.iteration] = row
		}
		for _, a := range s.observed {
			row[Column{Population: s.population, Allele: a.Label}] = a.Frequency
		}
		if s.iteration > maxIteration {
			maxIteration = s.iteration
		}
	}
	for it := 0; it <= maxIteration; it++ {
		fmt.Fprintf(&sb, "%d", it)
		for _, col := range c.columns {
			fmt.Fprintf(&sb, "\t%.6f", values[it][col])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// GenerationsString renders one line per (iteration, population, generation,
// allele) of the traced intermediate frequencies.
func (c *Collector) GenerationsString() string {
	var sb strings.Builder
	sb.WriteString("iteration\tpopulation\tgeneration\tallele\tfrequency\n")
	for _, g := range c.generations {
		for _, a := range g.frequencies {
			fmt.Fprintf(&sb, "%d\t%s\t%d\t%s\t%.6f\n", g.iteration, g.population, g.generation, a.Label, a.Frequency)
		}
	}
	return sb.String()
}

// Rows returns the observed samples as value tuples for the database sink:
// iteration, population, allele, frequency.
func (c *Collector) Rows() [][]any {
	var rows [][]any
	for _, s := range c.samples {
		for _, a := range s.observed {
			rows = append(rows, []any{s.iteration, s.population, a.Label, a.Frequency})
		}
	}
	return rows
}
