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

package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/stat"
)

// SummaryRow aggregates the observed frequencies of one catalog column
// across all replicate iterations.
type SummaryRow struct {
	Population string
	Allele     string
	Iterations int
	Mean       float64
	StdDev     float64
}

// Summary computes per-column mean and standard deviation of the observed
// frequencies across iterations, in catalog order.
func (c *Collector) Summary() []SummaryRow {
	series := map[Column][]float64{}
	for _, s := range c.samples {
		for _, a := range s.observed {
			col := Column{Population: s.population, Allele: a.Label}
			series[col] = append(series[col], a.Frequency)
		}
	}
	var rows []SummaryRow
	for _, col := range c.columns {
		xs := series[col]
		if len(xs) == 0 {
			continue
		}
		sd := 0.0
		if len(xs) > 1 {
			sd = stat.StdDev(xs, nil)
		}
		rows = append(rows, SummaryRow{
			Population: col.Population,
			Allele:     col.Allele,
			Iterations: len(xs),
			Mean:       stat.Mean(xs, nil),
			StdDev:     sd,
		})
	}
	return rows
}

// RenderSummary writes the summary as a table.
func (c *Collector) RenderSummary(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Population", "Allele", "Iterations", "Mean", "StdDev"})
	for _, r := range c.Summary() {
		t.AppendRow(table.Row{
			r.Population,
			r.Allele,
			r.Iterations,
			fmt.Sprintf("%.6f", r.Mean),
			fmt.Sprintf("%.6f", r.StdDev),
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
