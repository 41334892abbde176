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

package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/popgenlab/driftsim/input"
	"github.com/popgenlab/driftsim/logger"
	"github.com/popgenlab/driftsim/simulation"
	"github.com/popgenlab/driftsim/utils"
)

// GenerateCommand data structure for the generate app.
var GenerateCommand = cli.Command{
	Action: generateAction,
	Name:   "generate",
	Usage:  "generates a random population input file",
	Flags: []cli.Flag{
		&utils.PopulationNumberFlag,
		&utils.AlleleNumberFlag,
		&utils.RandomSeedFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The generate command produces a population input file with randomized
population sizes, sample sizes, and baseline allele frequencies. The file can
be fed directly to the run command.`,
}

// generateAction implements the generate command producing a random input file.
func generateAction(ctx *cli.Context) (err error) {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "DriftGenerate")
	if cfg.Populations < 1 {
		return fmt.Errorf("number of populations must be at least one; got %v", cfg.Populations)
	}
	if cfg.Alleles < 1 || cfg.Alleles > 26 {
		return fmt.Errorf("number of alleles must be between 1 and 26; got %v", cfg.Alleles)
	}
	if cfg.Output == "" {
		cfg.Output = "populations.drift"
	}

	rg := rand.New(rand.NewSource(cfg.RandomSeed))
	log.Noticef("using random seed %d", cfg.RandomSeed)

	records := make([]simulation.PopulationRecord, 0, cfg.Populations)
	for i := 0; i < cfg.Populations; i++ {
		records = append(records, randomRecord(rg, i, cfg.Alleles))
	}

	file, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("cannot create output file %v; %v", cfg.Output, err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	if err := input.Write(file, records); err != nil {
		return err
	}
	log.Noticef("wrote %v population records to %v", len(records), cfg.Output)
	return nil
}

// randomRecord synthesizes one population with normalized random baseline
// frequencies. Labels are single letters starting at A.
func randomRecord(rg *rand.Rand, index, alleles int) simulation.PopulationRecord {
	weights := make([]float64, alleles)
	total := 0.0
	for i := range weights {
		// the offset keeps every allele away from a zero frequency
		weights[i] = rg.Float64() + 0.05
		total += weights[i]
	}
	baseline := make([]simulation.AlleleFrequency, alleles)
	for i := range baseline {
		baseline[i] = simulation.AlleleFrequency{
			Label:     string(rune('A' + i)),
			Frequency: weights[i] / total,
		}
	}
	return simulation.PopulationRecord{
		Name:       fmt.Sprintf("pop%d", index+1),
		Size:       1000 * (1 + rg.Intn(100)),
		SampleSize: 10 + rg.Intn(91),
		Baseline:   baseline,
	}
}
