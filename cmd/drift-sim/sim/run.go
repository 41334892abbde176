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
	"time"

	"github.com/urfave/cli/v2"

	"github.com/popgenlab/driftsim/input"
	"github.com/popgenlab/driftsim/logger"
	"github.com/popgenlab/driftsim/output"
	"github.com/popgenlab/driftsim/simulation"
	"github.com/popgenlab/driftsim/utils"
)

// RunCommand data structure for the run app.
var RunCommand = cli.Command{
	Action:    runAction,
	Name:      "run",
	Usage:     "simulates genetic drift for the populations of an input file",
	ArgsUsage: "<input-file>",
	Flags: []cli.Flag{
		&utils.GenerationsFlag,
		&utils.IterationsFlag,
		&utils.MaxIterationsFlag,
		&utils.RandomSeedFlag,
		&utils.SamplingOnlyFlag,
		&utils.TraceGenerationsFlag,
		&utils.OutputFlag,
		&utils.DbFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The run command requires one argument: <input-file>

<input-file> holds the tagged population records. Every replicate iteration
advances each population the configured number of generations under neutral
drift and draws one finite observation sample from the final generation.`,
}

const (
	createObservationsSQL = "CREATE TABLE IF NOT EXISTS observations (iteration INTEGER, population TEXT, allele TEXT, frequency REAL)"
	insertObservationSQL  = "INSERT INTO observations (iteration, population, allele, frequency) VALUES (?, ?, ?, ?)"
)

// runAction implements the run command. The user provides the input file as
// argument; all simulation parameters come from flags.
func runAction(ctx *cli.Context) (err error) {
	cfg, err := utils.NewConfig(ctx, utils.InputFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "DriftRun")
	if cfg.Output == "" {
		cfg.Output = "drift"
	}

	records, err := input.ParseFile(cfg.InputFile)
	if err != nil {
		return fmt.Errorf("failed reading input; %v", err)
	}
	log.Noticef("read %v population records from %v", len(records), cfg.InputFile)

	collector := output.NewCollector(records)
	ps := utils.NewPrinters().
		AddPrinterToFile(cfg.Output+".vertical.tsv", collector.VerticalString).
		AddPrinterToFile(cfg.Output+".horizontal.tsv", collector.HorizontalString)
	if cfg.TraceGenerations {
		ps.AddPrinterToFile(cfg.Output+".generations.tsv", collector.GenerationsString)
	}
	if cfg.Db != "" {
		p, dbErr := utils.NewPrinterToSqlite3(cfg.Db, createObservationsSQL, insertObservationSQL, collector.Rows)
		if dbErr != nil {
			return dbErr
		}
		ps.AddPrinter(p)
		log.Noticef("sqlite3 output enabled: %v", cfg.Db)
	}
	defer func() {
		err = errors.Join(err, ps.Close())
	}()

	rg := rand.New(rand.NewSource(cfg.RandomSeed))
	log.Noticef("using random seed %d", cfg.RandomSeed)

	params := simulation.Params{
		Generations:      cfg.Generations,
		Iterations:       cfg.Iterations,
		TraceGenerations: cfg.TraceGenerations,
	}
	start := time.Now()
	log.Info("Run simulation")
	if err := simulation.RunSimulation(records, params, collector, rg, logger.NewLogger(cfg.LogLevel, "Simulation")); err != nil {
		return err
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Infof("simulation finished in %vh %vm %vs", hours, minutes, seconds)

	if err := ps.Print(); err != nil {
		return err
	}
	log.Noticef("results written with prefix %v", cfg.Output)

	collector.RenderSummary(os.Stdout)
	return nil
}
