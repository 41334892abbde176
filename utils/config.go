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

package utils

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/popgenlab/driftsim/logger"
)

// ArgumentMode describes the positional arguments a command expects.
type ArgumentMode int

const (
	// NoArgs is used by commands without positional arguments.
	NoArgs ArgumentMode = iota
	// InputFileArg is used by commands taking one input file argument.
	InputFileArg
)

// Config holds the user-specified or default values of all driftsim flags.
type Config struct {
	AppName     string
	CommandName string

	InputFile        string // positional argument of InputFileArg commands
	Generations      int    // drift steps per population (G)
	Iterations       int    // replicate iterations (I)
	MaxIterations    int    // ceiling on Iterations
	RandomSeed       int64  // seed of the run's random stream
	SamplingOnly     bool   // force Generations to zero
	TraceGenerations bool   // report intermediate generations
	Output           string // output file or prefix
	Db               string // sqlite3 output path
	LogLevel         string
	Populations      int // generate command: number of populations
	Alleles          int // generate command: alleles per population
}

// NewConfig builds a Config from the flag values of the cli context and
// validates it. A negative random seed is replaced by a time-derived one, so
// the seed stored in the config is always the effective seed of the run.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		Generations:      ctx.Int(GenerationsFlag.Name),
		Iterations:       ctx.Int(IterationsFlag.Name),
		MaxIterations:    ctx.Int(MaxIterationsFlag.Name),
		RandomSeed:       ctx.Int64(RandomSeedFlag.Name),
		SamplingOnly:     ctx.Bool(SamplingOnlyFlag.Name),
		TraceGenerations: ctx.Bool(TraceGenerationsFlag.Name),
		Output:           ctx.String(OutputFlag.Name),
		Db:               ctx.Path(DbFlag.Name),
		LogLevel:         ctx.String(logger.LogLevelFlag.Name),
		Populations:      ctx.Int(PopulationNumberFlag.Name),
		Alleles:          ctx.Int(AlleleNumberFlag.Name),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = LogLevelFlagDefault
	}

	switch mode {
	case NoArgs:
		if ctx.Args().Len() != 0 {
			return nil, fmt.Errorf("command %v expects no arguments", cfg.CommandName)
		}
	case InputFileArg:
		if ctx.Args().Len() != 1 {
			return nil, fmt.Errorf("command %v expects an input file as its single argument", cfg.CommandName)
		}
		cfg.InputFile = ctx.Args().Get(0)
	default:
		return nil, fmt.Errorf("unknown argument mode (%v)", mode)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogLevelFlagDefault is used when a command does not register the log flag.
const LogLevelFlagDefault = "info"

func (cfg *Config) validate() error {
	if cfg.Generations < 0 {
		return fmt.Errorf("generation count must not be negative (%v)", cfg.Generations)
	}
	if cfg.Iterations < 0 {
		return fmt.Errorf("iteration count must not be negative (%v)", cfg.Iterations)
	}
	if cfg.MaxIterations > 0 && cfg.Iterations > cfg.MaxIterations {
		return fmt.Errorf("iteration count (%v) exceeds the configured maximum (%v)", cfg.Iterations, cfg.MaxIterations)
	}
	if cfg.SamplingOnly {
		cfg.Generations = 0
	}
	if cfg.RandomSeed < 0 {
		cfg.RandomSeed = time.Now().UnixNano()
	}
	return nil
}
