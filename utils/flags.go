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

import "github.com/urfave/cli/v2"

var (
	// GenerationsFlag sets the number of drift steps per population.
	GenerationsFlag = cli.IntFlag{
		Name:    "generations",
		Aliases: []string{"g"},
		Usage:   "number of generations simulated per population",
		Value:   10,
	}
	// IterationsFlag sets the number of replicate iterations.
	IterationsFlag = cli.IntFlag{
		Name:    "iterations",
		Aliases: []string{"i"},
		Usage:   "number of independent replicate iterations",
		Value:   1000,
	}
	// MaxIterationsFlag bounds the iteration count a run may request.
	MaxIterationsFlag = cli.IntFlag{
		Name:  "max-iterations",
		Usage: "upper bound on the replicate iteration count",
		Value: 100000,
	}
	// RandomSeedFlag fixes the seed of the run's random stream. A negative
	// value derives the seed from the wall clock.
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "set the random seed to make runs reproducible (negative value: derive from time)",
		Value: -1,
	}
	// SamplingOnlyFlag skips all drift steps; equivalent to --generations 0.
	SamplingOnlyFlag = cli.BoolFlag{
		Name:  "sampling-only",
		Usage: "draw observation samples directly from the baseline frequencies without drift",
	}
	// TraceGenerationsFlag reports every intermediate generation.
	TraceGenerationsFlag = cli.BoolFlag{
		Name:  "trace-generations",
		Usage: "write the frequency vector of every intermediate generation",
	}
	// OutputFlag names the output file or file prefix of a command.
	OutputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file, or file prefix for commands producing several files",
	}
	// DbFlag enables the sqlite3 result sink.
	DbFlag = cli.PathFlag{
		Name:  "db",
		Usage: "output sqlite3 database for observed frequencies",
	}
	// PopulationNumberFlag sets how many populations to synthesize.
	PopulationNumberFlag = cli.IntFlag{
		Name:  "populations",
		Usage: "number of populations in the generated input file",
		Value: 2,
	}
	// AlleleNumberFlag sets how many alleles each synthesized population has.
	AlleleNumberFlag = cli.IntFlag{
		Name:  "alleles",
		Usage: "number of alleles per generated population",
		Value: 3,
	}
)
