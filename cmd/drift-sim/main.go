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

package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/popgenlab/driftsim/cmd/drift-sim/sim"
)

// DriftSimApp data structure
var DriftSimApp = cli.App{
	Name:      "Drift Simulator",
	HelpName:  "drift-sim",
	Usage:     "simulates neutral genetic drift in finite haploid populations",
	Copyright: "(c) 2024 the driftsim authors",
	Commands: []*cli.Command{
		&sim.RunCommand,
		&sim.GenerateCommand,
		&sim.CheckCommand,
	},
}

// main implements the drift-sim functions
func main() {
	if err := DriftSimApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
