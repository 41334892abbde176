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
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/popgenlab/driftsim/input"
	"github.com/popgenlab/driftsim/logger"
	"github.com/popgenlab/driftsim/utils"
)

// CheckCommand data structure for the check app.
var CheckCommand = cli.Command{
	Action:    checkAction,
	Name:      "check",
	Usage:     "validates a population input file and prints its contents",
	ArgsUsage: "<input-file>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
	},
	Description: `
The check command requires one argument: <input-file>

The file is parsed and validated; a table with one row per population record
is printed on success.`,
}

// checkAction implements the check command.
func checkAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.InputFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "DriftCheck")

	records, err := input.ParseFile(cfg.InputFile)
	if err != nil {
		return fmt.Errorf("input file %v is invalid; %v", cfg.InputFile, err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Population", "Size", "Sample", "Alleles", "Baseline"})
	for _, r := range records {
		parts := make([]string, len(r.Baseline))
		for i, a := range r.Baseline {
			parts[i] = fmt.Sprintf("%s=%.4f", a.Label, a.Frequency)
		}
		t.AppendRow(table.Row{r.Name, r.Size, r.SampleSize, len(r.Baseline), strings.Join(parts, " ")})
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	log.Noticef("input file %v is valid; %v population records", cfg.InputFile, len(records))
	return nil
}
