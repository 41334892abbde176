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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popgenlab/driftsim/utils"
)

func TestCheckCommand_AcceptsValidFile(t *testing.T) {
	inputPath := writeTestInput(t)
	args := utils.NewArgs("app").Arg(CheckCommand.Name).Arg(inputPath).Build()
	assert.NoError(t, newTestApp(&CheckCommand).Run(args))
}

func TestCheckCommand_RejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.drift")
	bad := "population lake\nsize 100\nsample 10\nallele A 0.7\nallele B 0.2\nend\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0644))

	args := utils.NewArgs("app").Arg(CheckCommand.Name).Arg(path).Build()
	assert.Error(t, newTestApp(&CheckCommand).Run(args))
}

func TestCheckCommand_MissingArgumentFails(t *testing.T) {
	args := utils.NewArgs("app").Arg(CheckCommand.Name).Build()
	assert.Error(t, newTestApp(&CheckCommand).Run(args))
}
