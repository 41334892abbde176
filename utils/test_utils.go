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
	"strconv"
)

// ArgsBuilder helps create []string for CLI testing in a type-safe way.
type ArgsBuilder struct {
	args []string
}

// NewArgs starts an argument list for the given command name.
func NewArgs(cmd string) *ArgsBuilder {
	return &ArgsBuilder{args: []string{cmd}}
}

// Flag appends a --name value pair; boolean flags are appended bare.
func (b *ArgsBuilder) Flag(name string, value interface{}) *ArgsBuilder {
	switch v := value.(type) {
	case string:
		b.args = append(b.args, "--"+name, v)
	case int:
		b.args = append(b.args, "--"+name, strconv.Itoa(v))
	case int64:
		b.args = append(b.args, "--"+name, strconv.FormatInt(v, 10))
	case bool:
		if v {
			b.args = append(b.args, "--"+name)
		}
	default:
		panic(fmt.Sprintf("unsupported flag type %T", v))
	}
	return b
}

// Arg appends a positional argument.
func (b *ArgsBuilder) Arg(value interface{}) *ArgsBuilder {
	switch v := value.(type) {
	case string:
		b.args = append(b.args, v)
	case int:
		b.args = append(b.args, strconv.Itoa(v))
	default:
		panic(fmt.Sprintf("unsupported arg type %T", v))
	}
	return b
}

// Build returns the assembled argument list.
func (b *ArgsBuilder) Build() []string {
	return b.args
}
