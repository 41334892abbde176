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

// Package input reads and writes the tagged population file format. A file
// holds one or more population records, each a sequence of tag lines:
//
//	population <name>
//	size <Np>
//	sample <Ns>
//	allele <label> <frequency>
//	end
//
// Blank lines and lines starting with '#' are ignored. Records are returned
// in file order; allele order within a record is preserved.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/popgenlab/driftsim/simulation"
)

// Parse reads all population records from r. Any malformed line or invalid
// record aborts the parse with an error carrying the line number.
func Parse(r io.Reader) ([]simulation.PopulationRecord, error) {
	var records []simulation.PopulationRecord
	var cur *simulation.PopulationRecord
	var seen map[string]bool

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		tag := fields[0]
		if tag != "population" && cur == nil {
			return nil, fmt.Errorf("line %v: tag %q outside of a population record", line, tag)
		}
		switch tag {
		case "population":
			if cur != nil {
				return nil, fmt.Errorf("line %v: record %v is not terminated by \"end\"", line, cur.Name)
			}
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %v: \"population\" expects a name", line)
			}
			cur = &simulation.PopulationRecord{Name: fields[1]}
			seen = map[string]bool{}
		case "size":
			n, err := parseCount(fields)
			if err != nil {
				return nil, fmt.Errorf("line %v: %v", line, err)
			}
			cur.Size = n
		case "sample":
			n, err := parseCount(fields)
			if err != nil {
				return nil, fmt.Errorf("line %v: %v", line, err)
			}
			cur.SampleSize = n
		case "allele":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %v: \"allele\" expects a label and a frequency", line)
			}
			label := fields[1]
			if seen[label] {
				return nil, fmt.Errorf("line %v: duplicate allele %q in population %v", line, label, cur.Name)
			}
			seen[label] = true
			freq, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %v: invalid frequency %q; %v", line, fields[2], err)
			}
			cur.Baseline = append(cur.Baseline, simulation.AlleleFrequency{Label: label, Frequency: freq})
		case "end":
			if err := cur.Validate(); err != nil {
				return nil, fmt.Errorf("line %v: %v", line, err)
			}
			records = append(records, *cur)
			cur = nil
		default:
			return nil, fmt.Errorf("line %v: unknown tag %q", line, tag)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed reading input; %v", err)
	}
	if cur != nil {
		return nil, fmt.Errorf("record %v is not terminated by \"end\"", cur.Name)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no population records found")
	}
	return records, nil
}

// ParseFile reads all population records from the file at path.
func ParseFile(path string) (records []simulation.PopulationRecord, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed opening input file %v; %v", path, err)
	}
	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(file)
	records, err = Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%v: %v", path, err)
	}
	return records, nil
}

// Write renders records in the tagged file format.
func Write(w io.Writer, records []simulation.PopulationRecord) error {
	for i := range records {
		r := &records[i]
		if err := r.Validate(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "population %v\nsize %v\nsample %v\n", r.Name, r.Size, r.SampleSize); err != nil {
			return err
		}
		for _, a := range r.Baseline {
			if _, err := fmt.Fprintf(w, "allele %v %v\n", a.Label, a.Frequency); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "end"); err != nil {
			return err
		}
	}
	return nil
}

func parseCount(fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("%q expects a single integer", fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("invalid %v %q; %v", fields[0], fields[1], err)
	}
	return n, nil
}
