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

package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/popgenlab/driftsim/logger"
)

//go:generate mockgen -source orchestrator.go -destination emitter_mock.go -package simulation

// Emitter consumes the results of a simulation run. Sample is called exactly
// once per (iteration, population) with the observed frequencies of the
// final generation. Generation is called for every intermediate frequency
// vector when generation tracing is enabled; generation indices start at 1.
type Emitter interface {
	Generation(iteration int, population string, generation int, frequencies []AlleleFrequency)
	Sample(iteration int, population string, observed []AlleleFrequency)
}

// Params configures a simulation run.
type Params struct {
	Generations      int  // drift steps per population (G)
	Iterations       int  // replicate iterations (I)
	TraceGenerations bool // emit intermediate frequency vectors
}

// RunSimulation executes the replicate iterations over all populations and
// forwards the results to the emitter. Each iteration starts from a fresh
// copy of every baseline record, advances it the configured number of
// generations under drift, and draws one finite observation sample from the
// final generation. A run with zero generations skips drift entirely and
// samples the baseline directly.
//
// The random generator is the single shared stream of the run. The drift
// sampler and the sample drawer consume it strictly in loop order (iteration
// outer, population middle, generation inner, sample draws last), so a fixed
// seed fixes the full output sequence bit for bit.
func RunSimulation(records []PopulationRecord, p Params, em Emitter, rg *rand.Rand, log logger.Logger) error {
	if p.Generations < 0 {
		return fmt.Errorf("generation count must not be negative (%v)", p.Generations)
	}
	if p.Iterations < 0 {
		return fmt.Errorf("iteration count must not be negative (%v)", p.Iterations)
	}
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return err
		}
	}

	log.Noticef("%v populations, %v generations, %v iterations", len(records), p.Generations, p.Iterations)

	start := time.Now()
	lastSec := time.Since(start).Seconds()
	for it := 0; it < p.Iterations; it++ {
		for r := range records {
			record := &records[r]
			state, err := newPopulationState(record)
			if err != nil {
				return err
			}
			for g := 1; g <= p.Generations; g++ {
				if err := state.advance(rg); err != nil {
					return fmt.Errorf("population %v: generation %v: %v", record.Name, g, err)
				}
				if p.TraceGenerations {
					em.Generation(it, record.Name, g, record.Labeled(state.frequencies))
				}
			}
			_, observed, err := DrawSample(rg, state.frequencies, record.Size, record.SampleSize)
			if err != nil {
				return fmt.Errorf("population %v: %v", record.Name, err)
			}
			em.Sample(it, record.Name, record.Labeled(observed))
		}

		// report progress
		sec := time.Since(start).Seconds()
		if sec-lastSec >= 15 {
			log.Debugf("Elapsed time: %.0f s, at iteration %v", sec, it+1)
			lastSec = sec
		}
	}
	log.Noticef("Total elapsed time: %.3f s, %v iterations", time.Since(start).Seconds(), p.Iterations)
	return nil
}
