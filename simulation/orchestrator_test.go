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
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/popgenlab/driftsim/logger"
)

type generationEvent struct {
	iteration   int
	population  string
	generation  int
	frequencies []AlleleFrequency
}

type sampleEvent struct {
	iteration  int
	population string
	observed   []AlleleFrequency
}

// recordingEmitter buffers all emissions for inspection.
type recordingEmitter struct {
	generations []generationEvent
	samples     []sampleEvent
}

func (e *recordingEmitter) Generation(iteration int, population string, generation int, frequencies []AlleleFrequency) {
	e.generations = append(e.generations, generationEvent{
		iteration:   iteration,
		population:  population,
		generation:  generation,
		frequencies: frequencies,
	})
}

func (e *recordingEmitter) Sample(iteration int, population string, observed []AlleleFrequency) {
	e.samples = append(e.samples, sampleEvent{
		iteration:  iteration,
		population: population,
		observed:   observed,
	})
}

func testRecords() []PopulationRecord {
	return []PopulationRecord{
		{
			Name:       "coastal",
			Size:       10000,
			SampleSize: 20,
			Baseline: []AlleleFrequency{
				{Label: "K", Frequency: 0.550},
				{Label: "O", Frequency: 0.450},
			},
		},
	}
}

func TestOrchestrator_Deterministic(t *testing.T) {
	log := logger.NewLogger("CRITICAL", "OrchestratorTest")
	p := Params{Generations: 5, Iterations: 4, TraceGenerations: true}

	run := func() *recordingEmitter {
		em := &recordingEmitter{}
		rg := rand.New(rand.NewSource(0xD1CE))
		require.NoError(t, RunSimulation(testRecords(), p, em, rg, log))
		return em
	}

	first := run()
	second := run()
	assert.Equal(t, first.samples, second.samples)
	assert.Equal(t, first.generations, second.generations)
}

func TestOrchestrator_SamplesAfterDrift(t *testing.T) {
	// two replicate iterations over ten generations of drift: every observed
	// frequency is a multiple of 1/20 and each sample sums to one
	log := logger.NewLogger("CRITICAL", "OrchestratorTest")
	em := &recordingEmitter{}
	rg := rand.New(rand.NewSource(42))
	p := Params{Generations: 10, Iterations: 2}
	require.NoError(t, RunSimulation(testRecords(), p, em, rg, log))

	require.Len(t, em.samples, 2)
	assert.Empty(t, em.generations)
	for _, s := range em.samples {
		sum := 0.0
		for _, a := range s.observed {
			assert.InDelta(t, math.Round(a.Frequency*20), a.Frequency*20, 1e-9)
			sum += a.Frequency
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestOrchestrator_ZeroGenerationsSamplesBaseline(t *testing.T) {
	// G=0 skips drift; with a full sample and no rounding loss the baseline
	// frequencies come back exactly
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	em := NewMockEmitter(ctrl)
	var got []AlleleFrequency
	em.EXPECT().Sample(0, "island", gomock.Any()).Do(func(_ int, _ string, observed []AlleleFrequency) {
		got = observed
	})

	records := []PopulationRecord{
		{
			Name:       "island",
			Size:       10,
			SampleSize: 10,
			Baseline: []AlleleFrequency{
				{Label: "A", Frequency: 0.5},
				{Label: "B", Frequency: 0.5},
			},
		},
	}
	log := logger.NewLogger("CRITICAL", "OrchestratorTest")
	rg := rand.New(rand.NewSource(1))
	p := Params{Generations: 0, Iterations: 1, TraceGenerations: true}
	require.NoError(t, RunSimulation(records, p, em, rg, log))
	assert.Equal(t, records[0].Baseline, got)
}

func TestOrchestrator_GenerationTrace(t *testing.T) {
	log := logger.NewLogger("CRITICAL", "OrchestratorTest")
	em := &recordingEmitter{}
	rg := rand.New(rand.NewSource(3))
	p := Params{Generations: 3, Iterations: 2, TraceGenerations: true}
	require.NoError(t, RunSimulation(testRecords(), p, em, rg, log))

	require.Len(t, em.generations, 6)
	for i, g := range em.generations {
		assert.Equal(t, i/3, g.iteration)
		assert.Equal(t, i%3+1, g.generation)
		assert.Equal(t, "coastal", g.population)
		require.Len(t, g.frequencies, 2)
	}
	require.Len(t, em.samples, 2)
}

func TestOrchestrator_LogsRunShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Noticef(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Noticef(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	em := &recordingEmitter{}
	rg := rand.New(rand.NewSource(5))
	require.NoError(t, RunSimulation(testRecords(), Params{Generations: 1, Iterations: 1}, em, rg, log))
	require.Len(t, em.samples, 1)
}

func TestOrchestrator_RejectsBadInput(t *testing.T) {
	log := logger.NewLogger("CRITICAL", "OrchestratorTest")
	em := &recordingEmitter{}
	rg := rand.New(rand.NewSource(1))

	err := RunSimulation(testRecords(), Params{Generations: -1, Iterations: 1}, em, rg, log)
	assert.Error(t, err)

	err = RunSimulation(testRecords(), Params{Generations: 1, Iterations: -1}, em, rg, log)
	assert.Error(t, err)

	bad := testRecords()
	bad[0].Size = 0
	err = RunSimulation(bad, Params{Generations: 1, Iterations: 1}, em, rg, log)
	assert.Error(t, err)

	bad = testRecords()
	bad[0].SampleSize = 0
	err = RunSimulation(bad, Params{Generations: 1, Iterations: 1}, em, rg, log)
	assert.Error(t, err)

	assert.Empty(t, em.samples)
}
