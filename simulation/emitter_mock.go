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

// Package simulation is a generated GoMock package.
package simulation

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockEmitter is a mock of Emitter interface.
type MockEmitter struct {
	ctrl     *gomock.Controller
	recorder *MockEmitterMockRecorder
	isgomock struct{}
}

// MockEmitterMockRecorder is the mock recorder for MockEmitter.
type MockEmitterMockRecorder struct {
	mock *MockEmitter
}

// NewMockEmitter creates a new mock instance.
func NewMockEmitter(ctrl *gomock.Controller) *MockEmitter {
	mock := &MockEmitter{ctrl: ctrl}
	mock.recorder = &MockEmitterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEmitter) EXPECT() *MockEmitterMockRecorder {
	return m.recorder
}

// Generation mocks base method.
func (m *MockEmitter) Generation(iteration int, population string, generation int, frequencies []AlleleFrequency) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Generation", iteration, population, generation, frequencies)
}

// Generation indicates an expected call of Generation.
func (mr *MockEmitterMockRecorder) Generation(iteration, population, generation, frequencies any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generation", reflect.TypeOf((*MockEmitter)(nil).Generation), iteration, population, generation, frequencies)
}

// Sample mocks base method.
func (m *MockEmitter) Sample(iteration int, population string, observed []AlleleFrequency) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Sample", iteration, population, observed)
}

// Sample indicates an expected call of Sample.
func (mr *MockEmitterMockRecorder) Sample(iteration, population, observed any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sample", reflect.TypeOf((*MockEmitter)(nil).Sample), iteration, population, observed)
}
