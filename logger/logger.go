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

package logger

import (
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

//go:generate mockgen -source logger.go -destination logger_mock.go -package logger

// Logger is the leveled logger used throughout driftsim.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Notice(args ...interface{})
	Noticef(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Critical(args ...interface{})
	Criticalf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	IsEnabledFor(level logging.Level) bool
}

// LogLevelFlag sets the verbosity of an app action.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
	Value:   "info",
}

const defaultLogFormat = "%{time:01-02|15:04:05.000} %{color}%{level:.4s}%{color:reset} %{module}: %{message}"

// NewLogger creates a new logger for the given module with the given log
// level. An unknown level name falls back to INFO.
func NewLogger(level string, module string) Logger {
	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		lvl = logging.INFO
	}
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatter := logging.MustStringFormatter(defaultLogFormat)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	log := logging.MustGetLogger(module)
	log.SetBackend(leveled)
	return log
}

// ParseTime splits an elapsed duration into hours, minutes, and seconds.
func ParseTime(elapsed time.Duration) (hours, minutes, seconds uint32) {
	seconds = uint32(elapsed.Seconds())
	hours = seconds / 3600
	seconds -= hours * 3600
	minutes = seconds / 60
	seconds -= minutes * 60
	return hours, minutes, seconds
}
