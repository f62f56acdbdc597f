// Copyright 2026 hesim authors
// This file is part of hesim, survival-time simulation tools
//
// hesim is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// hesim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with hesim. If not, see <http://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultLogFormat = "%{color}%{time:15:04:05.000} %{module} %{shortfunc} ▶ %{level:.4s}%{color:reset} %{message}"

// LogLevelFlag defines the logging level of an app action.
var LogLevelFlag = cli.StringFlag{
	Name:  "log",
	Usage: "Level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\"; default: INFO)",
	Value: "info",
}

// NewLogger provides a new instance of the Logger for the given module.
// Log records are written to stderr so that command results on stdout stay
// machine readable.
func NewLogger(level string, module string) *logging.Logger {
	return newLogger(os.Stderr, level, module)
}

func newLogger(w io.Writer, level string, module string) *logging.Logger {
	backend := logging.NewLogBackend(w, "", 0)

	fm := logging.MustStringFormatter(defaultLogFormat)
	fmtBackend := logging.NewBackendFormatter(backend, fm)

	lvlBackend := logging.AddModuleLevel(fmtBackend)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot parse log level %s: %s\n", level, err.Error())
		lvl = logging.INFO
	}
	lvlBackend.SetLevel(lvl, module)

	l := logging.MustGetLogger(module)
	l.SetBackend(lvlBackend)

	return l
}
