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

package main

import (
	"fmt"
	"os"

	"github.com/jeffPHE/hesim/cmd/hesim/simulate"
	"github.com/urfave/cli/v2"
)

// HesimApp data structure
var HesimApp = cli.App{
	Name:      "hesim",
	HelpName:  "hesim",
	Usage:     "simulate survival times from parametric hazard models",
	Copyright: "(c) 2026 hesim authors",
	Flags:     []cli.Flag{},
	Commands: []*cli.Command{
		&simulate.DrawCommand,
		&simulate.QuantileCommand,
		&simulate.CDFCommand,
	},
}

func main() {
	if err := HesimApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
