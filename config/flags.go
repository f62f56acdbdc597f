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

package config

import "github.com/urfave/cli/v2"

var (
	DistributionFlag = cli.StringFlag{
		Name:  "dist",
		Usage: "survival distribution (\"exponential\", \"weibull\", \"gompertz\")",
		Value: "gompertz",
	}
	LocationFlag = cli.Float64Flag{
		Name:  "location",
		Usage: "log scale linear predictor of the rate or scale parameter",
		Value: 0,
	}
	Par2Flag = cli.Float64Flag{
		Name:  "par2",
		Usage: "log scale ancillary shape parameter",
		Value: 0,
	}
	ShapeFlag = cli.Float64Flag{
		Name:  "shape",
		Usage: "Gompertz shape parameter",
		Value: 1,
	}
	RateFlag = cli.Float64Flag{
		Name:  "rate",
		Usage: "Gompertz rate parameter",
		Value: 1,
	}
	ProbabilityFlag = cli.Float64Flag{
		Name:  "p",
		Usage: "probability in [0,1]",
		Value: 0.5,
	}
	TimeFlag = cli.Float64Flag{
		Name:  "time",
		Usage: "survival time at which a function is evaluated",
		Value: 1,
	}
	SeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed of the random source; 0 seeds from the clock",
		Value: 0,
	}
)
