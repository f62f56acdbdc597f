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

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/jeffPHE/hesim/logger"
	"github.com/jeffPHE/hesim/stochastic/statistics/gompertz"
	"github.com/jeffPHE/hesim/stochastic/survival"
	"github.com/urfave/cli/v2"
)

// Config summarizes the parameters of a command.
type Config struct {
	AppName     string
	CommandName string

	Distribution survival.Distribution // distribution of drawn survival times
	Location     float64               // log scale linear predictor
	LogLevel     string                // level of the logger
	Par2         float64               // log scale ancillary parameter
	Probability  float64               // probability of a quantile
	Rate         float64               // Gompertz rate
	Seed         uint64                // seed of the random source
	Shape        float64               // Gompertz shape
	Time         float64               // evaluation time
}

// NewConfig creates the configuration of the running command from its
// flags and checks the values of all flags the command defines.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)

	if hasFlag(ctx, DistributionFlag.Name) {
		d, err := survival.ParseDistribution(ctx.String(DistributionFlag.Name))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --%s", DistributionFlag.Name)
		}
		cfg.Distribution = d
	}

	if hasFlag(ctx, ShapeFlag.Name) || hasFlag(ctx, RateFlag.Name) {
		if err := gompertz.CheckParams(cfg.Shape, cfg.Rate); err != nil {
			return nil, err
		}
	}

	if hasFlag(ctx, ProbabilityFlag.Name) {
		p := cfg.Probability
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, errors.Wrapf(gompertz.ErrInvalidProbability, "--%s %v", ProbabilityFlag.Name, p)
		}
	}

	if hasFlag(ctx, TimeFlag.Name) && math.IsNaN(cfg.Time) {
		return nil, errors.Newf("--%s must be a number", TimeFlag.Name)
	}

	return cfg, nil
}

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		Location:    getFlagValue(ctx, LocationFlag).(float64),
		LogLevel:    getFlagValue(ctx, logger.LogLevelFlag).(string),
		Par2:        getFlagValue(ctx, Par2Flag).(float64),
		Probability: getFlagValue(ctx, ProbabilityFlag).(float64),
		Rate:        getFlagValue(ctx, RateFlag).(float64),
		Seed:        getFlagValue(ctx, SeedFlag).(uint64),
		Shape:       getFlagValue(ctx, ShapeFlag).(float64),
		Time:        getFlagValue(ctx, TimeFlag).(float64),
	}

	return cfg
}

// hasFlag reports whether the running command defines the flag.
func hasFlag(ctx *cli.Context, name string) bool {
	if ctx.Command == nil {
		return false
	}
	for _, f := range ctx.Command.Flags {
		if f.Names()[0] == name {
			return true
		}
	}
	return false
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	if ctx.Command != nil {
		for _, cmdFlag := range ctx.Command.Flags {
			switch f := flag.(type) {
			case cli.Uint64Flag:
				if cmdFlag.Names()[0] == f.Name {
					return ctx.Uint64(f.Name)
				}

			case cli.Float64Flag:
				if cmdFlag.Names()[0] == f.Name {
					return ctx.Float64(f.Name)
				}

			case cli.StringFlag:
				if cmdFlag.Names()[0] == f.Name {
					return ctx.String(f.Name)
				}
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.Uint64Flag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	}

	return nil
}
